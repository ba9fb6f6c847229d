package funding

import (
	"fmt"
	"sync"

	"github.com/cespare/xxhash/v2"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/rs/zerolog"
)

// DefaultCacheSize is the number of views an Analyzer keeps by default.
const DefaultCacheSize = 256

// Observer is notified of the memo hits and misses of an Analyzer.
type Observer interface {
	Hit(op string)
	Miss(op string)
}

type nopObserver struct{}

func (nopObserver) Hit(string)  {}
func (nopObserver) Miss(string) {}

// Analyzer computes the views of a ledger and memoizes them.
//
// Views are keyed by the ledger version, the operation and all of its
// arguments, so a view is never served for another ledger. Returned views
// are shared between callers and must not be modified.
//
// An Analyzer is safe for concurrent use.
type Analyzer struct {
	mu     sync.RWMutex
	ledger *Ledger
	memo   *lru.Cache[uint64, memoEntry]

	log      zerolog.Logger
	observer Observer
}

type memoEntry struct {
	key   string
	value any
}

// AnalyzerOption configures an Analyzer.
type AnalyzerOption func(*Analyzer)

// WithLogger sets the logger of the Analyzer. The default logger discards everything.
func WithLogger(log zerolog.Logger) AnalyzerOption {
	return func(a *Analyzer) { a.log = log }
}

// WithObserver sets the observer of the memo.
func WithObserver(o Observer) AnalyzerOption {
	return func(a *Analyzer) { a.observer = o }
}

// NewAnalyzer creates an Analyzer of l keeping up to size views,
// DefaultCacheSize when size is not positive.
func NewAnalyzer(l *Ledger, size int, opts ...AnalyzerOption) (*Analyzer, error) {
	memo, err := lru.New[uint64, memoEntry](orDefault(size, DefaultCacheSize))
	if err != nil {
		return nil, fmt.Errorf("creating analyzer memo: %w", err)
	}
	a := &Analyzer{
		ledger:   l,
		memo:     memo,
		log:      zerolog.Nop(),
		observer: nopObserver{},
	}
	for _, opt := range opts {
		opt(a)
	}
	return a, nil
}

// Ledger returns the current snapshot.
func (a *Analyzer) Ledger() *Ledger {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.ledger
}

// Reload replaces the snapshot and forgets every memoized view.
func (a *Analyzer) Reload(l *Ledger) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.ledger = l
	a.memo.Purge()
	a.log.Info().Str("version", l.Version()).Int("events", l.Len()).Msg("ledger reloaded")
}

// Overall returns the ecosystem overview.
func (a *Analyzer) Overall(opts OverallOptions) (*OverallProfile, error) {
	return memoize(a, "overall", fmt.Sprintf("%s|%d", opts.Trend, opts.TopN), func(l *Ledger) (*OverallProfile, error) {
		return NewOverallProfile(l, opts)
	})
}

// Startup returns the profile of a startup.
func (a *Analyzer) Startup(name string, opts StartupOptions) (*StartupProfile, error) {
	return memoize(a, "startup", fmt.Sprintf("%q|%d", name, opts.Peers), func(l *Ledger) (*StartupProfile, error) {
		return NewStartupProfile(l, name, opts)
	})
}

// Investor returns the profile of the investors matching query.
func (a *Analyzer) Investor(query string, opts InvestorOptions) (*InvestorProfile, error) {
	return memoize(a, "investor", fmt.Sprintf("%q|%d|%d|%d", query, opts.Recent, opts.Biggest, opts.CoInvestors), func(l *Ledger) (*InvestorProfile, error) {
		return NewInvestorProfile(l, query, opts)
	})
}

// memoize returns the memoized result of op(args) on the current snapshot,
// computing it on a miss. Errors are not memoized.
func memoize[T any](a *Analyzer, op, args string, compute func(*Ledger) (T, error)) (T, error) {
	a.mu.RLock()
	l := a.ledger
	a.mu.RUnlock()

	key := l.Version() + "|" + op + "|" + args
	h := xxhash.Sum64String(key)
	if e, ok := a.memo.Get(h); ok && e.key == key {
		a.observer.Hit(op)
		return e.value.(T), nil
	}
	a.observer.Miss(op)

	v, err := compute(l)
	if err != nil {
		var zero T
		return zero, err
	}
	a.log.Debug().Str("op", op).Str("args", args).Str("version", l.Version()).Msg("view computed")

	a.mu.RLock()
	if a.ledger == l {
		a.memo.Add(h, memoEntry{key: key, value: v})
	}
	a.mu.RUnlock()
	return v, nil
}
