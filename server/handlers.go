package server

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/etnz/funding"
	"github.com/gorilla/mux"
)

// intParam returns a positive integer query parameter, or def when absent.
func intParam(r *http.Request, name string, def int) (int, error) {
	v := r.URL.Query().Get(name)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("parameter %q must be a positive integer, got %q", name, v)
	}
	return n, nil
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	l := s.analyzer.Ledger()
	s.writeJSON(w, http.StatusOK, map[string]any{
		"status":   "ok",
		"version":  l.Version(),
		"events":   l.Len(),
		"currency": l.Currency(),
	})
}

func (s *Server) overall(w http.ResponseWriter, r *http.Request) {
	opts := funding.OverallOptions{Trend: funding.Sum}
	if v := r.URL.Query().Get("trend"); v != "" {
		trend, err := funding.ParseReducer(v)
		if err != nil {
			s.writeError(w, r, http.StatusBadRequest, err)
			return
		}
		opts.Trend = trend
	}
	var err error
	if opts.TopN, err = intParam(r, "top", s.top); err != nil {
		s.writeError(w, r, http.StatusBadRequest, err)
		return
	}
	p, err := s.analyzer.Overall(opts)
	if err != nil {
		s.writeError(w, r, http.StatusInternalServerError, err)
		return
	}
	s.writeJSON(w, http.StatusOK, p)
}

// names filters names with the q parameter, never returning null.
func names(all []string, r *http.Request) []string {
	return append([]string{}, funding.MatchNames(all, r.URL.Query().Get("q"))...)
}

func (s *Server) startups(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, names(s.analyzer.Ledger().Startups(), r))
}

func (s *Server) startup(w http.ResponseWriter, r *http.Request) {
	peers, err := intParam(r, "peers", s.top)
	if err != nil {
		s.writeError(w, r, http.StatusBadRequest, err)
		return
	}
	p, err := s.analyzer.Startup(mux.Vars(r)["name"], funding.StartupOptions{Peers: peers})
	if err != nil {
		s.writeError(w, r, http.StatusInternalServerError, err)
		return
	}
	s.writeJSON(w, http.StatusOK, p)
}

func (s *Server) investors(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, names(s.analyzer.Ledger().Investors(), r))
}

func (s *Server) investor(w http.ResponseWriter, r *http.Request) {
	var opts funding.InvestorOptions
	var err error
	for name, field := range map[string]*int{"recent": &opts.Recent, "biggest": &opts.Biggest, "coinvestors": &opts.CoInvestors} {
		if *field, err = intParam(r, name, 0); err != nil {
			s.writeError(w, r, http.StatusBadRequest, err)
			return
		}
	}
	p, err := s.analyzer.Investor(mux.Vars(r)["query"], opts)
	if err != nil {
		s.writeError(w, r, http.StatusInternalServerError, err)
		return
	}
	s.writeJSON(w, http.StatusOK, p)
}

// aggregateResponse is the body of GET /api/aggregate.
type aggregateResponse struct {
	Dimension funding.Dimension `json:"dimension"`
	Reducer   funding.Reducer   `json:"reducer"`
	Currency  string            `json:"currency"`
	Groups    []funding.Group   `json:"groups"`
}

func (s *Server) aggregate(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	dim, err := funding.ParseDimension(q.Get("by"))
	if err != nil {
		s.writeError(w, r, http.StatusBadRequest, err)
		return
	}
	reducer := funding.Sum
	if v := q.Get("reduce"); v != "" {
		if reducer, err = funding.ParseReducer(v); err != nil {
			s.writeError(w, r, http.StatusBadRequest, err)
			return
		}
	}
	top, err := intParam(r, "top", 0)
	if err != nil {
		s.writeError(w, r, http.StatusBadRequest, err)
		return
	}

	l := s.analyzer.Ledger()
	a := funding.Aggregate(l.Events(), dim, reducer)
	groups := a.Groups
	if q.Has("top") {
		groups = funding.TopK(a, top)
	}
	s.writeJSON(w, http.StatusOK, aggregateResponse{Dimension: dim, Reducer: reducer, Currency: l.Currency(), Groups: groups})
}

func (s *Server) reloadLedger(w http.ResponseWriter, r *http.Request) {
	l, err := s.reload()
	if err != nil {
		s.writeError(w, r, http.StatusInternalServerError, err)
		return
	}
	s.analyzer.Reload(l)
	s.metrics.events.Set(float64(l.Len()))
	s.health(w, r)
}
