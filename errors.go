package funding

import "errors"

var (
	// ErrEmptyPopulation is returned when a mean or a max is requested over
	// zero records. It signals a defect in the caller: every profile checks
	// for emptiness before benchmarking.
	ErrEmptyPopulation = errors.New("statistic over an empty population")

	// ErrNegativeAmount rejects input that breaks the non-negative amount contract.
	ErrNegativeAmount = errors.New("negative amount")

	// ErrCurrencyMismatch rejects a ledger whose events use several currencies.
	ErrCurrencyMismatch = errors.New("currency mismatch")

	ErrUnknownDimension = errors.New("unknown dimension")
	ErrUnknownReducer   = errors.New("unknown reducer")
)
