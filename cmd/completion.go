package cmd

import (
	"path"

	"github.com/etnz/funding"
	"github.com/etnz/funding/config"
	"github.com/etnz/funding/docs"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// Complete handles shell completion: when the shell is asking for
// completions, it prints them and exits. Otherwise it does nothing.
//
// `COMP_INSTALL=1 fnd` installs the completion in the user's shell.
func Complete(name string) { completion().Complete(path.Base(name)) }

var (
	dimensions = predict.Set{"startup", "sector", "city", "round", "investor", "day", "week", "month", "quarter", "year"}
	reducers   = predict.Set{"sum", "count", "mean", "max"}
)

// completion describes the command line of fnd.
func completion() *complete.Command {
	return &complete.Command{
		Flags: map[string]complete.Predictor{
			"config": predict.Files("*.yaml"),
			"ledger": predict.Or(predict.Files("*.jsonl"), predict.Files("*.csv")),
			"v":      predict.Nothing,
		},
		Sub: map[string]*complete.Command{
			"overall": {Flags: map[string]complete.Predictor{
				"trend": predict.Set{"sum", "count"},
				"top":   predict.Something,
			}},
			"startup": {
				Flags: map[string]complete.Predictor{"peers": predict.Something},
				Args:  complete.PredictFunc(func(string) []string { return ledgerNames((*funding.Ledger).Startups) }),
			},
			"investor": {
				Flags: map[string]complete.Predictor{
					"recent":      predict.Something,
					"biggest":     predict.Something,
					"coinvestors": predict.Something,
				},
				Args: complete.PredictFunc(func(string) []string { return ledgerNames((*funding.Ledger).Investors) }),
			},
			"aggregate": {Flags: map[string]complete.Predictor{
				"by":     dimensions,
				"reduce": reducers,
				"top":    predict.Something,
			}},
			"query": {
				Flags: map[string]complete.Predictor{"top": predict.Something},
				Args:  predict.Set{"overall", "startup", "investor"},
			},
			"startups":  {Args: predict.Something},
			"investors": {Args: predict.Something},
			"import": {
				Flags: map[string]complete.Predictor{"o": predict.Files("*.jsonl")},
				Args:  predict.Or(predict.Files("*.csv"), predict.Files("*.jsonl")),
			},
			"serve":  {Flags: map[string]complete.Predictor{"addr": predict.Something}},
			"assist": {Flags: map[string]complete.Predictor{"model": predict.Something}},
			"topic": {
				Flags: map[string]complete.Predictor{"l": predict.Nothing},
				Args:  complete.PredictFunc(func(string) []string { return topics() }),
			},
		},
	}
}

// ledgerNames returns the names listed by list in the ledger of the
// configuration, nothing if the ledger cannot be read.
func ledgerNames(list func(*funding.Ledger) []string) []string {
	cfg, err := config.Load(config.DefaultFile)
	if err != nil {
		return nil
	}
	l, err := funding.OpenLedger(cfg.Ledger)
	if err != nil {
		return nil
	}
	return list(l)
}

func topics() []string {
	t, err := docs.GetAllTopics()
	if err != nil {
		return nil
	}
	return t
}
