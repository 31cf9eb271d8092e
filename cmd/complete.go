package cmd

import (
	"maps"

	"github.com/etnz/stockbook/docs"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// Completion describes the command line for shell completion.
func Completion() *complete.Command {
	topics, _ := docs.GetAllTopics()
	session := map[string]complete.Predictor{
		"plain":    predict.Nothing,
		"method":   predict.Set{"average", "fifo"},
		"currency": predict.Set{"EUR", "USD", "GBP", "JPY", "CHF"},
		"env":      predict.Files("*"),
	}
	run := map[string]complete.Predictor{"k": predict.Nothing}
	maps.Copy(run, session)
	return &complete.Command{
		Sub: map[string]*complete.Command{
			"shell": {Flags: session},
			"run":   {Flags: run, Args: predict.Files("*")},
			"topic": {
				Flags: map[string]complete.Predictor{"plain": predict.Nothing},
				Args:  predict.Set(append(topics, "*")),
			},
			"help":     {},
			"flags":    {},
			"commands": {},
		},
	}
}
