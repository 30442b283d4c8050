package config

import (
	"github.com/pkg/errors"
	"max.ks1230/expense-splitter/internal/model/settlement"
)

const defaultCurrencySymbol = "₹"

type AppConfig struct {
	Participants []string `yaml:"participants"`
	Symbol       string   `yaml:"currency-symbol"`
}

func (a *AppConfig) validate() error {
	if len(a.Participants) == 0 {
		return nil
	}
	if len(a.Participants) != 2 {
		return errors.Errorf("exactly two participants expected, got %d", len(a.Participants))
	}
	if a.Participants[0] == "" || a.Participants[1] == "" || a.Participants[0] == a.Participants[1] {
		return errors.New("participants must be two distinct non-empty names")
	}
	return nil
}

// Pair returns the configured participants, the first one is distinguished.
func (a *AppConfig) Pair() settlement.Pair {
	if len(a.Participants) != 2 {
		return settlement.DefaultPair
	}
	return settlement.Pair{First: a.Participants[0], Second: a.Participants[1]}
}

func (a *AppConfig) CurrencySymbol() string {
	if a.Symbol == "" {
		return defaultCurrencySymbol
	}
	return a.Symbol
}
