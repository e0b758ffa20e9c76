package model

import (
	"sort"

	"cloud.google.com/go/civil"
)

// PriceSnapshot holds the fiat valuation of the network token for one day.
// Day is zero when the snapshot is matched to its reward by position only.
type PriceSnapshot struct {
	Day        civil.Date
	MarketData map[string]float64
}

// Keyed reports whether the snapshot carries the day it prices.
func (s PriceSnapshot) Keyed() bool {
	return s.Day != civil.Date{}
}

// Price looks up the exact, case-sensitive currency code.
func (s PriceSnapshot) Price(code string) (float64, error) {
	price, ok := s.MarketData[code]
	if !ok {
		return 0, &CurrencyNotSupportedError{Code: code, Available: s.Currencies()}
	}
	return price, nil
}

// Currencies returns the sorted currency codes present in the snapshot.
func (s PriceSnapshot) Currencies() []string {
	codes := make([]string, 0, len(s.MarketData))
	for code := range s.MarketData {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}
