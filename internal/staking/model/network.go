// Package model defines domain models for staking reward export.
package model

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/shopspring/decimal"
)

// Network identifies a relay chain whose staking rewards are exported.
type Network string

var (
	Polkadot Network = "polkadot"
	Kusama   Network = "kusama"
)

// ParseNetwork accepts a network name or its token symbol, case-insensitively.
func ParseNetwork(value string) (Network, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "polkadot", "dot":
		return Polkadot, nil
	case "kusama", "ksm":
		return Kusama, nil
	default:
		return "", fmt.Errorf("network must be one of: 'kusama', 'polkadot', 'dot', 'ksm', got %q", value)
	}
}

// UnmarshalFlag lets go-flags parse a Network option.
func (n *Network) UnmarshalFlag(value string) error {
	parsed, err := ParseNetwork(value)
	if err != nil {
		return err
	}
	*n = parsed
	return nil
}

// ID is the identifier used in output file names.
func (n Network) ID() string {
	return string(n)
}

// Symbol returns the display denomination of the network token.
func (n Network) Symbol() string {
	switch n {
	case Polkadot:
		return "DOT"
	case Kusama:
		return "KSM"
	default:
		return strings.ToUpper(string(n))
	}
}

// Decimals is the power of ten between the smallest on-chain unit and the
// display unit: 10 for Polkadot, 12 for Kusama.
func (n Network) Decimals() int32 {
	switch n {
	case Polkadot:
		return 10
	case Kusama:
		return 12
	default:
		return 0
	}
}

// Divisor returns the base-unit divisor of the network.
func (n Network) Divisor() decimal.Decimal {
	return decimal.New(1, n.Decimals())
}

// ToDisplayAmount scales a raw reward amount into the network's display unit.
// The scaling is exact; only the final conversion to float64 may round.
func (n Network) ToDisplayAmount(raw *big.Int) float64 {
	if raw == nil {
		return 0
	}
	return decimal.NewFromBigInt(raw, -n.Decimals()).InexactFloat64()
}

// SubscanHost is the network segment of the Subscan API host name.
func (n Network) SubscanHost() string {
	return string(n)
}

// CoinGeckoID is the coin id used by the CoinGecko API.
func (n Network) CoinGeckoID() string {
	return string(n)
}
