package model

import (
	"math/big"
	"time"

	"cloud.google.com/go/civil"
)

// RewardEvent is a single staking reward payout for an account.
type RewardEvent struct {
	BlockNum   uint64
	Day        civil.Date
	Timestamp  time.Time
	Amount     *big.Int
	EventIndex string
}
