// Package chain defines the collaborators that supply rewards and prices to an export.
package chain

import (
	"context"
	"time"

	"github.com/goodnatureofminers/staking-rewards-exporter/internal/staking/model"
)

// RewardSource crawls a network for the staking rewards of one account.
// Rewards are returned ordered by occurrence time, oldest first.
type RewardSource interface {
	FetchAllRewards(ctx context.Context, address string, from, to time.Time) ([]model.RewardEvent, error)
}

// PriceSource returns one price snapshot per reward, in reward order.
type PriceSource interface {
	FetchPrices(ctx context.Context, rewards []model.RewardEvent) ([]model.PriceSnapshot, error)
}
