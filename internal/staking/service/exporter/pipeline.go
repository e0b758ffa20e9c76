package exporter

import (
	"github.com/goodnatureofminers/staking-rewards-exporter/internal/staking/model"
)

// Reconcile pairs rewards with prices by index and serializes one row per
// pair, in order. It stops at the first failing row; rows already written
// stay in the sink. When the sequences differ in length, the common prefix
// is written and an AlignmentMismatchError is returned with the row count.
func Reconcile(
	rewards []model.RewardEvent,
	prices []model.PriceSnapshot,
	network model.Network,
	currency string,
	dateFormat DateFormatter,
	out Sink,
) (int, error) {
	n := min(len(rewards), len(prices))

	rows := 0
	for i := 0; i < n; i++ {
		reward, snapshot := rewards[i], prices[i]
		if snapshot.Keyed() && snapshot.Day != reward.Day {
			return rows, &model.AlignmentMismatchError{
				Index:     i,
				Rewards:   len(rewards),
				Prices:    len(prices),
				RewardDay: reward.Day,
				PriceDay:  snapshot.Day,
			}
		}

		record, err := BuildRecord(reward, snapshot, network, currency, dateFormat)
		if err != nil {
			return rows, err
		}
		if err := out.Serialize(record); err != nil {
			return rows, err
		}
		rows++
	}

	if len(rewards) != len(prices) {
		return rows, &model.AlignmentMismatchError{
			Index:   n,
			Rewards: len(rewards),
			Prices:  len(prices),
		}
	}
	return rows, nil
}
