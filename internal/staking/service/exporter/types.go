package exporter

import (
	"context"
	"time"

	"github.com/goodnatureofminers/staking-rewards-exporter/internal/staking/model"
	"github.com/goodnatureofminers/staking-rewards-exporter/internal/staking/sink"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	RewardSource interface {
		FetchAllRewards(ctx context.Context, address string, from, to time.Time) ([]model.RewardEvent, error)
	}
	PriceSource interface {
		FetchPrices(ctx context.Context, rewards []model.RewardEvent) ([]model.PriceSnapshot, error)
	}
	SinkFactory interface {
		Open(ctx context.Context) (sink.Sink, error)
	}
	Sink interface {
		Serialize(record model.ExportRecord) error
		Close() error
		Destination() string
	}
	Metrics interface {
		ObserveStage(stage string, err error, started time.Time)
		ObserveRun(err error, rows int, started time.Time)
	}
	DateFormatter interface {
		FormatString(t time.Time) string
	}
)
