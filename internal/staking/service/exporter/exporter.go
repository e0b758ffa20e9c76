// Package exporter fetches the staking rewards of an account, prices them
// and writes one row per reward to the chosen sink.
package exporter

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goodnatureofminers/staking-rewards-exporter/internal/staking/chain"
	"github.com/goodnatureofminers/staking-rewards-exporter/internal/staking/model"
	"go.uber.org/zap"
)

const (
	stageRewards = "rewards"
	stagePrices  = "prices"
	stageWrite   = "write"
)

// Request describes one export. All defaults are resolved before a run.
type Request struct {
	Network    model.Network
	Address    string
	From       time.Time
	To         time.Time
	Currency   string
	DateFormat DateFormatter
}

func (r Request) validate() error {
	if r.Address == "" {
		return errors.New("address is required")
	}
	if r.Currency == "" {
		return errors.New("currency is required")
	}
	if r.DateFormat == nil {
		return errors.New("date format is required")
	}
	if r.From.After(r.To) {
		return fmt.Errorf("from %s is after to %s", r.From.Format(time.DateTime), r.To.Format(time.DateTime))
	}
	return nil
}

// Summary reports what a run produced.
type Summary struct {
	Rewards     int
	Rows        int
	Destination string
}

type Service struct {
	logger  *zap.Logger
	rewards RewardSource
	prices  PriceSource
	sinks   SinkFactory
	metrics Metrics
}

func NewService(
	rewards chain.RewardSource,
	prices chain.PriceSource,
	sinks SinkFactory,
	metrics Metrics,
	logger *zap.Logger,
) (*Service, error) {
	if rewards == nil || prices == nil {
		return nil, errors.New("reward and price sources are required")
	}
	if sinks == nil {
		return nil, errors.New("sink factory is required")
	}
	if metrics == nil {
		return nil, errors.New("exporter metrics is required")
	}

	return &Service{
		logger:  logger.Named("exporter"),
		rewards: rewards,
		prices:  prices,
		sinks:   sinks,
		metrics: metrics,
	}, nil
}

// Run executes one export. The sink is opened after both fetches succeed
// and is closed on every path once opened.
func (s *Service) Run(ctx context.Context, req Request) (summary Summary, err error) {
	started := time.Now()
	defer func() {
		s.metrics.ObserveRun(err, summary.Rows, started)
	}()

	if err = req.validate(); err != nil {
		return summary, err
	}

	logger := s.logger.With(
		zap.String("network", req.Network.ID()),
		zap.String("address", req.Address),
		zap.String("currency", req.Currency),
	)

	stageStarted := time.Now()
	rewards, err := s.rewards.FetchAllRewards(ctx, req.Address, req.From, req.To)
	s.metrics.ObserveStage(stageRewards, err, stageStarted)
	if err != nil {
		logger.Error("fetch rewards failed", zap.Error(err))
		return summary, &model.FetchError{Stage: stageRewards, Err: err}
	}
	summary.Rewards = len(rewards)
	logger.Info("rewards fetched", zap.Int("reward_count", len(rewards)))

	stageStarted = time.Now()
	prices, err := s.prices.FetchPrices(ctx, rewards)
	s.metrics.ObserveStage(stagePrices, err, stageStarted)
	if err != nil {
		logger.Error("fetch prices failed", zap.Error(err))
		return summary, &model.FetchError{Stage: stagePrices, Err: err}
	}
	logger.Debug("prices fetched", zap.Int("price_count", len(prices)))

	out, err := s.sinks.Open(ctx)
	if err != nil {
		logger.Error("open output failed", zap.Error(err))
		return summary, err
	}
	summary.Destination = out.Destination()

	stageStarted = time.Now()
	summary.Rows, err = Reconcile(rewards, prices, req.Network, req.Currency, req.DateFormat, out)
	if closeErr := out.Close(); closeErr != nil {
		if err == nil {
			err = closeErr
		} else {
			logger.Warn("close output failed", zap.Error(closeErr))
		}
	}
	s.metrics.ObserveStage(stageWrite, err, stageStarted)
	if err != nil {
		logger.Error("export failed",
			zap.Int("rows", summary.Rows),
			zap.String("destination", summary.Destination),
			zap.Error(err))
		return summary, err
	}

	logger.Info("export finished",
		zap.Int("rows", summary.Rows),
		zap.String("destination", summary.Destination),
		zap.Duration("elapsed", time.Since(started)))
	return summary, nil
}
