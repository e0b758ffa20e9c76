// Package coingecko fetches daily token prices from the CoinGecko API.
package coingecko

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"cloud.google.com/go/civil"
	"github.com/goodnatureofminers/staking-rewards-exporter/internal/staking/chain"
	"github.com/goodnatureofminers/staking-rewards-exporter/internal/staking/model"
	"github.com/goodnatureofminers/staking-rewards-exporter/pkg/workerpool"
	"go.uber.org/zap"
)

const (
	// DefaultBaseURL is the public CoinGecko API endpoint.
	DefaultBaseURL = "https://api.coingecko.com"

	historyDateLayout  = "02-01-2006"
	defaultWorkerCount = 4
)

var _ chain.PriceSource = (*Client)(nil)

// Client implements chain.PriceSource on top of CoinGecko coin history.
type Client struct {
	baseURL     string
	apiKey      string
	coinID      string
	requester   Requester
	workerCount int
	progress    Progress
	logger      *zap.Logger
}

// NewClient constructs a CoinGecko client for the token of network.
func NewClient(baseURL, apiKey string, network model.Network, requester Requester, workerCount int, progress Progress, logger *zap.Logger) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if workerCount < 1 {
		workerCount = defaultWorkerCount
	}
	return &Client{
		baseURL:     strings.TrimRight(baseURL, "/"),
		apiKey:      apiKey,
		coinID:      network.CoinGeckoID(),
		requester:   requester,
		workerCount: workerCount,
		progress:    progress,
		logger:      logger.Named("coingecko"),
	}
}

// FetchPrices returns one snapshot per reward, in reward order. Each distinct
// day is requested once.
func (c *Client) FetchPrices(ctx context.Context, rewards []model.RewardEvent) ([]model.PriceSnapshot, error) {
	days := distinctDays(rewards)
	if c.progress != nil {
		c.progress.ChangeMax(len(days))
	}

	snapshots, err := workerpool.Map(ctx, c.workerCount, days, c.fetchDay)
	if err != nil {
		return nil, err
	}

	byDay := make(map[civil.Date]model.PriceSnapshot, len(days))
	for _, snapshot := range snapshots {
		byDay[snapshot.Day] = snapshot
	}

	prices := make([]model.PriceSnapshot, len(rewards))
	for i, reward := range rewards {
		prices[i] = byDay[reward.Day]
	}
	c.logger.Info("fetched prices", zap.Int("days", len(days)), zap.Int("rewards", len(rewards)))
	return prices, nil
}

func (c *Client) fetchDay(ctx context.Context, day civil.Date) (model.PriceSnapshot, error) {
	query := url.Values{}
	query.Set("date", day.In(time.UTC).Format(historyDateLayout))
	query.Set("localization", "false")
	endpoint := fmt.Sprintf("%s/api/v3/coins/%s/history?%s", c.baseURL, url.PathEscape(c.coinID), query.Encode())

	body, err := c.requester.Do(ctx, "coin_history", func(ctx context.Context) (*http.Request, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
		if err != nil {
			return nil, err
		}
		req.Header.Set("Accept", "application/json")
		if c.apiKey != "" {
			req.Header.Set("x-cg-demo-api-key", c.apiKey)
		}
		return req, nil
	})
	if err != nil {
		return model.PriceSnapshot{}, fmt.Errorf("fetch price for %s: %w", day, err)
	}

	var resp coinHistoryResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return model.PriceSnapshot{}, fmt.Errorf("decode price for %s: %w", day, err)
	}

	snapshot := model.PriceSnapshot{Day: day, MarketData: map[string]float64{}}
	if resp.MarketData != nil && resp.MarketData.CurrentPrice != nil {
		snapshot.MarketData = resp.MarketData.CurrentPrice
	} else {
		c.logger.Warn("no market data for day", zap.String("day", day.String()))
	}

	if c.progress != nil {
		_ = c.progress.Add(1)
	}
	c.logger.Debug("fetched price", zap.String("day", day.String()), zap.Int("currencies", len(snapshot.MarketData)))
	return snapshot, nil
}

func distinctDays(rewards []model.RewardEvent) []civil.Date {
	seen := make(map[civil.Date]struct{}, len(rewards))
	days := make([]civil.Date, 0, len(rewards))
	for _, reward := range rewards {
		if _, ok := seen[reward.Day]; ok {
			continue
		}
		seen[reward.Day] = struct{}{}
		days = append(days, reward.Day)
	}
	return days
}
