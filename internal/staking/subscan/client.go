// Package subscan crawls staking rewards from the Subscan explorer API.
package subscan

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"math/big"
	"net/http"
	"sort"
	"strings"
	"time"

	"cloud.google.com/go/civil"
	"github.com/goodnatureofminers/staking-rewards-exporter/internal/staking/chain"
	"github.com/goodnatureofminers/staking-rewards-exporter/internal/staking/model"
	"go.uber.org/zap"
)

const (
	defaultPageSize = 100
	rewardSlashPath = "/api/scan/account/reward_slash"
)

// DefaultBaseURL returns the public Subscan API endpoint of a network.
func DefaultBaseURL(network model.Network) string {
	return fmt.Sprintf("https://%s.api.subscan.io", network.SubscanHost())
}

var _ chain.RewardSource = (*Client)(nil)

// Client implements chain.RewardSource on top of Subscan.
type Client struct {
	baseURL   string
	apiKey    string
	requester Requester
	pageSize  int
	logger    *zap.Logger
}

// NewClient constructs a Subscan client. An empty baseURL selects the public
// endpoint of network.
func NewClient(baseURL, apiKey string, network model.Network, requester Requester, logger *zap.Logger) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL(network)
	}
	return &Client{
		baseURL:   strings.TrimRight(baseURL, "/"),
		apiKey:    apiKey,
		requester: requester,
		pageSize:  defaultPageSize,
		logger:    logger.Named("subscan"),
	}
}

// FetchAllRewards pages through the reward and slash events of address,
// newest first, until it passes from, and returns the rewards paid within
// [from, to] oldest first.
func (c *Client) FetchAllRewards(ctx context.Context, address string, from, to time.Time) ([]model.RewardEvent, error) {
	var (
		rewards []model.RewardEvent
		seen    int
	)
	for page := 0; ; page++ {
		resp, err := c.fetchPage(ctx, address, page)
		if err != nil {
			return nil, err
		}
		list := resp.Data.List
		if len(list) == 0 {
			break
		}

		reachedStart := false
		for _, item := range list {
			ts := time.Unix(item.BlockTimestamp, 0).UTC()
			if ts.Before(from) {
				reachedStart = true
				continue
			}
			if ts.After(to) || !isReward(item.EventID) {
				continue
			}
			reward, err := item.toModel(ts)
			if err != nil {
				return nil, err
			}
			rewards = append(rewards, reward)
		}

		seen += len(list)
		c.logger.Debug("fetched reward page",
			zap.Int("page", page),
			zap.Int("events", len(list)),
			zap.Int("seen", seen),
			zap.Int("count", resp.Data.Count),
		)
		if reachedStart || seen >= resp.Data.Count || len(list) < c.pageSize {
			break
		}
	}

	sort.SliceStable(rewards, func(i, j int) bool {
		if !rewards[i].Timestamp.Equal(rewards[j].Timestamp) {
			return rewards[i].Timestamp.Before(rewards[j].Timestamp)
		}
		return rewards[i].BlockNum < rewards[j].BlockNum
	})
	c.logger.Info("fetched rewards", zap.String("address", address), zap.Int("rewards", len(rewards)))
	return rewards, nil
}

func (c *Client) fetchPage(ctx context.Context, address string, page int) (*rewardSlashResponse, error) {
	payload, err := json.Marshal(rewardSlashRequest{Row: c.pageSize, Page: page, Address: address})
	if err != nil {
		return nil, fmt.Errorf("encode reward request: %w", err)
	}

	body, err := c.requester.Do(ctx, "reward_slash", func(ctx context.Context) (*http.Request, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+rewardSlashPath, bytes.NewReader(payload))
		if err != nil {
			return nil, err
		}
		req.Header.Set("Content-Type", "application/json")
		if c.apiKey != "" {
			req.Header.Set("X-API-Key", c.apiKey)
		}
		return req, nil
	})
	if err != nil {
		return nil, fmt.Errorf("fetch reward page %d: %w", page, err)
	}

	var resp rewardSlashResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("decode reward page %d: %w", page, err)
	}
	if resp.Code != 0 {
		return nil, fmt.Errorf("reward page %d: subscan error %d: %s", page, resp.Code, resp.Message)
	}
	return &resp, nil
}

func (e rewardEvent) toModel(ts time.Time) (model.RewardEvent, error) {
	amount, ok := new(big.Int).SetString(e.Amount, 10)
	if !ok || amount.Sign() < 0 {
		return model.RewardEvent{}, fmt.Errorf("reward at block %d: invalid amount %q", e.BlockNum, e.Amount)
	}
	return model.RewardEvent{
		BlockNum:   e.BlockNum,
		Day:        civil.DateOf(ts),
		Timestamp:  ts,
		Amount:     amount,
		EventIndex: e.EventIndex,
	}, nil
}

func isReward(eventID string) bool {
	return eventID == "Reward" || eventID == "Rewarded"
}
