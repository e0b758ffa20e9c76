package subscan

import (
	"context"
	"net/http"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Requester interface {
		Do(ctx context.Context, operation string, newRequest func(context.Context) (*http.Request, error)) ([]byte, error)
	}
)

type rewardSlashRequest struct {
	Row     int    `json:"row"`
	Page    int    `json:"page"`
	Address string `json:"address"`
}

type rewardSlashResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    struct {
		Count int           `json:"count"`
		List  []rewardEvent `json:"list"`
	} `json:"data"`
}

type rewardEvent struct {
	Account        string `json:"account"`
	Amount         string `json:"amount"`
	BlockNum       uint64 `json:"block_num"`
	BlockTimestamp int64  `json:"block_timestamp"`
	EventID        string `json:"event_id"`
	EventIndex     string `json:"event_index"`
	ModuleID       string `json:"module_id"`
}
