package coingecko

import (
	"context"
	"net/http"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Requester interface {
		Do(ctx context.Context, operation string, newRequest func(context.Context) (*http.Request, error)) ([]byte, error)
	}
	// Progress is advanced once per fetched day.
	Progress interface {
		ChangeMax(max int)
		Add(num int) error
	}
)

type coinHistoryResponse struct {
	ID         string `json:"id"`
	MarketData *struct {
		CurrentPrice map[string]float64 `json:"current_price"`
	} `json:"market_data"`
}
