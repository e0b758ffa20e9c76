package model

import (
	"fmt"
	"strings"

	"cloud.google.com/go/civil"
)

// FetchError reports a failure of the reward crawler or the price feed.
type FetchError struct {
	Stage string
	Err   error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch %s: %v", e.Stage, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// CurrencyNotSupportedError reports a fiat code missing from a price snapshot.
type CurrencyNotSupportedError struct {
	Code      string
	Available []string
}

func (e *CurrencyNotSupportedError) Error() string {
	return fmt.Sprintf("specified fiat currency %q not supported, available: [%s]",
		e.Code, strings.Join(e.Available, ", "))
}

// AlignmentMismatchError reports rewards and prices that do not pair up,
// either because a snapshot prices another day or because the sequences
// differ in length. For a length mismatch Index is the number of rows
// written before the shorter sequence ran out.
type AlignmentMismatchError struct {
	Index     int
	Rewards   int
	Prices    int
	RewardDay civil.Date
	PriceDay  civil.Date
}

func (e *AlignmentMismatchError) Error() string {
	if e.RewardDay != e.PriceDay {
		return fmt.Sprintf("alignment mismatch at row %d: reward on %s paired with price for %s",
			e.Index, e.RewardDay, e.PriceDay)
	}
	return fmt.Sprintf("alignment mismatch: %d rewards, %d prices, %d rows written",
		e.Rewards, e.Prices, e.Index)
}

// SerializationError reports a failed write of one row. Row 0 is the header.
type SerializationError struct {
	Row int
	Err error
}

func (e *SerializationError) Error() string {
	if e.Row == 0 {
		return fmt.Sprintf("serialize header: %v", e.Err)
	}
	return fmt.Sprintf("serialize row %d: %v", e.Row, e.Err)
}

func (e *SerializationError) Unwrap() error {
	return e.Err
}

// SinkCreationError reports an output destination that cannot be opened.
type SinkCreationError struct {
	Destination string
	Err         error
}

func (e *SinkCreationError) Error() string {
	return fmt.Sprintf("create output %s: %v", e.Destination, e.Err)
}

func (e *SinkCreationError) Unwrap() error {
	return e.Err
}
