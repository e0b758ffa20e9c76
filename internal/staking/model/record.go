package model

import "strconv"

var exportHeader = []string{"block_num", "block_time", "amount", "price"}

// ExportRecord is one row of the rewards export.
type ExportRecord struct {
	BlockNum  uint64
	BlockTime string
	Amount    float64
	Price     float64
}

// ExportHeader returns the column names of an export.
func ExportHeader() []string {
	return append([]string(nil), exportHeader...)
}

// Fields renders the record in column order.
func (r ExportRecord) Fields() []string {
	return []string{
		strconv.FormatUint(r.BlockNum, 10),
		r.BlockTime,
		strconv.FormatFloat(r.Amount, 'f', -1, 64),
		strconv.FormatFloat(r.Price, 'f', -1, 64),
	}
}
