package exporter

import (
	"fmt"
	"time"

	"github.com/goodnatureofminers/staking-rewards-exporter/internal/staking/model"
	"github.com/lestrrat-go/strftime"
)

// DefaultDateFormat renders the reward day as YYYY-MM-DD.
const DefaultDateFormat = "%Y-%m-%d"

// NewDateFormat compiles a strftime pattern for BuildRecord.
func NewDateFormat(pattern string) (DateFormatter, error) {
	f, err := strftime.New(pattern)
	if err != nil {
		return nil, fmt.Errorf("compile date format %q: %w", pattern, err)
	}
	return f, nil
}

// BuildRecord turns one reward and the price snapshot of its day into an
// export row. The only failure is a currency missing from the snapshot.
func BuildRecord(
	reward model.RewardEvent,
	snapshot model.PriceSnapshot,
	network model.Network,
	currency string,
	dateFormat DateFormatter,
) (model.ExportRecord, error) {
	price, err := snapshot.Price(currency)
	if err != nil {
		return model.ExportRecord{}, err
	}

	return model.ExportRecord{
		BlockNum:  reward.BlockNum,
		BlockTime: dateFormat.FormatString(reward.Day.In(time.UTC)),
		Amount:    network.ToDisplayAmount(reward.Amount),
		Price:     price,
	}, nil
}
