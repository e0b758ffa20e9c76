package main

import (
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"time"

	"github.com/goodnatureofminers/staking-rewards-exporter/internal/staking/model"
	"github.com/goodnatureofminers/staking-rewards-exporter/internal/staking/service/exporter"
	"github.com/goodnatureofminers/staking-rewards-exporter/internal/staking/sink"
)

type config struct {
	From       dateTime      `short:"f" long:"from" env:"STAKING_REWARDS_FROM" description:"start of the period, YYYY-MM-DD HH:MM:SS in UTC" required:"true"`
	To         dateTime      `short:"t" long:"to" env:"STAKING_REWARDS_TO" description:"end of the period, YYYY-MM-DD HH:MM:SS in UTC (default: now)"`
	Network    model.Network `short:"n" long:"network" env:"STAKING_REWARDS_NETWORK" description:"network: polkadot (dot) or kusama (ksm)" default:"polkadot"`
	Currency   string        `short:"c" long:"currency" env:"STAKING_REWARDS_CURRENCY" description:"fiat currency code as listed by CoinGecko, e.g. usd" required:"true"`
	Address    string        `short:"a" long:"address" env:"STAKING_REWARDS_ADDRESS" description:"stash account address" required:"true"`
	DateFormat string        `long:"date-format" env:"STAKING_REWARDS_DATE_FORMAT" description:"strftime pattern of the block_time column" default:"%Y-%m-%d"`
	Folder     string        `short:"p" long:"folder" env:"STAKING_REWARDS_FOLDER" description:"output folder (default: current directory)"`
	Stdout     bool          `short:"s" long:"stdout" env:"STAKING_REWARDS_STDOUT" description:"write rows to standard output instead of a file"`
	Verbose    bool          `short:"v" long:"verbose" env:"STAKING_REWARDS_VERBOSE" description:"debug logging"`

	SubscanURL      string        `long:"subscan-url" env:"STAKING_REWARDS_SUBSCAN_URL" description:"Subscan API base URL (default: public endpoint of the network)"`
	SubscanAPIKey   string        `long:"subscan-api-key" env:"STAKING_REWARDS_SUBSCAN_API_KEY" description:"Subscan API key"`
	CoinGeckoURL    string        `long:"coingecko-url" env:"STAKING_REWARDS_COINGECKO_URL" description:"CoinGecko API base URL" default:"https://api.coingecko.com"`
	CoinGeckoAPIKey string        `long:"coingecko-api-key" env:"STAKING_REWARDS_COINGECKO_API_KEY" description:"CoinGecko demo API key"`
	HTTPTimeout     time.Duration `long:"http-timeout" env:"STAKING_REWARDS_HTTP_TIMEOUT" description:"timeout of a single HTTP request" default:"30s"`
	SubscanRPS      int           `long:"subscan-rps" env:"STAKING_REWARDS_SUBSCAN_RPS" description:"Subscan requests per second" default:"2"`
	CoinGeckoRPM    int           `long:"coingecko-rpm" env:"STAKING_REWARDS_COINGECKO_RPM" description:"CoinGecko requests per minute" default:"10"`
	PriceWorkers    int           `long:"price-workers" env:"STAKING_REWARDS_PRICE_WORKERS" description:"concurrent price requests" default:"4"`
	MaxRetries      int           `long:"max-retries" env:"STAKING_REWARDS_MAX_RETRIES" description:"retries of a throttled or failed request" default:"5"`

	S3Bucket       string `long:"s3-bucket" env:"STAKING_REWARDS_S3_BUCKET" description:"upload the export to this S3 bucket instead of a local file"`
	S3Prefix       string `long:"s3-prefix" env:"STAKING_REWARDS_S3_PREFIX" description:"key prefix of the uploaded export"`
	PushgatewayURL string `long:"pushgateway-url" env:"STAKING_REWARDS_PUSHGATEWAY_URL" description:"Prometheus Pushgateway to push run metrics to"`
}

// dateTime parses flag values such as "2021-06-01 00:00:00" as UTC. A bare
// date means midnight.
type dateTime struct {
	time.Time
}

func (d *dateTime) UnmarshalFlag(value string) error {
	for _, layout := range []string{time.DateTime, time.DateOnly} {
		if t, err := time.ParseInLocation(layout, value, time.UTC); err == nil {
			d.Time = t
			return nil
		}
	}
	return fmt.Errorf("invalid date time %q, expected YYYY-MM-DD HH:MM:SS", value)
}

func (c config) validate() error {
	if c.SubscanRPS < 1 {
		return errors.New("subscan-rps must be positive")
	}
	if c.CoinGeckoRPM < 1 {
		return errors.New("coingecko-rpm must be positive")
	}
	if c.MaxRetries < 0 {
		return errors.New("max-retries must not be negative")
	}
	if c.Stdout && c.S3Bucket != "" {
		return errors.New("stdout and s3-bucket are mutually exclusive")
	}
	return nil
}

// request resolves the defaults into the request of one run.
func (c config) request(now time.Time) (exporter.Request, error) {
	if err := c.validate(); err != nil {
		return exporter.Request{}, err
	}

	to := c.To.Time
	if to.IsZero() {
		to = now.UTC().Truncate(time.Second)
	}
	from := c.From.Time
	if from.After(to) {
		return exporter.Request{}, fmt.Errorf("from %s is after to %s", from.Format(time.DateTime), to.Format(time.DateTime))
	}

	pattern := c.DateFormat
	if pattern == "" {
		pattern = exporter.DefaultDateFormat
	}
	dateFormat, err := exporter.NewDateFormat(pattern)
	if err != nil {
		return exporter.Request{}, err
	}

	return exporter.Request{
		Network:    c.Network,
		Address:    c.Address,
		From:       from,
		To:         to,
		Currency:   c.Currency,
		DateFormat: dateFormat,
	}, nil
}

// sinkFactory selects the output once: standard output, an S3 object or a
// file in the output folder.
func (c config) sinkFactory(req exporter.Request, newUploader func() (sink.Uploader, error)) (sink.Factory, error) {
	name := sink.FileName(req.Network, req.Address, req.From, req.To)

	switch {
	case c.Stdout:
		return sink.StreamFactory(os.Stdout), nil
	case c.S3Bucket != "":
		uploader, err := newUploader()
		if err != nil {
			return nil, fmt.Errorf("init s3 uploader: %w", err)
		}
		return sink.ObjectFactory(uploader, c.S3Bucket, path.Join(c.S3Prefix, name)), nil
	default:
		folder := c.Folder
		if folder == "" {
			wd, err := os.Getwd()
			if err != nil {
				return nil, fmt.Errorf("resolve output folder: %w", err)
			}
			folder = wd
		}
		return sink.FileFactory(filepath.Join(folder, name)), nil
	}
}
