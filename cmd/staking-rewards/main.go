// Command staking-rewards exports the staking rewards of a Polkadot or
// Kusama account with their daily fiat value as a semicolon-separated file.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"
	"github.com/jessevdk/go-flags"
	"github.com/schollz/progressbar/v3"
	"go.uber.org/ratelimit"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/staking-rewards-exporter/internal/metrics"
	"github.com/goodnatureofminers/staking-rewards-exporter/internal/pkg/httpclient"
	"github.com/goodnatureofminers/staking-rewards-exporter/internal/staking/coingecko"
	"github.com/goodnatureofminers/staking-rewards-exporter/internal/staking/service/exporter"
	"github.com/goodnatureofminers/staking-rewards-exporter/internal/staking/sink"
	"github.com/goodnatureofminers/staking-rewards-exporter/internal/staking/subscan"
)

const pushJob = "staking_rewards_export"

func main() {
	cfg := config{}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	zapConfig := zap.NewDevelopmentConfig()
	logger, err := zapConfig.Build()
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()

	if _, err := flags.ParseArgs(&cfg, os.Args); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		logger.Fatal("failed to parse flags", zap.Error(err))
	}
	if !cfg.Verbose {
		zapConfig.Level.SetLevel(zap.WarnLevel)
	}

	if err := run(ctx, cfg, logger); err != nil {
		logger.Fatal("staking rewards export failed", zap.Error(err))
	}
}

func run(ctx context.Context, cfg config, logger *zap.Logger) error {
	req, err := cfg.request(time.Now())
	if err != nil {
		return err
	}
	sinks, err := cfg.sinkFactory(req, newS3Uploader)
	if err != nil {
		return err
	}

	httpClient := &http.Client{Timeout: cfg.HTTPTimeout}
	httpMetrics := metrics.NewHTTPClient(req.Network)

	rewards := subscan.NewClient(
		cfg.SubscanURL,
		cfg.SubscanAPIKey,
		req.Network,
		httpclient.NewObservedClient(httpClient, ratelimit.New(cfg.SubscanRPS), httpMetrics, logger.Named("subscan_http"), cfg.MaxRetries),
		logger,
	)

	var progress coingecko.Progress
	var bar *progressbar.ProgressBar
	if !cfg.Verbose {
		bar = progressbar.NewOptions(-1,
			progressbar.OptionSetWriter(os.Stderr),
			progressbar.OptionSetDescription("fetching prices"),
			progressbar.OptionShowCount(),
			progressbar.OptionClearOnFinish(),
		)
		progress = bar
	}
	prices := coingecko.NewClient(
		cfg.CoinGeckoURL,
		cfg.CoinGeckoAPIKey,
		req.Network,
		httpclient.NewObservedClient(httpClient, ratelimit.New(cfg.CoinGeckoRPM, ratelimit.Per(time.Minute)), httpMetrics, logger.Named("coingecko_http"), cfg.MaxRetries),
		cfg.PriceWorkers,
		progress,
		logger,
	)

	svc, err := exporter.NewService(rewards, prices, sinks, metrics.NewExporter(req.Network), logger)
	if err != nil {
		return err
	}

	summary, err := svc.Run(ctx, req)
	if bar != nil {
		_ = bar.Finish()
	}
	if cfg.PushgatewayURL != "" {
		// the run context may already be canceled
		pushCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPTimeout)
		if pushErr := metrics.Push(pushCtx, cfg.PushgatewayURL, pushJob); pushErr != nil {
			logger.Warn("push metrics failed", zap.Error(pushErr))
		}
		cancel()
	}
	if err != nil {
		return err
	}

	if !cfg.Stdout {
		fmt.Fprintf(os.Stderr, "exported %d of %d rewards to %s\n", summary.Rows, summary.Rewards, summary.Destination)
	}
	return nil
}

func newS3Uploader() (sink.Uploader, error) {
	sess, err := session.NewSession()
	if err != nil {
		return nil, err
	}
	return s3manager.NewUploader(sess), nil
}
