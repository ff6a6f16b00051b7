package main

import (
	"context"
	"errors"
	"fmt"
	"labelchecker/internal/account"
	"labelchecker/internal/admin"
	"labelchecker/internal/api"
	"labelchecker/internal/api/handler/v1handler"
	"labelchecker/internal/auth"
	"labelchecker/internal/billing"
	"labelchecker/internal/config"
	"labelchecker/internal/rules"
	"labelchecker/internal/scanner"
	"labelchecker/internal/worker"
	"labelchecker/pkg/blob/s3blob"
	"labelchecker/pkg/labelai"
	"labelchecker/pkg/labelai/anthropic"
	"labelchecker/pkg/labelai/bedrock"
	"labelchecker/pkg/labelai/gemini"
	"labelchecker/pkg/logger"
	"labelchecker/pkg/mailer"
	"labelchecker/pkg/mailer/logmailer"
	"labelchecker/pkg/mailer/sesmailer"
	"labelchecker/pkg/metrics"
	"labelchecker/pkg/payments/stripepay"
	"labelchecker/pkg/progress/redisprogress"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// newAnalyzer builds the label analyzer of the configured provider.
func newAnalyzer(ctx context.Context, cfg *config.Config) (labelai.Analyzer, error) {
	switch cfg.AI.Provider {
	case "anthropic":
		if cfg.AI.AnthropicAPIKey == "" {
			return nil, errors.New("anthropic api key is required")
		}

		return anthropic.New(&http.Client{Timeout: cfg.AI.Timeout}, anthropic.Options{
			BaseURL:   cfg.AI.AnthropicBaseURL,
			APIKey:    cfg.AI.AnthropicAPIKey,
			Model:     cfg.AI.Model,
			MaxTokens: cfg.AI.MaxTokens,
		}), nil
	case "bedrock":
		analyzer, err := bedrock.NewFromRegion(ctx, cfg.AI.BedrockRegion, cfg.AI.Model, cfg.AI.MaxTokens)
		if err != nil {
			return nil, fmt.Errorf("could not create bedrock analyzer: %w", err)
		}

		return analyzer, nil
	case "gemini":
		analyzer, err := gemini.New(ctx, gemini.Options{
			APIKey:     cfg.AI.GeminiAPIKey,
			Model:      cfg.AI.Model,
			MaxTokens:  cfg.AI.MaxTokens,
			HTTPClient: &http.Client{Timeout: cfg.AI.Timeout},
		})
		if err != nil {
			return nil, fmt.Errorf("could not create gemini analyzer: %w", err)
		}

		return analyzer, nil
	default:
		return nil, fmt.Errorf("unknown ai provider %q", cfg.AI.Provider)
	}
}

func newMailer(ctx context.Context, cfg *config.Config) (mailer.Sender, error) {
	switch cfg.Mail.Provider {
	case "ses":
		sender, err := sesmailer.NewFromOptions(ctx, sesmailer.Options{
			Region:          cfg.Mail.Region,
			AccessKeyID:     cfg.Mail.AccessKeyID,
			SecretAccessKey: cfg.Mail.SecretAccessKey,
			From:            cfg.Mail.From,
		})
		if err != nil {
			return nil, fmt.Errorf("could not create ses mailer: %w", err)
		}

		return sender, nil
	case "log", "":
		return logmailer.Sender{}, nil
	default:
		return nil, fmt.Errorf("unknown mail provider %q", cfg.Mail.Provider)
	}
}

func newBlobStore(ctx context.Context, cfg *config.Config) (*s3blob.Store, error) {
	store, err := s3blob.New(ctx, s3blob.Options{
		Endpoint:        cfg.Storage.Endpoint,
		Region:          cfg.Storage.Region,
		Bucket:          cfg.Storage.Bucket,
		AccessKeyID:     cfg.Storage.AccessKeyID,
		SecretAccessKey: cfg.Storage.SecretAccessKey,
		UsePathStyle:    cfg.Storage.UsePathStyle,
	})
	if err != nil {
		return nil, fmt.Errorf("could not create blob store: %w", err)
	}
	if cfg.Storage.CreateBucket {
		if err := store.EnsureBucket(ctx); err != nil {
			return nil, fmt.Errorf("could not ensure bucket: %w", err)
		}
	}

	return store, nil
}

func startServer(ctx context.Context, deps api.Deps, cfg *config.Config) func(ctx context.Context) {
	server, err := api.NewServer(ctx, deps, api.NewOptions(cfg))
	if err != nil {
		logger.Fatal(ctx, "could not create webserver", zap.Error(err))
	}

	go func() {
		logger.Info(ctx, "starting webserver...", zap.String("addr", cfg.HTTP.Addr))
		if err := server.ListenAndServe(); err != nil {
			if !errors.Is(err, http.ErrServerClosed) {
				logger.Error(ctx, "could not start webserver", zap.Error(err))
			}
		}
	}()

	return func(ctx context.Context) {
		logger.Info(ctx, "stopping webserver...")
		if err := server.Shutdown(ctx); err != nil {
			logger.Error(ctx, "could not stop webserver", zap.Error(err))
		}
	}
}

func serveCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Starts API server and background workers",
		Run: func(cmd *cobra.Command, args []string) {
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			blobs, err := newBlobStore(ctx, cfg)
			if err != nil {
				logger.Fatal(ctx, "could not set up object storage", zap.Error(err))
			}
			analyzer, err := newAnalyzer(ctx, cfg)
			if err != nil {
				logger.Fatal(ctx, "could not set up label analyzer", zap.Error(err))
			}
			sender, err := newMailer(ctx, cfg)
			if err != nil {
				logger.Fatal(ctx, "could not set up mailer", zap.Error(err))
			}
			templates, err := mailer.NewTemplates()
			if err != nil {
				logger.Fatal(ctx, "could not parse email templates", zap.Error(err))
			}
			tokens, err := auth.NewTokens(cfg.JWT.PublicKey, cfg.JWT.PrivateKey, cfg.JWT.TTL, cfg.JWT.Issuer)
			if err != nil {
				logger.Fatal(ctx, "could not load jwt keys", zap.Error(err))
			}

			redisClient := redis.NewClient(&redis.Options{
				Addr:     cfg.Redis.Addr,
				Password: cfg.Redis.Password,
				DB:       cfg.Redis.DB,
			})
			defer func() { _ = redisClient.Close() }()
			if err := redisClient.Ping(ctx).Err(); err != nil {
				logger.Fatal(ctx, "could not connect to redis", zap.Error(err))
			}
			broker := redisprogress.New(redisClient, cfg.Redis.ChannelPrefix)

			meterProvider, err := metrics.NewMeterProvider(prometheus.DefaultRegisterer)
			if err != nil {
				logger.Fatal(ctx, "could not create meter provider", zap.Error(err))
			}
			scanMetrics, err := metrics.NewScanMetrics(meterProvider.Meter(metrics.MeterName))
			if err != nil {
				logger.Fatal(ctx, "could not create scan metrics", zap.Error(err))
			}

			scannerOptions := scanner.NewOptions(cfg)
			accounts := account.New(strg, sender, templates, account.Options{
				InviteTTL: cfg.Invites.TTL,
				AppURL:    cfg.Mail.AppURL,
			})
			processor := scanner.NewProcessor(strg, blobs, rules.New(strg), analyzer, broker, scannerOptions)

			riverClient, err := worker.Start(ctx, strg.Pool, worker.Dependencies{
				Processor: processor,
				Accounts:  accounts,
				Storage:   strg,
				Metrics:   scanMetrics,
			}, worker.Options{
				Concurrency: cfg.Scanner.Concurrency,
				JobTimeout:  cfg.Scanner.JobTimeout,
				UsagePeriod: cfg.Usage.Period,
			})
			if err != nil {
				logger.Fatal(ctx, "could not start workers", zap.Error(err))
			}

			stopWebserver := startServer(ctx, api.Deps{
				Deps: v1handler.Deps{
					Auth:     auth.New(strg, tokens, auth.Options{}),
					Accounts: accounts,
					Scanner:  scanner.New(strg, blobs, broker, scannerOptions),
					Billing: billing.New(strg, stripepay.New(stripepay.Options{
						SecretKey:     cfg.Stripe.SecretKey,
						WebhookSecret: cfg.Stripe.WebhookSecret,
					}), billing.Options{
						DeluxePriceID:   cfg.Stripe.DeluxePriceID,
						OneTimePriceID:  cfg.Stripe.OneTimePriceID,
						SuccessURL:      cfg.Stripe.SuccessURL,
						CancelURL:       cfg.Stripe.CancelURL,
						PortalReturnURL: cfg.Stripe.PortalReturnURL,
					}),
					Admin:  admin.New(strg),
					Events: broker,
				},
				Ping:  strg.Ping,
				Meter: meterProvider,
				Jobs:  riverClient,
			}, cfg)

			// wait for interrupt
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.GracefulShutdownTimeout)
			defer cancel()

			stopWebserver(shutdownCtx)

			logger.Info(shutdownCtx, "stopping workers...")
			if err := riverClient.Stop(shutdownCtx); err != nil {
				logger.Error(shutdownCtx, "could not stop workers gracefully", zap.Error(err))
			}
			if err := meterProvider.Shutdown(shutdownCtx); err != nil {
				logger.Warn(shutdownCtx, "could not shut down meter provider", zap.Error(err))
			}
		},
	}

	return cmd
}
