// Package announcerd boots the competition announcer: external clients,
// service middleware stack, HTTP API server and the periodic sweeper.
package announcerd

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"time"

	"github.com/0x6flab/namegenerator"
	"github.com/absmach/supermq/pkg/jaeger"
	"github.com/absmach/supermq/pkg/prometheus"
	"github.com/absmach/supermq/pkg/server"
	httpserver "github.com/absmach/supermq/pkg/server/http"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
	"golang.org/x/sync/errgroup"

	announcer "github.com/safe-scan-ai/announcer"
	"github.com/safe-scan-ai/announcer/bot"
	"github.com/safe-scan-ai/announcer/bot/api"
	"github.com/safe-scan-ai/announcer/bot/middleware"
	"github.com/safe-scan-ai/announcer/pkg/chat"
	"github.com/safe-scan-ai/announcer/pkg/configsource"
	"github.com/safe-scan-ai/announcer/pkg/ledger"
	"github.com/safe-scan-ai/announcer/pkg/mqtt"
	"github.com/safe-scan-ai/announcer/pkg/registry"
	"github.com/safe-scan-ai/announcer/pkg/runs"
)

const svcName = "announcer"

type Config struct {
	LogLevel          string        `env:"ANNOUNCER_LOG_LEVEL"             envDefault:"info"`
	InstanceID        string        `env:"ANNOUNCER_INSTANCE_ID"`
	InstanceName      string        `env:"ANNOUNCER_INSTANCE_NAME"`
	CredentialsFile   string        `env:"ANNOUNCER_CREDENTIALS_FILE"`
	ConfigURL         string        `env:"ANNOUNCER_COMPETITION_CONFIG_URL"`
	DiscordToken      string        `env:"ANNOUNCER_DISCORD_BOT_TOKEN"`
	GuildID           string        `env:"ANNOUNCER_GUILD_ID"`
	Channel           string        `env:"ANNOUNCER_CHANNEL"               envDefault:"competition-results"`
	TrackingURL       string        `env:"ANNOUNCER_TRACKING_URL"          envDefault:"https://api.wandb.ai"`
	TrackingEntity    string        `env:"ANNOUNCER_TRACKING_ENTITY"       envDefault:"safe-scan-ai"`
	TrackingAPIKey    string        `env:"ANNOUNCER_TRACKING_API_KEY"`
	SweepInterval     time.Duration `env:"ANNOUNCER_SWEEP_INTERVAL"        envDefault:"10m"`
	AnnouncementDelay time.Duration `env:"ANNOUNCER_ANNOUNCEMENT_DELAY"    envDefault:"15m"`
	HTTPTimeout       time.Duration `env:"ANNOUNCER_HTTP_TIMEOUT"          envDefault:"30s"`
	StartupTimeout    time.Duration `env:"ANNOUNCER_STARTUP_TIMEOUT"       envDefault:"1m"`
	MQTTAddress       string        `env:"ANNOUNCER_MQTT_ADDRESS"`
	MQTTQoS           uint8         `env:"ANNOUNCER_MQTT_QOS"              envDefault:"1"`
	MQTTTimeout       time.Duration `env:"ANNOUNCER_MQTT_TIMEOUT"          envDefault:"30s"`
	Server            server.Config
	OTELURL           url.URL `env:"ANNOUNCER_OTEL_URL"`
	TraceRatio        float64 `env:"ANNOUNCER_TRACE_RATIO" envDefault:"0"`
}

// StartAnnouncer runs the announcer until the context is cancelled or a
// stop signal arrives, then flushes pending announcements and returns.
func StartAnnouncer(ctx context.Context, cancel context.CancelFunc, cfg Config) error {
	g, ctx := errgroup.WithContext(ctx)

	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		return fmt.Errorf("failed to parse log level: %s", err.Error())
	}
	logHandler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	})
	logger := slog.New(logHandler)
	slog.SetDefault(logger)

	if cfg.InstanceName == "" {
		cfg.InstanceName = namegenerator.NewGenerator().Generate()
	}
	logger.Info("starting announcer",
		slog.String("instance_id", cfg.InstanceID),
		slog.String("instance_name", cfg.InstanceName))

	if cfg.CredentialsFile != "" {
		creds, err := announcer.LoadConfig(cfg.CredentialsFile)
		if err != nil {
			return fmt.Errorf("failed to load credentials file: %w", err)
		}
		applyCredentials(&cfg, creds)
	}

	var tp trace.TracerProvider
	switch {
	case cfg.OTELURL == (url.URL{}):
		tp = noop.NewTracerProvider()
	default:
		sdktp, err := jaeger.NewProvider(ctx, svcName, cfg.OTELURL, "", cfg.TraceRatio)
		if err != nil {
			return fmt.Errorf("failed to initialize opentelemetry: %s", err.Error())
		}
		defer func() {
			if err := sdktp.Shutdown(ctx); err != nil {
				logger.Error("error shutting down tracer provider", slog.Any("error", err))
			}
		}()
		tp = sdktp
	}
	tracer := tp.Tracer(svcName)

	chatClient, err := chat.NewDiscord(chat.DiscordConfig{
		Token:   cfg.DiscordToken,
		Timeout: cfg.HTTPTimeout,
	}, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize discord client: %w", err)
	}

	readyCtx, readyCancel := context.WithTimeout(ctx, cfg.StartupTimeout)
	defer readyCancel()
	if err := chatClient.WaitReady(readyCtx); err != nil {
		return fmt.Errorf("discord connection never became ready: %w", err)
	}

	fetcher, err := configsource.NewFetcher(cfg.ConfigURL, cfg.HTTPTimeout)
	if err != nil {
		return fmt.Errorf("failed to initialize configuration fetcher: %w", err)
	}

	runsSvc, err := runs.NewService(runs.Config{
		BaseURL: cfg.TrackingURL,
		Entity:  cfg.TrackingEntity,
		APIKey:  cfg.TrackingAPIKey,
		Timeout: cfg.HTTPTimeout,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize tracking client: %w", err)
	}

	var events mqtt.Publisher
	if cfg.MQTTAddress != "" {
		events, err = mqtt.NewPublisher(cfg.MQTTAddress, cfg.MQTTQoS, cfg.InstanceID, cfg.MQTTTimeout, logger)
		if err != nil {
			return fmt.Errorf("failed to initialize mqtt publisher: %w", err)
		}
	}

	svc := bot.NewService(
		registry.New(),
		ledger.NewInMemory(),
		fetcher,
		runsSvc,
		chatClient,
		events,
		bot.ServiceConfig{
			GuildID:           cfg.GuildID,
			ChannelName:       cfg.Channel,
			AnnouncementDelay: cfg.AnnouncementDelay,
		},
		logger,
	)
	svc = middleware.Logging(logger, svc)
	svc = middleware.Tracing(tracer, svc)
	counter, latency := prometheus.MakeMetrics(svcName, "api")
	svc = middleware.Metrics(counter, latency, svc)

	sweeper := bot.NewSweeper(svc, logger, cfg.SweepInterval)

	hs := httpserver.NewServer(ctx, cancel, svcName, cfg.Server, api.MakeHandler(svc, logger, cfg.InstanceID), logger)

	g.Go(func() error {
		return hs.Start()
	})

	g.Go(func() error {
		return sweeper.Start(ctx)
	})

	g.Go(func() error {
		return server.StopSignalHandler(ctx, cancel, logger, svcName, hs)
	})

	if err := g.Wait(); err != nil {
		logger.Error(fmt.Sprintf("%s service exited with error: %s", svcName, err))
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.StartupTimeout)
	defer shutdownCancel()
	if err := svc.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown flush failed", slog.Any("error", err))
	}

	return nil
}

func applyCredentials(cfg *Config, creds *announcer.Config) {
	if creds.Discord.Token != "" {
		cfg.DiscordToken = creds.Discord.Token
	}
	if creds.Discord.GuildID != "" {
		cfg.GuildID = creds.Discord.GuildID
	}
	if creds.Discord.Channel != "" {
		cfg.Channel = creds.Discord.Channel
	}
	if creds.Tracking.BaseURL != "" {
		cfg.TrackingURL = creds.Tracking.BaseURL
	}
	if creds.Tracking.Entity != "" {
		cfg.TrackingEntity = creds.Tracking.Entity
	}
	if creds.Tracking.APIKey != "" {
		cfg.TrackingAPIKey = creds.Tracking.APIKey
	}
	if creds.Events.BrokerURL != "" {
		cfg.MQTTAddress = creds.Events.BrokerURL
	}
}
