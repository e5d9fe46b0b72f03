package chat

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const (
	defBaseURL     = "https://discord.com/api/v10"
	defHTTPTimeout = 30 * time.Second

	readyPollInterval = time.Second
)

var errEmptyToken = errors.New("empty bot token")

type DiscordConfig struct {
	Token   string
	BaseURL string
	Timeout time.Duration
}

type discord struct {
	cfg    DiscordConfig
	client *http.Client
	logger *slog.Logger

	mu       sync.Mutex
	channels map[string]map[string]string // guild ID -> channel name -> channel ID
}

// NewDiscord returns a Client backed by the Discord REST API. Channel name
// to ID resolution is cached per guild for the lifetime of the client.
func NewDiscord(cfg DiscordConfig, logger *slog.Logger) (Client, error) {
	if cfg.Token == "" {
		return nil, errEmptyToken
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = defBaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defHTTPTimeout
	}

	return &discord{
		cfg: cfg,
		client: &http.Client{
			Timeout:   cfg.Timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
		logger:   logger,
		channels: make(map[string]map[string]string),
	}, nil
}

// WaitReady polls the identity endpoint until the token is accepted.
func (d *discord) WaitReady(ctx context.Context) error {
	for {
		resp, err := d.do(ctx, http.MethodGet, "/users/@me", nil)
		if err == nil {
			resp.Body.Close()
			if resp.StatusCode == http.StatusOK {
				d.logger.Info("discord connection ready")

				return nil
			}
			if resp.StatusCode == http.StatusUnauthorized {
				return errors.New("discord rejected bot token")
			}
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(readyPollInterval):
		}
	}
}

func (d *discord) SendMessage(ctx context.Context, guildID, channelName, text string) error {
	channelID, err := d.channelID(ctx, guildID, channelName)
	if err != nil {
		return err
	}

	payload, err := json.Marshal(map[string]string{"content": text})
	if err != nil {
		return err
	}

	resp, err := d.do(ctx, http.MethodPost, "/channels/"+channelID+"/messages", payload)
	if err != nil {
		return fmt.Errorf("failed to send message to channel %s: %w", channelName, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("failed to send message to channel %s: unexpected status %d", channelName, resp.StatusCode)
	}

	return nil
}

func (d *discord) Close(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
		d.mu.Lock()
		d.channels = make(map[string]map[string]string)
		d.mu.Unlock()
		d.client.CloseIdleConnections()

		return nil
	}
}

func (d *discord) channelID(ctx context.Context, guildID, channelName string) (string, error) {
	d.mu.Lock()
	if byName, ok := d.channels[guildID]; ok {
		if id, ok := byName[channelName]; ok {
			d.mu.Unlock()

			return id, nil
		}
	}
	d.mu.Unlock()

	resp, err := d.do(ctx, http.MethodGet, "/guilds/"+guildID+"/channels", nil)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound, http.StatusForbidden:
		return "", fmt.Errorf("%w: %s", ErrGuildNotFound, guildID)
	default:
		return "", fmt.Errorf("failed to list channels for guild %s: unexpected status %d", guildID, resp.StatusCode)
	}

	var channels []struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&channels); err != nil {
		return "", fmt.Errorf("failed to decode channels for guild %s: %w", guildID, err)
	}

	byName := make(map[string]string, len(channels))
	for _, ch := range channels {
		byName[ch.Name] = ch.ID
	}

	d.mu.Lock()
	d.channels[guildID] = byName
	d.mu.Unlock()

	id, ok := byName[channelName]
	if !ok {
		return "", fmt.Errorf("%w: %s in guild %s", ErrChannelNotFound, channelName, guildID)
	}

	return id, nil
}

func (d *discord) do(ctx context.Context, method, path string, payload []byte) (*http.Response, error) {
	var body *bytes.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	} else {
		body = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, d.cfg.BaseURL+path, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bot "+d.cfg.Token)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return d.client.Do(req)
}
