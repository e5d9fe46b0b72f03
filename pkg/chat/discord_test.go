package chat_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/safe-scan-ai/announcer/pkg/chat"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func fakeDiscord(t *testing.T, sent *[]string) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("GET /users/@me", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"id":"bot"}`))
	})
	mux.HandleFunc("GET /guilds/guild-1/channels", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[
			{"id":"chan-1","name":"competition-results"},
			{"id":"chan-2","name":"general"}
		]`))
	})
	mux.HandleFunc("POST /channels/chan-1/messages", func(w http.ResponseWriter, r *http.Request) {
		var payload struct {
			Content string `json:"content"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		*sent = append(*sent, payload.Content)
		w.Write([]byte(`{"id":"msg-1"}`))
	})

	return httptest.NewServer(mux)
}

func TestNewDiscord(t *testing.T) {
	_, err := chat.NewDiscord(chat.DiscordConfig{}, discardLogger())
	assert.Error(t, err)

	c, err := chat.NewDiscord(chat.DiscordConfig{Token: "token"}, discardLogger())
	require.NoError(t, err)
	assert.NotNil(t, c)
}

func TestSendMessage(t *testing.T) {
	var sent []string
	srv := fakeDiscord(t, &sent)
	defer srv.Close()

	c, err := chat.NewDiscord(chat.DiscordConfig{Token: "token", BaseURL: srv.URL}, discardLogger())
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, c.SendMessage(ctx, "guild-1", "competition-results", "first"))
	require.NoError(t, c.SendMessage(ctx, "guild-1", "competition-results", "second"))

	assert.Equal(t, []string{"first", "second"}, sent)
	assert.NoError(t, c.Close(ctx))
}

func TestSendMessageChannelNotFound(t *testing.T) {
	var sent []string
	srv := fakeDiscord(t, &sent)
	defer srv.Close()

	c, err := chat.NewDiscord(chat.DiscordConfig{Token: "token", BaseURL: srv.URL}, discardLogger())
	require.NoError(t, err)

	err = c.SendMessage(context.Background(), "guild-1", "missing-channel", "text")
	assert.ErrorIs(t, err, chat.ErrChannelNotFound)
	assert.Empty(t, sent)
}

func TestSendMessageGuildNotFound(t *testing.T) {
	var sent []string
	srv := fakeDiscord(t, &sent)
	defer srv.Close()

	c, err := chat.NewDiscord(chat.DiscordConfig{Token: "token", BaseURL: srv.URL}, discardLogger())
	require.NoError(t, err)

	err = c.SendMessage(context.Background(), "guild-2", "competition-results", "text")
	assert.ErrorIs(t, err, chat.ErrGuildNotFound)
	assert.Empty(t, sent)
}

func TestWaitReady(t *testing.T) {
	var calls atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)

			return
		}
		w.Write([]byte(`{"id":"bot"}`))
	}))
	defer srv.Close()

	c, err := chat.NewDiscord(chat.DiscordConfig{Token: "token", BaseURL: srv.URL}, discardLogger())
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	assert.NoError(t, c.WaitReady(ctx))
	assert.GreaterOrEqual(t, calls.Load(), int64(3))
}

func TestWaitReadyRejectedToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	c, err := chat.NewDiscord(chat.DiscordConfig{Token: "bad", BaseURL: srv.URL}, discardLogger())
	require.NoError(t, err)

	err = c.WaitReady(context.Background())
	assert.EqualError(t, err, "discord rejected bot token")
}

func TestWaitReadyContextCancelled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	c, err := chat.NewDiscord(chat.DiscordConfig{Token: "token", BaseURL: srv.URL}, discardLogger())
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	assert.ErrorIs(t, c.WaitReady(ctx), context.DeadlineExceeded)
}
