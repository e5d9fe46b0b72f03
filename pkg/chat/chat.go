// Package chat abstracts the chat platform the announcer delivers to.
package chat

import (
	"context"
	"errors"
)

var (
	ErrGuildNotFound   = errors.New("guild not found")
	ErrChannelNotFound = errors.New("channel not found")
)

type Client interface {
	// WaitReady blocks until the platform connection is established and
	// usable, or the context expires.
	WaitReady(ctx context.Context) error

	// SendMessage posts text to the named channel in the given guild.
	SendMessage(ctx context.Context, guildID, channelName, text string) error

	// Close releases the platform connection.
	Close(ctx context.Context) error
}
