// Package transport defines how chat events reach the bot and how
// replies go back out. Implementations live in subpackages.
package transport

import "context"

// Event is one inbound chat message.
type Event struct {
	// Text is the raw message text, including any leading mention.
	Text string

	// Timestamp identifies the message within its channel; reactions
	// attach to it.
	Timestamp string

	// Channel the message was posted in; replies go back there.
	Channel string

	// User is the opaque identifier of the sender.
	User string
}

// Adapter sends the bot's replies back to the chat platform.
type Adapter interface {
	// PostMessage sends a text reply to a channel.
	PostMessage(ctx context.Context, channel, text string) error

	// PostReaction attaches a named reaction to the message identified
	// by channel and timestamp.
	PostReaction(ctx context.Context, channel, timestamp, name string) error
}
