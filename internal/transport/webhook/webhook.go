// Package webhook is the HTTP implementation of the chat transport:
// inbound message events arrive on a JSON endpoint and outbound
// replies are POSTed to the chat platform's web API.
package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/lunchroom/lunchbot/internal/transport"
)

// inboundEvent mirrors the chat platform's message event payload.
// Events carrying a subtype (edits, joins, bot echoes) are not user
// commands.
type inboundEvent struct {
	Type      string `json:"type"`
	Subtype   string `json:"subtype,omitempty"`
	Text      string `json:"text"`
	Timestamp string `json:"ts"`
	Channel   string `json:"channel"`
	User      string `json:"user"`
}

// Handler is the bot-side consumer of inbound events.
type Handler interface {
	HandleEvent(ctx context.Context, ev transport.Event)
}

// Ensure Adapter implements transport.Adapter
var _ transport.Adapter = (*Adapter)(nil)

// Adapter posts outbound messages and reactions to the chat platform's
// web API.
type Adapter struct {
	baseURL string
	client  *http.Client
}

// New creates an Adapter posting to the given API base URL.
func New(baseURL string) *Adapter {
	return &Adapter{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

// PostMessage sends a text reply to a channel.
func (a *Adapter) PostMessage(ctx context.Context, channel, text string) error {
	return a.post(ctx, "chat.postMessage", map[string]string{
		"channel": channel,
		"text":    text,
	})
}

// PostReaction attaches a reaction to a message.
func (a *Adapter) PostReaction(ctx context.Context, channel, timestamp, name string) error {
	return a.post(ctx, "reactions.add", map[string]string{
		"channel":   channel,
		"timestamp": timestamp,
		"name":      name,
	})
}

func (a *Adapter) post(ctx context.Context, method string, payload map[string]string) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode %s payload: %w", method, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.baseURL+"/"+method, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build %s request: %w", method, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := a.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to call %s: %w", method, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%s returned status %d", method, resp.StatusCode)
	}
	return nil
}

// EventsHandler returns the HTTP handler for inbound message events.
// Non-message events and message subtypes are acknowledged and
// dropped; everything else is handed to the bot.
func EventsHandler(h Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}

		var ev inboundEvent
		if err := json.NewDecoder(r.Body).Decode(&ev); err != nil {
			http.Error(w, "bad request", http.StatusBadRequest)
			return
		}

		if ev.Type != "message" || ev.Subtype != "" {
			w.WriteHeader(http.StatusOK)
			return
		}

		h.HandleEvent(r.Context(), transport.Event{
			Text:      ev.Text,
			Timestamp: ev.Timestamp,
			Channel:   ev.Channel,
			User:      ev.User,
		})
		w.WriteHeader(http.StatusOK)
	})
}
