// Package bot runs the command loop: it filters messages addressed to
// the bot, interprets them, applies them to the ledger and sends the
// replies.
package bot

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/lunchroom/lunchbot/internal/command"
	"github.com/lunchroom/lunchbot/internal/ledger"
	"github.com/lunchroom/lunchbot/internal/metrics"
	"github.com/lunchroom/lunchbot/internal/storage"
	"github.com/lunchroom/lunchbot/internal/transport"
)

// orderAck is the reaction acknowledging a recorded order.
const orderAck = "white_check_mark"

// Bot wires the command interpreter, the ledger, persistence and the
// outbound transport together. Events may be delivered concurrently
// but the ledger is single-writer, so all access goes through mu.
type Bot struct {
	mu     sync.Mutex
	ledger *ledger.Ledger
	store  storage.Store
	out    transport.Adapter
	botID  string
}

// New creates a Bot around an existing ledger. Only messages opening
// with a mention of botID are treated as commands.
func New(l *ledger.Ledger, store storage.Store, out transport.Adapter, botID string) *Bot {
	metrics.OpenOrders.Set(float64(l.Units()))
	return &Bot{ledger: l, store: store, out: out, botID: botID}
}

// HandleEvent processes one inbound chat message end to end.
func (b *Bot) HandleEvent(ctx context.Context, ev transport.Event) {
	target, text, ok := splitLeadingMention(ev.Text)
	if !ok || target != b.botID {
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	cmd := command.Parse(text)
	metrics.CommandsTotal.WithLabelValues(cmd.Kind.String()).Inc()

	switch cmd.Kind {
	case command.KindOrder:
		b.ledger.AddOrder(cmd.Restaurant, cmd.Meal, cmd.Price, ev.User)
		slog.Info("Order received",
			"restaurant", cmd.Restaurant,
			"meal", cmd.Meal,
			"price", cmd.Price,
			"user", ev.User,
		)
		b.save(ctx)
		b.react(ctx, ev, orderAck)

	case command.KindMalformedOrder:
		// An order clause without an extractable price is dropped
		// without a reply.
		slog.Debug("Dropping order without a price", "text", text, "user", ev.User)

	case command.KindNotify:
		b.reply(ctx, ev, b.ledger.NotifyRestaurant(cmd.Restaurant, cmd.Message))

	case command.KindDiscount:
		msg := b.ledger.ApplyDiscount(cmd.Restaurant, cmd.Percent)
		b.save(ctx)
		b.reply(ctx, ev, msg)

	case command.KindSummarize:
		b.reply(ctx, ev, b.ledger.Summarize(cmd.Restaurant))

	case command.KindSummarizeAll:
		b.reply(ctx, ev, b.ledger.SummarizeAll())

	case command.KindClear:
		msg := b.ledger.ClearRestaurant(cmd.Restaurant)
		b.save(ctx)
		b.reply(ctx, ev, msg)

	case command.KindClearAll:
		b.ledger.ClearAll()
		b.save(ctx)
		b.reply(ctx, ev, "All orders cleared")

	case command.KindCancel:
		b.ledger.CancelOrders(ev.User)
		b.save(ctx)
		b.reply(ctx, ev, fmt.Sprintf("Canceled all orders from <@%s>", ev.User))

	case command.KindHelp:
		b.reply(ctx, ev, usage())

	default:
		b.reply(ctx, ev, fmt.Sprintf("<@%s> not sure what you mean. Try typing help to get the list of supported commands!", ev.User))
	}
}

// save persists the current ledger and refreshes the order gauge.
// Failures are reported, never fatal to the command loop.
func (b *Bot) save(ctx context.Context) {
	metrics.OpenOrders.Set(float64(b.ledger.Units()))
	if err := b.store.Save(ctx, b.ledger.Snapshot()); err != nil {
		metrics.SaveFailures.Inc()
		slog.Warn("Failed to save ledger snapshot", "error", err)
	}
}

func (b *Bot) reply(ctx context.Context, ev transport.Event, text string) {
	if err := b.out.PostMessage(ctx, ev.Channel, text); err != nil {
		slog.Warn("Failed to post message", "channel", ev.Channel, "error", err)
	}
}

func (b *Bot) react(ctx context.Context, ev transport.Event, name string) {
	if err := b.out.PostReaction(ctx, ev.Channel, ev.Timestamp, name); err != nil {
		slog.Warn("Failed to post reaction", "channel", ev.Channel, "error", err)
	}
}

// splitLeadingMention splits "<@U123> rest of text" into the mentioned
// ID and the remaining text. Messages not opening with a mention are
// not addressed to anyone.
func splitLeadingMention(text string) (id, rest string, ok bool) {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, "<@") {
		return "", "", false
	}
	end := strings.Index(text, ">")
	if end < 0 {
		return "", "", false
	}
	return text[2:end], strings.TrimSpace(text[end+1:]), true
}
