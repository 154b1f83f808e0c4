// Package command turns raw chat text into typed bot commands using an
// ordered grammar: each command form is tried in a fixed priority
// order and the first match wins.
package command

import (
	"strconv"
	"strings"
)

// Kind identifies which bot command a message matched.
type Kind int

const (
	// KindUnknown means no command form matched; the bot answers with
	// a help hint.
	KindUnknown Kind = iota

	// KindOrder records one order unit of a meal from a restaurant.
	KindOrder

	// KindMalformedOrder is an order clause without an extractable
	// price. It is dropped without a reply.
	KindMalformedOrder

	// KindNotify pings everyone who ordered from a restaurant.
	KindNotify

	// KindDiscount applies a percentage discount to a restaurant.
	KindDiscount

	// KindSummarize summarizes one restaurant (or asks for a name when
	// none was given).
	KindSummarize

	// KindSummarizeAll summarizes every restaurant.
	KindSummarizeAll

	// KindClear drops all orders from one restaurant.
	KindClear

	// KindClearAll drops every order.
	KindClearAll

	// KindCancel cancels the sender's standing orders.
	KindCancel

	// KindHelp prints the command listing.
	KindHelp
)

var kindNames = map[Kind]string{
	KindUnknown:        "unknown",
	KindOrder:          "order",
	KindMalformedOrder: "malformed_order",
	KindNotify:         "notify",
	KindDiscount:       "discount",
	KindSummarize:      "summarize",
	KindSummarizeAll:   "summarize_all",
	KindClear:          "clear",
	KindClearAll:       "clear_all",
	KindCancel:         "cancel",
	KindHelp:           "help",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// Command is one parsed bot instruction. Which fields are meaningful
// depends on Kind.
type Command struct {
	Kind       Kind
	Restaurant string
	Meal       string
	Price      float64
	Message    string
	Percent    int
}

// Parse matches text against the known command forms. Matching order
// resolves ambiguity: the order, notify and discount clauses are tried
// before the bare keyword commands, so "order ... from ..." can never
// be misread as anything else.
func Parse(text string) Command {
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return Command{Kind: KindUnknown}
	}

	if cmd, ok := parseOrder(fields); ok {
		return cmd
	}
	if cmd, ok := parseNotify(fields); ok {
		return cmd
	}
	if cmd, ok := parseDiscount(fields); ok {
		return cmd
	}

	switch fields[0] {
	case "summarize":
		switch len(fields) {
		case 1:
			return Command{Kind: KindSummarize}
		case 2:
			if fields[1] == "all" {
				return Command{Kind: KindSummarizeAll}
			}
			return Command{Kind: KindSummarize, Restaurant: fields[1]}
		}
	case "clear":
		if len(fields) == 2 {
			if fields[1] == "all" {
				return Command{Kind: KindClearAll}
			}
			return Command{Kind: KindClear, Restaurant: fields[1]}
		}
	case "cancel":
		if len(fields) == 3 && fields[1] == "my" && fields[2] == "orders" {
			return Command{Kind: KindCancel}
		}
	case "help":
		if len(fields) == 1 {
			return Command{Kind: KindHelp}
		}
	}
	return Command{Kind: KindUnknown}
}

// parseOrder matches `order <meal and price> from <restaurant>`. The
// restaurant is the single token after the last "from"; anything after
// it is dropped (multi-word restaurant names are not supported by the
// grammar). A matching clause whose price cannot be extracted parses
// to KindMalformedOrder.
func parseOrder(fields []string) (Command, bool) {
	if fields[0] != "order" || len(fields) < 4 {
		return Command{}, false
	}
	sep := -1
	for i := len(fields) - 2; i >= 2; i-- {
		if fields[i] == "from" {
			sep = i
			break
		}
	}
	if sep < 0 {
		return Command{}, false
	}
	restaurant := fields[sep+1]
	meal, price, ok := splitMealPrice(strings.Join(fields[1:sep], " "))
	if !ok {
		return Command{Kind: KindMalformedOrder, Restaurant: restaurant}, true
	}
	return Command{Kind: KindOrder, Restaurant: restaurant, Meal: meal, Price: price}, true
}

// parseNotify matches `notify <restaurant> [message...]`. The message
// may be empty; the caller then falls back to the restaurant name.
func parseNotify(fields []string) (Command, bool) {
	if fields[0] != "notify" || len(fields) < 2 {
		return Command{}, false
	}
	return Command{
		Kind:       KindNotify,
		Restaurant: fields[1],
		Message:    strings.Join(fields[2:], " "),
	}, true
}

// parseDiscount matches `discount <restaurant> <digits>%`, with the
// percent sign either glued to the digits or standing alone. Only
// unsigned whole percentages match; range checking is the ledger's
// job.
func parseDiscount(fields []string) (Command, bool) {
	if fields[0] != "discount" || len(fields) < 3 || len(fields) > 4 {
		return Command{}, false
	}
	raw := strings.TrimSpace(strings.Join(fields[2:], " "))
	if !strings.HasSuffix(raw, "%") {
		return Command{}, false
	}
	digits := strings.TrimSpace(strings.TrimSuffix(raw, "%"))
	if digits == "" {
		return Command{}, false
	}
	for i := 0; i < len(digits); i++ {
		if !isDigit(digits[i]) {
			return Command{}, false
		}
	}
	percent, err := strconv.Atoi(digits)
	if err != nil {
		return Command{}, false
	}
	return Command{Kind: KindDiscount, Restaurant: fields[1], Percent: percent}, true
}

// splitMealPrice strips a trailing price off a meal clause: an
// optional currency marker ("kn" or "k", optionally preceded by a
// space) and before it a trailing number such as 45, 45.5 or 45,5. A
// comma decimal separator is converted to a dot before parsing.
// Everything before the number, trimmed, is the meal name.
func splitMealPrice(s string) (meal string, price float64, ok bool) {
	t := strings.TrimSpace(s)
	if strings.HasSuffix(t, "kn") {
		t = strings.TrimRight(t[:len(t)-2], " ")
	} else if strings.HasSuffix(t, "k") {
		t = strings.TrimRight(t[:len(t)-1], " ")
	}

	i := len(t)
	for i > 0 && isPriceChar(t[i-1]) {
		i--
	}
	// a price starts with a digit, not a stray separator
	for i < len(t) && !isDigit(t[i]) {
		i++
	}
	if i == len(t) {
		return "", 0, false
	}

	num := strings.ReplaceAll(t[i:], ",", ".")
	price, err := strconv.ParseFloat(num, 64)
	if err != nil || price < 0 {
		return "", 0, false
	}
	return strings.TrimSpace(t[:i]), price, true
}

func isPriceChar(c byte) bool {
	return isDigit(c) || c == '.' || c == ','
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
