// Package activemessage shows short floating messages next to map events.
//
// Authors annotate an event page with comment commands:
//
//	<AutoMessage:TEXT>              shown once each time the player comes near
//	<LoopMessage:TEXT, TICKS>       shown every TICKS frames
//
// TEXT may be a random selector, <rand:["a","b","c"]>, which picks one
// alternative each time the message is shown. A literal \n starts a new line.
package activemessage

import (
	"fmt"
	"log"
	"math"
	"math/rand"
	"regexp"
	"strconv"
	"strings"

	json "github.com/goccy/go-json"
)

var (
	autoMessagePattern = regexp.MustCompile(`<AutoMessage:(.+)>`)
	loopMessagePattern = regexp.MustCompile(`<LoopMessage:(.+?),\s*(\d+)>`)
	randomPattern      = regexp.MustCompile(`^<rand:(.+)>$`)
)

// logf is swapped out by tests.
var logf = log.Printf

// Directives holds the message annotations found on one event page.
type Directives struct {
	AutoText string
	HasAuto  bool

	LoopText     string
	LoopInterval int // frames between loop messages
	HasLoop      bool
}

// Empty returns true if the page carries no message annotations
func (d Directives) Empty() bool {
	return !d.HasAuto && !d.HasLoop
}

// ParseComments extracts the message directives from a page's comment texts.
// Each comment is matched on its own; a later match replaces an earlier one.
func ParseComments(comments []string) Directives {
	var d Directives
	for _, c := range comments {
		if m := autoMessagePattern.FindStringSubmatch(c); m != nil {
			d.AutoText = strings.TrimSpace(m[1])
			d.HasAuto = true
		}
		if m := loopMessagePattern.FindStringSubmatch(c); m != nil {
			interval, err := strconv.Atoi(m[2])
			if err != nil || interval > math.MaxInt32 {
				logf("activemessage: ignoring loop message with interval %q", m[2])
				continue
			}
			d.LoopText = strings.TrimSpace(m[1])
			d.LoopInterval = interval
			d.HasLoop = true
		}
	}
	return d
}

// Picker chooses an index in [0, n). *rand.Rand satisfies it.
type Picker interface {
	Intn(n int) int
}

type globalPicker struct{}

func (globalPicker) Intn(n int) int { return rand.Intn(n) }

// Resolve returns the text to display for a raw directive text. A random
// selector yields one of its alternatives; a malformed selector is logged and
// the raw text is returned as is.
func Resolve(raw string, p Picker) string {
	m := randomPattern.FindStringSubmatch(raw)
	if m == nil {
		return raw
	}
	if p == nil {
		p = globalPicker{}
	}

	var payload any
	if err := json.Unmarshal([]byte(m[1]), &payload); err != nil {
		logf("activemessage: random message parse failed: %v", err)
		return raw
	}
	choices, ok := payload.([]any)
	if !ok || len(choices) == 0 {
		logf("activemessage: random message is not a non-empty array: %s", m[1])
		return raw
	}

	switch v := choices[p.Intn(len(choices))].(type) {
	case string:
		return v
	case nil:
		return ""
	default:
		return fmt.Sprint(v)
	}
}

// NormalizeNewlines turns literal \n escapes into line breaks
func NormalizeNewlines(text string) string {
	return strings.ReplaceAll(text, `\n`, "\n")
}

// SplitLines splits normalized text into display lines
func SplitLines(text string) []string {
	return strings.Split(NormalizeNewlines(text), "\n")
}
