package entity

import (
	"sync/atomic"
	"time"
)

// Lineup is the participation record for a posted line-up message. The Slack
// message timestamp is the identifier: unique per posted message and never
// reused.
type Lineup struct {
	MessageTS string
	ChannelID string
	Title     string
	Body      string
	Joined    map[string]struct{}
	Declined  map[string]struct{}
	CreatedAt time.Time
}

// LineupView is the renderable state handed to the display layer.
type LineupView struct {
	Title    string
	Body     string
	Joined   []string
	Declined []string
	// Totals before the listing cap was applied.
	JoinedCount   int
	DeclinedCount int
}

// ReactionEvent is an inbound reaction signal from the platform.
type ReactionEvent struct {
	MessageTS string
	ChannelID string
	UserID    string
	Emoji     string
	Added     bool
}

// Countdown is a cancellable duration timer for a channel. Cancellation is
// cooperative: the running loop polls the flag once per tick.
type Countdown struct {
	ChannelID string
	Label     string
	EndsAt    time.Time

	cancelled atomic.Bool
}

func (c *Countdown) Cancel() {
	c.cancelled.Store(true)
}

func (c *Countdown) Cancelled() bool {
	return c.cancelled.Load()
}
