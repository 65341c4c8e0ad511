package contract

import (
	"time"

	"github.com/guildops/slack-lineup-bot/internal/domain/entity"
)

// LineupService owns the in-memory participation ledger.
type LineupService interface {
	CreateLineup(channelID, title, body string) (*entity.Lineup, error)
	ApplyReaction(ev entity.ReactionEvent)
	Render(messageTS string) (entity.LineupView, bool)
	JoinedMembers(messageTS string) []string
	TrackedCount() int
	EvictBefore(cutoff time.Time) int
}

// ScheduleService owns the announcement timers.
type ScheduleService interface {
	ScheduleAnnouncement(messageTS, channelID string, fireAt time.Time, label string)
	StartCountdown(channelID string, d time.Duration, label string) (*entity.Countdown, error)
	StopCountdown(channelID string) bool
	NextRecurring(now time.Time) time.Time
}
