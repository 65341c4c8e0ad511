package service

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
	"github.com/slack-go/slack"

	"github.com/guildops/slack-lineup-bot/internal/config"
	"github.com/guildops/slack-lineup-bot/internal/domain"
	"github.com/guildops/slack-lineup-bot/internal/domain/contract"
	"github.com/guildops/slack-lineup-bot/internal/domain/entity"
	"github.com/guildops/slack-lineup-bot/internal/timeparse"
)

// scheduleService owns the three timer mechanisms: the recurring broadcast
// cycle, one-shot line-up announcements and per-channel countdown timers.
// Every delivery is best effort; a failed send never kills a loop.
type scheduleService struct {
	slackClient contract.SlackClient
	lineups     contract.LineupService
	timers      *timerRegistry
	log         *logrus.Entry

	loc              *time.Location
	hours            []int
	announceChannel  string
	recurringMessage string
	bossMessage      string
	retention        time.Duration

	cronEngine *cron.Cron

	// Overridable in tests so countdowns run at millisecond scale.
	tick         time.Duration
	retryBackoff time.Duration

	mu           sync.Mutex
	running      bool
	stopChan     chan struct{}
	oneShots     map[uint64]*time.Timer
	oneShotSeq   uint64
	knownChannel map[string]bool
}

func newSchedule(
	slackClient contract.SlackClient,
	lineups contract.LineupService,
	cfg *config.Config,
	loc *time.Location,
	log *logrus.Logger,
) *scheduleService {
	return &scheduleService{
		slackClient:      slackClient,
		lineups:          lineups,
		timers:           newTimerRegistry(),
		log:              log.WithField("component", "scheduler"),
		loc:              loc,
		hours:            cfg.RecurringHours,
		announceChannel:  cfg.AnnounceChannelID,
		recurringMessage: cfg.RecurringMessage,
		bossMessage:      cfg.BossMessage,
		retention:        cfg.LineupRetention,
		cronEngine:       cron.New(cron.WithLocation(loc)),
		tick:             time.Second,
		retryBackoff:     5 * time.Second,
		stopChan:         make(chan struct{}),
		oneShots:         make(map[uint64]*time.Timer),
		knownChannel:     make(map[string]bool),
	}
}

// Start launches the recurring cycle and the daily stale-line-up sweep.
func (s *scheduleService) Start() {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return
	}
	s.running = true
	s.mu.Unlock()

	if s.announceChannel != "" {
		go s.recurringLoop()
	} else {
		s.log.Warn("ANNOUNCE_CHANNEL_ID not set, recurring cycle disabled")
	}

	if _, err := s.cronEngine.AddFunc("0 4 * * *", func() {
		if n := s.lineups.EvictBefore(time.Now().Add(-s.retention)); n > 0 {
			s.log.Infof("evicted %d stale line-ups", n)
		}
	}); err != nil {
		s.log.WithError(err).Error("could not register line-up sweep job")
	}
	s.cronEngine.Start()
}

// Stop terminates the recurring cycle, pending one-shots, countdown loops and
// the sweep job.
func (s *scheduleService) Stop() {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return
	}
	s.running = false
	close(s.stopChan)
	for _, timer := range s.oneShots {
		timer.Stop()
	}
	s.oneShots = make(map[uint64]*time.Timer)
	s.mu.Unlock()

	<-s.cronEngine.Stop().Done()
	s.log.Info("scheduler stopped")
}

// NextRecurring reports the next broadcast instant strictly after now.
func (s *scheduleService) NextRecurring(now time.Time) time.Time {
	return timeparse.NextRecurring(now, s.hours, s.loc)
}

func (s *scheduleService) recurringLoop() {
	for {
		next := s.NextRecurring(time.Now())
		s.log.Infof("next recurring announcement at %s", next.Format(time.RFC3339))
		timer := time.NewTimer(time.Until(next))

		select {
		case <-timer.C:
			if err := s.sendRecurring(); err != nil {
				s.log.WithError(err).Warn("recurring announcement failed")
				// Short backoff so a persistent failure cannot spin the loop.
				select {
				case <-time.After(s.retryBackoff):
				case <-s.stopChan:
					return
				}
			}
		case <-s.stopChan:
			timer.Stop()
			return
		}
	}
}

func (s *scheduleService) sendRecurring() error {
	if err := s.resolveChannel(s.announceChannel); err != nil {
		return err
	}
	// Escaped text, so the broadcast can never ping anyone.
	_, _, err := s.slackClient.PostMessage(s.announceChannel,
		slack.MsgOptionText(s.recurringMessage, true))
	if err != nil {
		return fmt.Errorf("failed to send recurring announcement: %w", err)
	}
	return nil
}

// resolveChannel is a cache-then-network channel lookup.
func (s *scheduleService) resolveChannel(channelID string) error {
	s.mu.Lock()
	known := s.knownChannel[channelID]
	s.mu.Unlock()
	if known {
		return nil
	}

	if _, err := s.slackClient.GetConversationInfo(&slack.GetConversationInfoInput{ChannelID: channelID}); err != nil {
		return fmt.Errorf("failed to resolve channel %s: %w", channelID, err)
	}

	s.mu.Lock()
	s.knownChannel[channelID] = true
	s.mu.Unlock()
	return nil
}

// ScheduleAnnouncement registers a one-shot start announcement for a line-up.
// A fire time that already passed fires immediately and synchronously. The
// fire callback drops its own timer handle so pending one-shots stay bounded
// by line-ups waiting for their start, not by process lifetime.
func (s *scheduleService) ScheduleAnnouncement(messageTS, channelID string, fireAt time.Time, label string) {
	delay := time.Until(fireAt)
	if delay <= 0 {
		s.announce(messageTS, channelID, label)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.oneShotSeq
	s.oneShotSeq++
	s.oneShots[id] = time.AfterFunc(delay, func() {
		s.mu.Lock()
		delete(s.oneShots, id)
		s.mu.Unlock()
		s.announce(messageTS, channelID, label)
	})
	s.log.Infof("%s announcement for %s scheduled at %s", label, messageTS, fireAt.Format(time.RFC3339))
}

func (s *scheduleService) announce(messageTS, channelID, label string) {
	members := s.lineups.JoinedMembers(messageTS)
	if len(members) == 0 {
		s.post(channelID, fmt.Sprintf("%s has started! Prepare your gear.", label))
		return
	}

	// Mentions go out in bounded chunks to respect Slack payload limits.
	for start := 0; start < len(members); start += domain.MentionChunkSize {
		end := min(start+domain.MentionChunkSize, len(members))
		mentions := make([]string, 0, end-start)
		for _, id := range members[start:end] {
			mentions = append(mentions, fmt.Sprintf("<@%s>", id))
		}
		s.post(channelID, fmt.Sprintf("%s prepare your gear, %s has started!",
			strings.Join(mentions, " "), label))
	}
}

func (s *scheduleService) post(channelID, text string) {
	if _, _, err := s.slackClient.PostMessage(channelID, slack.MsgOptionText(text, false)); err != nil {
		s.log.WithError(err).Warnf("failed to send message to %s", channelID)
	}
}

// StartCountdown installs a countdown for the channel, superseding any live
// one. The superseded timer observes its cancel flag on the next tick and
// exits with a stop notice.
func (s *scheduleService) StartCountdown(channelID string, d time.Duration, label string) (*entity.Countdown, error) {
	if d <= 0 {
		return nil, fmt.Errorf("countdown duration must be positive")
	}

	cd := &entity.Countdown{
		ChannelID: channelID,
		Label:     label,
		EndsAt:    time.Now().Add(d),
	}

	text := fmt.Sprintf("⏱ %s timer started. Starts in %s. Ends at <!date^%d^{date_num} {time_secs}|%s>.",
		label, formatDuration(d), cd.EndsAt.Unix(), cd.EndsAt.In(s.loc).Format(time.RFC1123))
	_, ts, err := s.slackClient.PostMessage(channelID, slack.MsgOptionText(text, false))
	if err != nil {
		return nil, fmt.Errorf("failed to post countdown: %w", err)
	}

	if prev, ok := s.timers.Swap(channelID, cd); ok {
		prev.Cancel()
	}

	go s.runCountdown(cd, ts)
	return cd, nil
}

// StopCountdown soft-cancels the live countdown for the channel. The loop
// observes the flag within one tick and posts the stop notice.
func (s *scheduleService) StopCountdown(channelID string) bool {
	cd, ok := s.timers.Get(channelID)
	if !ok {
		return false
	}
	cd.Cancel()
	return true
}

func (s *scheduleService) runCountdown(cd *entity.Countdown, messageTS string) {
	ticker := time.NewTicker(s.tick)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if cd.Cancelled() {
				s.timers.RemoveEntry(cd.ChannelID, cd)
				s.post(cd.ChannelID, fmt.Sprintf("⏱ %s timer stopped.", cd.Label))
				return
			}

			remaining := time.Until(cd.EndsAt)
			if remaining <= 0 {
				s.timers.RemoveEntry(cd.ChannelID, cd)
				s.post(cd.ChannelID, s.bossMessage)
				return
			}

			_, _, _, err := s.slackClient.UpdateMessage(cd.ChannelID, messageTS,
				slack.MsgOptionText(fmt.Sprintf("⏱ %s starts in %s.", cd.Label, formatDuration(remaining)), false))
			if err != nil {
				s.log.WithError(err).Debugf("could not update countdown message %s", messageTS)
			}
		case <-s.stopChan:
			return
		}
	}
}

func formatDuration(d time.Duration) string {
	total := int(d.Round(time.Second).Seconds())
	days, rest := total/86400, total%86400
	hours, rest := rest/3600, rest%3600
	minutes, seconds := rest/60, rest%60

	var parts []string
	if days > 0 {
		parts = append(parts, fmt.Sprintf("%dd", days))
	}
	if hours > 0 {
		parts = append(parts, fmt.Sprintf("%dh", hours))
	}
	if minutes > 0 {
		parts = append(parts, fmt.Sprintf("%dm", minutes))
	}
	parts = append(parts, fmt.Sprintf("%ds", seconds))
	return strings.Join(parts, " ")
}
