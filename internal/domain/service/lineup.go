package service

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/slack-go/slack"

	"github.com/guildops/slack-lineup-bot/internal/domain"
	"github.com/guildops/slack-lineup-bot/internal/domain/contract"
	"github.com/guildops/slack-lineup-bot/internal/domain/entity"
)

// lineupService is the participation ledger and its reaction reconciler. All
// state lives in memory and is lost on restart; reactions referencing
// messages from a previous process are silently ignored.
type lineupService struct {
	slackClient contract.SlackClient
	botUserID   string
	log         *logrus.Entry

	mu      sync.Mutex
	lineups map[string]*entity.Lineup
}

func newLineup(slackClient contract.SlackClient, botUserID string, log *logrus.Logger) *lineupService {
	return &lineupService{
		slackClient: slackClient,
		botUserID:   botUserID,
		log:         log.WithField("component", "lineup"),
		lineups:     make(map[string]*entity.Lineup),
	}
}

// CreateLineup posts a line-up message to the channel, seeds the accept and
// decline reactions and starts tracking participation. The bot must be a
// member of the channel; nothing is tracked when the post fails.
func (s *lineupService) CreateLineup(channelID, title, body string) (*entity.Lineup, error) {
	info, err := s.slackClient.GetConversationInfo(&slack.GetConversationInfoInput{ChannelID: channelID})
	if err != nil {
		return nil, fmt.Errorf("failed to look up channel: %w", err)
	}
	if !info.IsMember {
		return nil, fmt.Errorf("bot is not a member of channel %s", channelID)
	}

	lineup := &entity.Lineup{
		ChannelID: channelID,
		Title:     title,
		Body:      body,
		Joined:    make(map[string]struct{}),
		Declined:  make(map[string]struct{}),
		CreatedAt: time.Now(),
	}

	text := FormatLineup(viewOf(lineup))
	postedChannel, ts, err := s.slackClient.PostMessage(channelID, slack.MsgOptionText(text, false))
	if err != nil {
		return nil, fmt.Errorf("failed to post line-up: %w", err)
	}
	lineup.MessageTS = ts

	ref := slack.NewRefToMessage(postedChannel, ts)
	for _, emoji := range []string{domain.AcceptEmoji, domain.DeclineEmoji} {
		if err := s.slackClient.AddReaction(emoji, ref); err != nil {
			s.log.WithError(err).Warnf("could not seed %s reaction on %s", emoji, ts)
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.lineups[ts]; exists {
		return nil, fmt.Errorf("line-up %s is already tracked", ts)
	}
	s.lineups[ts] = lineup
	return lineup, nil
}

// ApplyReaction reconciles one reaction signal into the ledger. Unknown
// messages, the bot's own reactions and unrecognized emoji are no-ops. Adding
// an accept or decline is mutually exclusive; removing a reaction only
// removes the member from the matching set.
func (s *lineupService) ApplyReaction(ev entity.ReactionEvent) {
	if ev.UserID == s.botUserID {
		return
	}

	s.mu.Lock()
	lineup, ok := s.lineups[ev.MessageTS]
	if !ok {
		s.mu.Unlock()
		return
	}

	switch ev.Emoji {
	case domain.AcceptEmoji:
		if ev.Added {
			delete(lineup.Declined, ev.UserID)
			lineup.Joined[ev.UserID] = struct{}{}
		} else {
			delete(lineup.Joined, ev.UserID)
		}
	case domain.DeclineEmoji:
		if ev.Added {
			delete(lineup.Joined, ev.UserID)
			lineup.Declined[ev.UserID] = struct{}{}
		} else {
			delete(lineup.Declined, ev.UserID)
		}
	default:
		s.mu.Unlock()
		return
	}

	view := viewOf(lineup)
	channelID := lineup.ChannelID
	s.mu.Unlock()

	// Best effort: a failed edit leaves a stale message, not stale state.
	_, _, _, err := s.slackClient.UpdateMessage(channelID, ev.MessageTS,
		slack.MsgOptionText(FormatLineup(view), false))
	if err != nil {
		s.log.WithError(err).Warnf("could not update line-up message %s", ev.MessageTS)
	}
}

// Render returns the renderable state for a tracked line-up.
func (s *lineupService) Render(messageTS string) (entity.LineupView, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	lineup, ok := s.lineups[messageTS]
	if !ok {
		return entity.LineupView{}, false
	}
	return viewOf(lineup), true
}

// JoinedMembers returns the accepted member IDs for a line-up, sorted for
// stable output. Unknown line-ups yield nil.
func (s *lineupService) JoinedMembers(messageTS string) []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	lineup, ok := s.lineups[messageTS]
	if !ok {
		return nil
	}
	return sortedKeys(lineup.Joined)
}

func (s *lineupService) TrackedCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.lineups)
}

// EvictBefore drops line-ups created before cutoff and reports how many were
// removed. A swept entry behaves exactly like one forgotten by a restart.
func (s *lineupService) EvictBefore(cutoff time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	evicted := 0
	for ts, lineup := range s.lineups {
		if lineup.CreatedAt.Before(cutoff) {
			delete(s.lineups, ts)
			evicted++
		}
	}
	return evicted
}

func viewOf(lineup *entity.Lineup) entity.LineupView {
	return entity.LineupView{
		Title:         lineup.Title,
		Body:          lineup.Body,
		Joined:        capNames(sortedKeys(lineup.Joined)),
		Declined:      capNames(sortedKeys(lineup.Declined)),
		JoinedCount:   len(lineup.Joined),
		DeclinedCount: len(lineup.Declined),
	}
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func capNames(names []string) []string {
	if len(names) > domain.MaxListedNames {
		return names[:domain.MaxListedNames]
	}
	return names
}

// FormatLineup renders a line-up view as Slack message text.
func FormatLineup(view entity.LineupView) string {
	var b strings.Builder
	fmt.Fprintf(&b, "*⚔ %s ⚔*\n", view.Title)
	if view.Body != "" {
		b.WriteString(view.Body)
		b.WriteString("\n")
	}
	fmt.Fprintf(&b, "\n*✅ Will Join (%d)*\n%s\n", view.JoinedCount, nameList(view.Joined))
	fmt.Fprintf(&b, "\n*❌ Not Joining (%d)*\n%s\n", view.DeclinedCount, nameList(view.Declined))
	b.WriteString("\n_React with :white_check_mark: or :x: to update your participation_")
	return b.String()
}

func nameList(userIDs []string) string {
	if len(userIDs) == 0 {
		return "No one yet"
	}
	mentions := make([]string, len(userIDs))
	for i, id := range userIDs {
		mentions[i] = fmt.Sprintf("• <@%s>", id)
	}
	return strings.Join(mentions, "\n")
}
