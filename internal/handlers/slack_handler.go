package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/slack-go/slack"
	"github.com/slack-go/slack/slackevents"

	"github.com/guildops/slack-lineup-bot/internal/config"
	"github.com/guildops/slack-lineup-bot/internal/domain"
	"github.com/guildops/slack-lineup-bot/internal/domain/contract"
	"github.com/guildops/slack-lineup-bot/internal/domain/entity"
	slackcmd "github.com/guildops/slack-lineup-bot/internal/domain/slack"
	"github.com/guildops/slack-lineup-bot/internal/timeparse"
)

type SlackHandler struct {
	slackClient   contract.SlackClient
	lineups       contract.LineupService
	schedules     contract.ScheduleService
	signingSecret string
	managerIDs    map[string]struct{}
	bossDuration  time.Duration
	loc           *time.Location
	log           *logrus.Entry
	startedAt     time.Time
}

func New(
	slackClient contract.SlackClient,
	lineups contract.LineupService,
	schedules contract.ScheduleService,
	cfg *config.Config,
	loc *time.Location,
	log *logrus.Logger,
) *SlackHandler {
	managers := make(map[string]struct{}, len(cfg.ManagerUserIDs))
	for _, id := range cfg.ManagerUserIDs {
		managers[id] = struct{}{}
	}

	return &SlackHandler{
		slackClient:   slackClient,
		lineups:       lineups,
		schedules:     schedules,
		signingSecret: cfg.SlackSigningSecret,
		managerIDs:    managers,
		bossDuration:  cfg.BossDuration,
		loc:           loc,
		log:           log.WithField("component", "handlers"),
		startedAt:     time.Now(),
	}
}

func (h *SlackHandler) HandleSlashCommand(w http.ResponseWriter, r *http.Request) {
	if !h.verifyRequest(w, r) {
		return
	}

	s, err := slack.SlashCommandParse(r)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	cmd, err := slackcmd.ParseCommand(s.Text)
	if err != nil {
		h.respondWithError(w, err.Error())
		return
	}

	response := h.handleCommand(cmd, &s)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

// HandleEvents is the Events API callback: it answers the URL-verification
// challenge and feeds reaction events to the reconciler.
func (h *SlackHandler) HandleEvents(w http.ResponseWriter, r *http.Request) {
	if !h.verifyRequest(w, r) {
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	event, err := slackevents.ParseEvent(json.RawMessage(body), slackevents.OptionNoVerifyToken())
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	switch event.Type {
	case slackevents.URLVerification:
		var challenge slackevents.ChallengeResponse
		if err := json.Unmarshal(body, &challenge); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		w.Header().Set("Content-Type", "text/plain")
		fmt.Fprint(w, challenge.Challenge)

	case slackevents.CallbackEvent:
		switch ev := event.InnerEvent.Data.(type) {
		case *slackevents.ReactionAddedEvent:
			h.lineups.ApplyReaction(entity.ReactionEvent{
				MessageTS: ev.Item.Timestamp,
				ChannelID: ev.Item.Channel,
				UserID:    ev.User,
				Emoji:     ev.Reaction,
				Added:     true,
			})
		case *slackevents.ReactionRemovedEvent:
			h.lineups.ApplyReaction(entity.ReactionEvent{
				MessageTS: ev.Item.Timestamp,
				ChannelID: ev.Item.Channel,
				UserID:    ev.User,
				Emoji:     ev.Reaction,
				Added:     false,
			})
		}
		w.WriteHeader(http.StatusOK)

	default:
		w.WriteHeader(http.StatusOK)
	}
}

// verifyRequest checks the Slack signature and restores the request body for
// downstream parsing.
func (h *SlackHandler) verifyRequest(w http.ResponseWriter, r *http.Request) bool {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return false
	}
	r.Body = io.NopCloser(bytes.NewBuffer(body))

	verifier, err := slack.NewSecretsVerifier(r.Header, h.signingSecret)
	if err != nil {
		w.WriteHeader(http.StatusUnauthorized)
		return false
	}
	if _, err := verifier.Write(body); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return false
	}
	if err := verifier.Ensure(); err != nil {
		w.WriteHeader(http.StatusUnauthorized)
		return false
	}
	return true
}

func (h *SlackHandler) handleCommand(cmd *slackcmd.Command, slashCmd *slack.SlashCommand) *slack.Msg {
	switch cmd.Type {
	case slackcmd.CmdSiege:
		return h.handleCreateLineup(cmd, slashCmd, "Siege Line-Up", domain.SiegeLabel)
	case slackcmd.CmdSecret:
		return h.handleCreateLineup(cmd, slashCmd, "Secret Room Line-Up", domain.SecretRoomLabel)
	case slackcmd.CmdPost:
		return h.handlePost(cmd, slashCmd)
	case slackcmd.CmdNext:
		return h.handleNext()
	case slackcmd.CmdBoss:
		return h.handleBoss(cmd, slashCmd)
	case slackcmd.CmdStopBoss:
		return h.handleStopBoss(slashCmd)
	case slackcmd.CmdStatus:
		return h.handleStatus()
	case slackcmd.CmdHelp:
		return h.createResponse(slackcmd.GetHelpText())
	default:
		return h.createErrorResponse("Unknown command")
	}
}

func (h *SlackHandler) handleCreateLineup(cmd *slackcmd.Command, slashCmd *slack.SlashCommand, title, label string) *slack.Msg {
	if !h.isManager(slashCmd.UserID) {
		return h.createErrorResponse("You don't have permission to use this command.")
	}

	text := cmd.Text()
	lineup, err := h.lineups.CreateLineup(slashCmd.ChannelID, title, text)
	if err != nil {
		h.log.WithError(err).Warnf("could not create line-up in %s", slashCmd.ChannelID)
		return h.createErrorResponse(fmt.Sprintf("Failed to create line-up: %v", err))
	}

	if fireAt, ok := timeparse.ResolveEventTime(text, time.Now(), h.loc); ok {
		h.schedules.ScheduleAnnouncement(lineup.MessageTS, slashCmd.ChannelID, fireAt, label)
	}

	return h.createResponse(fmt.Sprintf("✅ %s posted.", title))
}

func (h *SlackHandler) handlePost(cmd *slackcmd.Command, slashCmd *slack.SlashCommand) *slack.Msg {
	if !h.isManager(slashCmd.UserID) {
		return h.createErrorResponse("You don't have permission to use this command.")
	}
	text := cmd.Text()
	if text == "" {
		return h.createErrorResponse("Provide text after `post`.")
	}

	if _, _, err := h.slackClient.PostMessage(slashCmd.ChannelID, slack.MsgOptionText(text, false)); err != nil {
		return h.createErrorResponse("Failed to post message. Check channel permissions.")
	}
	return h.createResponse("✅ Posted.")
}

func (h *SlackHandler) handleNext() *slack.Msg {
	next := h.schedules.NextRecurring(time.Now())
	return h.createResponse(fmt.Sprintf("Next FFA: <!date^%d^{date_num} {time_secs}|%s> (%s)",
		next.Unix(), next.Format(time.RFC1123), h.loc.String()))
}

func (h *SlackHandler) handleBoss(cmd *slackcmd.Command, slashCmd *slack.SlashCommand) *slack.Msg {
	if !h.isManager(slashCmd.UserID) {
		return h.createErrorResponse("You don't have permission to use this command.")
	}

	duration := h.bossDuration
	if len(cmd.Args) > 0 {
		parsed, err := time.ParseDuration(cmd.Args[0])
		if err != nil {
			return h.createErrorResponse(fmt.Sprintf("Invalid duration %q, use something like `90m` or `2h`.", cmd.Args[0]))
		}
		duration = parsed
	}

	if _, err := h.schedules.StartCountdown(slashCmd.ChannelID, duration, domain.WorldBossLabel); err != nil {
		return h.createErrorResponse(fmt.Sprintf("Failed to start timer: %v", err))
	}
	return h.createResponse("⏱ World Boss timer started.")
}

func (h *SlackHandler) handleStopBoss(slashCmd *slack.SlashCommand) *slack.Msg {
	if !h.isManager(slashCmd.UserID) {
		return h.createErrorResponse("You don't have permission to use this command.")
	}

	if !h.schedules.StopCountdown(slashCmd.ChannelID) {
		return h.createErrorResponse("No active timer in this channel.")
	}
	return h.createResponse("⏱ Timer will stop on its next tick.")
}

func (h *SlackHandler) handleStatus() *slack.Msg {
	return h.createResponse(fmt.Sprintf("Uptime: %s | Tracked line-ups: %d",
		time.Since(h.startedAt).Round(time.Second), h.lineups.TrackedCount()))
}

// isManager gates mutating commands. An empty allowlist allows everyone.
func (h *SlackHandler) isManager(userID string) bool {
	if len(h.managerIDs) == 0 {
		return true
	}
	_, ok := h.managerIDs[userID]
	return ok
}

func (h *SlackHandler) createResponse(text string) *slack.Msg {
	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         text,
	}
}

func (h *SlackHandler) createErrorResponse(text string) *slack.Msg {
	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         "❌ " + text,
	}
}

func (h *SlackHandler) respondWithError(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(h.createErrorResponse(message))
}
