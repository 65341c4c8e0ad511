package service

import (
	"github.com/sirupsen/logrus"

	"github.com/guildops/slack-lineup-bot/internal/config"
	"github.com/guildops/slack-lineup-bot/internal/domain/contract"
)

type Services struct {
	Lineup   *lineupService
	Schedule *scheduleService
}

// New wires the lineup ledger and the scheduler. botUserID is the bot's own
// Slack user ID, used to ignore its seed reactions.
func New(slackClient contract.SlackClient, cfg *config.Config, botUserID string, log *logrus.Logger) (*Services, error) {
	loc, err := cfg.Location()
	if err != nil {
		return nil, err
	}

	lineup := newLineup(slackClient, botUserID, log)

	return &Services{
		Lineup:   lineup,
		Schedule: newSchedule(slackClient, lineup, cfg, loc, log),
	}, nil
}
