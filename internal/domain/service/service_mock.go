package service

import (
	"io"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/guildops/slack-lineup-bot/internal/config"
	"github.com/guildops/slack-lineup-bot/mocks"
)

type allMocks struct {
	mockSlackClient   *mocks.MockSlackClient
	mockLineupService *mocks.MockLineupService
}

func newServiceTestMock(t *testing.T) (m allMocks, ctrl *gomock.Controller) {
	t.Helper()

	ctrl = gomock.NewController(t)
	m = allMocks{
		mockSlackClient:   mocks.NewMockSlackClient(ctrl),
		mockLineupService: mocks.NewMockLineupService(ctrl),
	}
	return
}

func testConfig() *config.Config {
	return &config.Config{
		Timezone:          "Asia/Manila",
		RecurringHours:    []int{11, 14, 17, 20, 23, 2, 5, 8},
		RecurringMessage:  "REGISTER FFA NOW, FFA START SOON",
		BossMessage:       "World Boss Started! Prepare your gear.",
		BossDuration:      2 * time.Hour,
		LineupRetention:   7 * 24 * time.Hour,
		AnnounceChannelID: "CANNOUNCE",
	}
}

func testLocation(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("Asia/Manila")
	require.NoError(t, err)
	return loc
}

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}
