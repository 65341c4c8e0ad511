package test

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/guildops/slack-lineup-bot/internal/config"
	"github.com/guildops/slack-lineup-bot/internal/handlers"
	"github.com/guildops/slack-lineup-bot/mocks"
)

const SigningSecret = "test-signing-secret"

type ServiceMocks struct {
	LineupServiceMock   *mocks.MockLineupService
	ScheduleServiceMock *mocks.MockScheduleService
	SlackClientMock     *mocks.MockSlackClient
}

func GetHandlerTest(t *testing.T) (m ServiceMocks, handler *handlers.SlackHandler, ctrl *gomock.Controller) {
	t.Helper()

	ctrl = gomock.NewController(t)
	m = ServiceMocks{
		LineupServiceMock:   mocks.NewMockLineupService(ctrl),
		ScheduleServiceMock: mocks.NewMockScheduleService(ctrl),
		SlackClientMock:     mocks.NewMockSlackClient(ctrl),
	}

	cfg := &config.Config{
		SlackSigningSecret: SigningSecret,
		ManagerUserIDs:     []string{"UMANAGER"},
		BossDuration:       2 * time.Hour,
	}

	loc, err := time.LoadLocation("Asia/Manila")
	require.NoError(t, err)

	log := logrus.New()
	log.SetOutput(io.Discard)

	handler = handlers.New(m.SlackClientMock, m.LineupServiceMock, m.ScheduleServiceMock, cfg, loc, log)

	return
}

// CreateSlackRequest creates a properly signed Slack slash command request
func CreateSlackRequest(t *testing.T, command, text, channelID, userID string) *http.Request {
	t.Helper()

	// Create form data matching Slack's slash command format
	form := url.Values{
		"token":        {"test-token"},
		"team_id":      {"T123"},
		"team_domain":  {"test-team"},
		"channel_id":   {channelID},
		"channel_name": {"guild-hall"},
		"user_id":      {userID},
		"user_name":    {"test-user"},
		"command":      {command},
		"text":         {text},
		"response_url": {"https://hooks.slack.com/commands/test"},
		"trigger_id":   {"test-trigger-id"},
	}

	body := form.Encode()

	req, err := http.NewRequest(http.MethodPost, "/slack/commands", strings.NewReader(body))
	require.NoError(t, err)

	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	signRequest(req, body)

	return req
}

// CreateEventRequest creates a properly signed Events API callback request.
func CreateEventRequest(t *testing.T, body string) *http.Request {
	t.Helper()

	req, err := http.NewRequest(http.MethodPost, "/slack/events", strings.NewReader(body))
	require.NoError(t, err)

	req.Header.Set("Content-Type", "application/json")
	signRequest(req, body)

	return req
}

func signRequest(req *http.Request, body string) {
	timestamp := strconv.FormatInt(time.Now().Unix(), 10)
	req.Header.Set("X-Slack-Request-Timestamp", timestamp)
	req.Header.Set("X-Slack-Signature", generateSlackSignature(SigningSecret, timestamp, body))
}

func generateSlackSignature(signingSecret, timestamp, body string) string {
	baseString := fmt.Sprintf("v0:%s:%s", timestamp, body)
	h := hmac.New(sha256.New, []byte(signingSecret))
	h.Write([]byte(baseString))
	signature := hex.EncodeToString(h.Sum(nil))
	return fmt.Sprintf("v0=%s", signature)
}

func CreateTestRecorder() *httptest.ResponseRecorder {
	return httptest.NewRecorder()
}
