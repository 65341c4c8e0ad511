package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("SLACK_BOT_TOKEN", "xoxb-test")
	t.Setenv("SLACK_SIGNING_SECRET", "secret")
}

func TestLoad(t *testing.T) {
	t.Run("Should apply defaults", func(t *testing.T) {
		setRequired(t)

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "Asia/Manila", cfg.Timezone)
		assert.Equal(t, []int{11, 14, 17, 20, 23, 2, 5, 8}, cfg.RecurringHours)
		assert.Equal(t, 2*time.Hour, cfg.BossDuration)
		assert.Equal(t, 7*24*time.Hour, cfg.LineupRetention)
		assert.Equal(t, "3000", cfg.Port)
		assert.Empty(t, cfg.ManagerUserIDs)
		assert.False(t, cfg.StrictSingleInstance)
	})

	t.Run("Should require the bot token", func(t *testing.T) {
		t.Setenv("SLACK_BOT_TOKEN", "")
		t.Setenv("SLACK_SIGNING_SECRET", "secret")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "SLACK_BOT_TOKEN")
	})

	t.Run("Should require the signing secret", func(t *testing.T) {
		t.Setenv("SLACK_BOT_TOKEN", "xoxb-test")
		t.Setenv("SLACK_SIGNING_SECRET", "")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "SLACK_SIGNING_SECRET")
	})

	t.Run("Should parse overrides", func(t *testing.T) {
		setRequired(t)
		t.Setenv("RECURRING_HOURS", "9, 18")
		t.Setenv("BOSS_DURATION", "90m")
		t.Setenv("MANAGER_USER_IDS", "U1, U2,")
		t.Setenv("STRICT_SINGLE_INSTANCE", "true")

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, []int{9, 18}, cfg.RecurringHours)
		assert.Equal(t, 90*time.Minute, cfg.BossDuration)
		assert.Equal(t, []string{"U1", "U2"}, cfg.ManagerUserIDs)
		assert.True(t, cfg.StrictSingleInstance)
	})

	t.Run("Should reject an out of range hour", func(t *testing.T) {
		setRequired(t)
		t.Setenv("RECURRING_HOURS", "11,24")

		_, err := Load()
		require.Error(t, err)
	})

	t.Run("Should reject a non numeric hour", func(t *testing.T) {
		setRequired(t)
		t.Setenv("RECURRING_HOURS", "noon")

		_, err := Load()
		require.Error(t, err)
	})

	t.Run("Should reject a non positive boss duration", func(t *testing.T) {
		setRequired(t)
		t.Setenv("BOSS_DURATION", "-1h")

		_, err := Load()
		require.Error(t, err)
	})
}

func TestLocation(t *testing.T) {
	t.Run("Should resolve a known timezone", func(t *testing.T) {
		cfg := &Config{Timezone: "Asia/Manila"}
		loc, err := cfg.Location()
		require.NoError(t, err)
		assert.Equal(t, "Asia/Manila", loc.String())
	})

	t.Run("Should reject an unknown timezone", func(t *testing.T) {
		cfg := &Config{Timezone: "Mars/Olympus"}
		_, err := cfg.Location()
		assert.Error(t, err)
	})
}
