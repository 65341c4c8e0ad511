package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	SlackBotToken      string
	SlackSigningSecret string

	// Channel that receives the recurring broadcast. Empty disables the cycle.
	AnnounceChannelID string
	Timezone          string
	RecurringHours    []int
	RecurringMessage  string

	BossMessage  string
	BossDuration time.Duration

	// Slack user IDs allowed to run mutating commands. Empty allows everyone.
	ManagerUserIDs []string

	LineupRetention time.Duration

	Port        string
	LogLevel    string
	Environment string

	LockFile             string
	StrictSingleInstance bool
}

func Load() (*Config, error) {
	cfg := &Config{
		SlackBotToken:      os.Getenv("SLACK_BOT_TOKEN"),
		SlackSigningSecret: os.Getenv("SLACK_SIGNING_SECRET"),
		AnnounceChannelID:  os.Getenv("ANNOUNCE_CHANNEL_ID"),
		Timezone:           getEnv("TIMEZONE", "Asia/Manila"),
		RecurringMessage:   getEnv("RECURRING_MESSAGE", "REGISTER FFA NOW, FFA START SOON"),
		BossMessage:        getEnv("BOSS_MESSAGE", "World Boss Started! Prepare your gear."),
		Port:               getEnv("PORT", "3000"),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
		Environment:        getEnv("ENVIRONMENT", "development"),
		LockFile:           getEnv("LOCK_FILE", "./bot_instance.lock"),
	}

	if cfg.SlackBotToken == "" {
		return nil, fmt.Errorf("SLACK_BOT_TOKEN is not set")
	}
	if cfg.SlackSigningSecret == "" {
		return nil, fmt.Errorf("SLACK_SIGNING_SECRET is not set")
	}

	hours, err := parseHours(getEnv("RECURRING_HOURS", "11,14,17,20,23,2,5,8"))
	if err != nil {
		return nil, fmt.Errorf("invalid RECURRING_HOURS: %w", err)
	}
	cfg.RecurringHours = hours

	cfg.BossDuration, err = parseDuration("BOSS_DURATION", 2*time.Hour)
	if err != nil {
		return nil, err
	}

	cfg.LineupRetention, err = parseDuration("LINEUP_RETENTION", 7*24*time.Hour)
	if err != nil {
		return nil, err
	}

	if ids := os.Getenv("MANAGER_USER_IDS"); ids != "" {
		for _, id := range strings.Split(ids, ",") {
			if id = strings.TrimSpace(id); id != "" {
				cfg.ManagerUserIDs = append(cfg.ManagerUserIDs, id)
			}
		}
	}

	cfg.StrictSingleInstance = isTruthy(os.Getenv("STRICT_SINGLE_INSTANCE"))

	return cfg, nil
}

// Location resolves the configured timezone.
func (c *Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid TIMEZONE %q: %w", c.Timezone, err)
	}
	return loc, nil
}

func parseHours(raw string) ([]int, error) {
	var hours []int
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		h, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("hour %q is not a number", part)
		}
		if h < 0 || h > 23 {
			return nil, fmt.Errorf("hour %d out of range", h)
		}
		hours = append(hours, h)
	}
	if len(hours) == 0 {
		return nil, fmt.Errorf("no hours configured")
	}
	return hours, nil
}

func parseDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("invalid %s: must be positive", key)
	}
	return d, nil
}

func isTruthy(value string) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
