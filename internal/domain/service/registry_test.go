package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guildops/slack-lineup-bot/internal/domain/entity"
)

func TestTimerRegistry(t *testing.T) {
	newCountdown := func(channelID string) *entity.Countdown {
		return &entity.Countdown{ChannelID: channelID, Label: "World Boss", EndsAt: time.Now().Add(time.Hour)}
	}

	t.Run("Should track one countdown per channel", func(t *testing.T) {
		r := newTimerRegistry()
		first := newCountdown("C1")
		second := newCountdown("C1")

		r.Set("C1", first)
		r.Set("C1", second)
		r.Set("C2", newCountdown("C2"))

		got, ok := r.Get("C1")
		require.True(t, ok)
		assert.Same(t, second, got)
		assert.Equal(t, 2, r.Len())
	})

	t.Run("Should hand back the superseded entry on swap", func(t *testing.T) {
		r := newTimerRegistry()
		first := newCountdown("C1")
		second := newCountdown("C1")

		prev, ok := r.Swap("C1", first)
		assert.False(t, ok)
		assert.Nil(t, prev)

		prev, ok = r.Swap("C1", second)
		require.True(t, ok)
		assert.Same(t, first, prev)

		got, ok := r.Get("C1")
		require.True(t, ok)
		assert.Same(t, second, got)
		assert.Equal(t, 1, r.Len())
	})

	t.Run("Should miss unknown channels", func(t *testing.T) {
		r := newTimerRegistry()
		_, ok := r.Get("C9")
		assert.False(t, ok)
	})

	t.Run("Should remove by channel", func(t *testing.T) {
		r := newTimerRegistry()
		r.Set("C1", newCountdown("C1"))
		r.Remove("C1")
		assert.Equal(t, 0, r.Len())
	})

	t.Run("Should only remove the matching entry", func(t *testing.T) {
		r := newTimerRegistry()
		stale := newCountdown("C1")
		live := newCountdown("C1")

		r.Set("C1", live)
		// A superseded timer exiting late must not evict its successor.
		r.RemoveEntry("C1", stale)
		got, ok := r.Get("C1")
		require.True(t, ok)
		assert.Same(t, live, got)

		r.RemoveEntry("C1", live)
		_, ok = r.Get("C1")
		assert.False(t, ok)
	})
}
