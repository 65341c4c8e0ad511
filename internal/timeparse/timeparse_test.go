package timeparse

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func manila(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("Asia/Manila")
	require.NoError(t, err)
	return loc
}

func TestExtractMessageTimestamp(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		want     time.Time
		wantNone bool
	}{
		{
			name: "Should extract epoch from a date token",
			text: "siege starts <!date^1700000000^{date_num} {time_secs}|fallback>",
			want: time.Unix(1700000000, 0).UTC(),
		},
		{
			name: "Should use the first token when several are present",
			text: "<!date^1700000000^{date_num}|a> then <!date^1800000000^{date_num}|b>",
			want: time.Unix(1700000000, 0).UTC(),
		},
		{
			name:     "Should return none without a token",
			text:     "no token here, just 8pm",
			wantNone: true,
		},
		{
			name:     "Should return none for a malformed token",
			text:     "<!date^notanumber^{date_num}|x>",
			wantNone: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ExtractMessageTimestamp(tt.text)
			if tt.wantNone {
				assert.False(t, ok)
				return
			}
			require.True(t, ok)
			assert.True(t, got.Equal(tt.want))
		})
	}
}

func TestParseClockTime(t *testing.T) {
	loc := manila(t)
	// Monday 2024-01-01 10:00 local.
	morning := time.Date(2024, 1, 1, 10, 0, 0, 0, loc)

	tests := []struct {
		name     string
		text     string
		now      time.Time
		want     time.Time
		wantNone bool
	}{
		{
			name: "Should resolve 2pm to today when it has not passed",
			text: "let's go 2pm",
			now:  morning,
			want: time.Date(2024, 1, 1, 14, 0, 0, 0, loc),
		},
		{
			name: "Should resolve 2pm to tomorrow when it has passed",
			text: "let's go 2pm",
			now:  time.Date(2024, 1, 1, 15, 0, 0, 0, loc),
			want: time.Date(2024, 1, 2, 14, 0, 0, 0, loc),
		},
		{
			name: "Should resolve an exact match to tomorrow, never now",
			text: "14:00 sharp",
			now:  time.Date(2024, 1, 1, 14, 0, 0, 0, loc),
			want: time.Date(2024, 1, 2, 14, 0, 0, 0, loc),
		},
		{
			name: "Should parse minutes and am marker",
			text: "raid at 8:30am",
			now:  time.Date(2024, 1, 1, 6, 0, 0, 0, loc),
			want: time.Date(2024, 1, 1, 8, 30, 0, 0, loc),
		},
		{
			name: "Should normalize 12am to midnight",
			text: "12am reset",
			now:  morning,
			want: time.Date(2024, 1, 2, 0, 0, 0, 0, loc),
		},
		{
			name: "Should parse a 24h time",
			text: "at 20:00",
			now:  morning,
			want: time.Date(2024, 1, 1, 20, 0, 0, 0, loc),
		},
		{
			// The first clock-shaped substring wins, even when it is not a
			// time: "2" resolves to 02:00, which has passed by 10:00.
			name: "Should take the first number even when it is not a time",
			text: "bring 2 potions at 8pm",
			now:  morning,
			want: time.Date(2024, 1, 2, 2, 0, 0, 0, loc),
		},
		{
			name:     "Should reject an out-of-range hour",
			text:     "99 bottles",
			now:      morning,
			wantNone: true,
		},
		{
			name:     "Should reject an out-of-range minute match",
			text:     "25:99",
			now:      morning,
			wantNone: true,
		},
		{
			name:     "Should return none without any digits",
			text:     "no time here",
			now:      morning,
			wantNone: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseClockTime(tt.text, tt.now, loc)
			if tt.wantNone {
				assert.False(t, ok)
				return
			}
			require.True(t, ok)
			assert.True(t, got.Equal(tt.want), "got %s, want %s", got, tt.want)
			assert.True(t, got.After(tt.now))
		})
	}
}

func TestResolveEventTime(t *testing.T) {
	loc := manila(t)
	now := time.Date(2024, 1, 1, 10, 0, 0, 0, loc)

	t.Run("Should prefer the date token over a clock time", func(t *testing.T) {
		got, ok := ResolveEventTime("8pm <!date^1700000000^{date_num}|x>", now, loc)
		require.True(t, ok)
		assert.Equal(t, int64(1700000000), got.Unix())
	})

	t.Run("Should fall back to clock time", func(t *testing.T) {
		got, ok := ResolveEventTime("see you 8pm", now, loc)
		require.True(t, ok)
		assert.Equal(t, 20, got.In(loc).Hour())
	})

	t.Run("Should return none when neither matches", func(t *testing.T) {
		_, ok := ResolveEventTime("soon!", now, loc)
		assert.False(t, ok)
	})
}

func TestNextRecurring(t *testing.T) {
	loc := manila(t)
	hours := []int{11, 14, 17, 20, 23, 2, 5, 8}

	tests := []struct {
		name string
		now  time.Time
		want time.Time
	}{
		{
			name: "Should pick the next hour later today",
			now:  time.Date(2024, 1, 1, 9, 0, 0, 0, loc),
			want: time.Date(2024, 1, 1, 11, 0, 0, 0, loc),
		},
		{
			name: "Should wrap to the smallest hour next day",
			now:  time.Date(2024, 1, 1, 23, 30, 0, 0, loc),
			want: time.Date(2024, 1, 2, 2, 0, 0, 0, loc),
		},
		{
			name: "Should never return the current instant",
			now:  time.Date(2024, 1, 1, 11, 0, 0, 0, loc),
			want: time.Date(2024, 1, 1, 14, 0, 0, 0, loc),
		},
		{
			name: "Should handle the early-morning hours",
			now:  time.Date(2024, 1, 2, 0, 15, 0, 0, loc),
			want: time.Date(2024, 1, 2, 2, 0, 0, 0, loc),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NextRecurring(tt.now, hours, loc)
			assert.True(t, got.Equal(tt.want), "got %s, want %s", got, tt.want)
			assert.True(t, got.After(tt.now))
		})
	}
}
