package service

import (
	"sync"

	"github.com/guildops/slack-lineup-bot/internal/domain/entity"
)

// timerRegistry tracks at most one live countdown per channel. Supersession
// goes through Swap so the previous entry is handed back for cancellation
// under the same lock that installs its successor.
type timerRegistry struct {
	mu      sync.Mutex
	entries map[string]*entity.Countdown
}

func newTimerRegistry() *timerRegistry {
	return &timerRegistry{
		entries: make(map[string]*entity.Countdown),
	}
}

func (r *timerRegistry) Set(channelID string, cd *entity.Countdown) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries[channelID] = cd
}

// Swap installs cd for the channel and returns the countdown it replaced,
// if any.
func (r *timerRegistry) Swap(channelID string, cd *entity.Countdown) (*entity.Countdown, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	prev, ok := r.entries[channelID]
	r.entries[channelID] = cd
	return prev, ok
}

func (r *timerRegistry) Get(channelID string) (*entity.Countdown, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	cd, ok := r.entries[channelID]
	return cd, ok
}

func (r *timerRegistry) Remove(channelID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.entries, channelID)
}

// RemoveEntry removes the mapping only if it still points at cd, so a
// terminating loop cannot evict a timer that superseded it.
func (r *timerRegistry) RemoveEntry(channelID string, cd *entity.Countdown) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if cur, ok := r.entries[channelID]; ok && cur == cd {
		delete(r.entries, channelID)
		return true
	}
	return false
}

func (r *timerRegistry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}
