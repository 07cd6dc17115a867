package service

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/klimatech/acbot/internal/domain"
)

// History keeps per-chat conversations in memory. Turns are append-only and
// each chat holds at most one in-flight request at a time. Nothing survives
// a restart.
type History struct {
	mu    sync.RWMutex
	chats map[int64]*conversation
	now   func() time.Time
}

type conversation struct {
	turns []domain.ChatTurn
	busy  bool
}

func NewHistory() *History {
	return &History{
		chats: make(map[int64]*conversation),
		now:   time.Now,
	}
}

// Append stores a turn for the chat, filling in ID and timestamp when unset,
// and returns the stored copy.
func (h *History) Append(chatID int64, turn domain.ChatTurn) domain.ChatTurn {
	h.mu.Lock()
	defer h.mu.Unlock()

	if turn.ID == "" {
		turn.ID = uuid.NewString()
	}
	if turn.CreatedAt.IsZero() {
		turn.CreatedAt = h.now()
	}

	c := h.conversation(chatID)
	c.turns = append(c.turns, turn)
	return turn
}

// Turns returns a copy of the chat's turns in append order.
func (h *History) Turns(chatID int64) []domain.ChatTurn {
	h.mu.RLock()
	defer h.mu.RUnlock()

	c, ok := h.chats[chatID]
	if !ok {
		return nil
	}
	turns := make([]domain.ChatTurn, len(c.turns))
	copy(turns, c.turns)
	return turns
}

// Reset drops the chat's turns. The busy flag is left alone so an in-flight
// request still releases normally.
func (h *History) Reset(chatID int64) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if c, ok := h.chats[chatID]; ok {
		c.turns = nil
	}
}

// TryAcquire marks the chat busy. It fails with ErrBusy while a previous
// request is still running; a concurrent submit is a no-op, not a queue.
func (h *History) TryAcquire(chatID int64) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	c := h.conversation(chatID)
	if c.busy {
		return domain.ErrBusy
	}
	c.busy = true
	return nil
}

// Release clears the busy flag.
func (h *History) Release(chatID int64) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if c, ok := h.chats[chatID]; ok {
		c.busy = false
	}
}

// conversation returns the chat's record, creating it if needed.
// Callers must hold h.mu.
func (h *History) conversation(chatID int64) *conversation {
	c, ok := h.chats[chatID]
	if !ok {
		c = &conversation{}
		h.chats[chatID] = c
	}
	return c
}
