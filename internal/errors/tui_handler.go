package errors

import (
	"sync"
	"time"
)

// DefaultMessageTTL is how long a status message stays visible.
const DefaultMessageTTL = 5 * time.Second

// MessageType classifies a status message.
type MessageType int

const (
	MessageTypeError MessageType = iota
	MessageTypeWarning
	MessageTypeInfo
	MessageTypeSuccess
)

func (t MessageType) String() string {
	switch t {
	case MessageTypeError:
		return "error"
	case MessageTypeWarning:
		return "warning"
	case MessageTypeSuccess:
		return "success"
	default:
		return "info"
	}
}

// Message is one status line entry.
type Message struct {
	Text      string
	Type      MessageType
	Timestamp time.Time
}

// TUIHandler forwards messages to the status line.
type TUIHandler struct {
	mu      sync.RWMutex
	ttl     time.Duration
	now     func() time.Time
	onError func(msg Message)
}

var _ ErrorHandler = (*TUIHandler)(nil)

// NewTUIHandler creates a handler; onMessage, when set, sees every message.
func NewTUIHandler(onMessage func(msg Message)) *TUIHandler {
	return &TUIHandler{
		ttl:     DefaultMessageTTL,
		now:     time.Now,
		onError: onMessage,
	}
}

// WithClock replaces the time source. Used by tests.
func (h *TUIHandler) WithClock(now func() time.Time) *TUIHandler {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.now = now
	return h
}

// TTL returns how long a message stays visible.
func (h *TUIHandler) TTL() time.Duration {
	return h.ttl
}

func (h *TUIHandler) Error(msg string)   { h.add(msg, MessageTypeError) }
func (h *TUIHandler) Warning(msg string) { h.add(msg, MessageTypeWarning) }
func (h *TUIHandler) Info(msg string)    { h.add(msg, MessageTypeInfo) }
func (h *TUIHandler) Success(msg string) { h.add(msg, MessageTypeSuccess) }

func (h *TUIHandler) add(text string, kind MessageType) {
	h.mu.RLock()
	message := Message{Text: text, Type: kind, Timestamp: h.now()}
	cb := h.onError
	h.mu.RUnlock()

	if cb != nil {
		cb(message)
	}
}
