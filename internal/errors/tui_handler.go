package errors

import (
	"sync"
	"time"
)

// MessageType selects the status bar style.
type MessageType int

const (
	MessageTypeError MessageType = iota
	MessageTypeWarning
	MessageTypeInfo
	MessageTypeSuccess
)

// IsError reports whether the message uses the error style. Every other
// type renders with the success style.
func (t MessageType) IsError() bool {
	return t == MessageTypeError
}

// Message is one status line shown by the terminal UI.
type Message struct {
	Seq     uint64
	Text    string
	Type    MessageType
	Timeout time.Duration // zero keeps the message until replaced
	At      time.Time
}

// Status bar durations per kind of message.
const (
	TimeoutDone       = 1500 * time.Millisecond
	TimeoutConfirm    = 3 * time.Second
	TimeoutValidation = 4 * time.Second
	TimeoutDelete     = 4 * time.Second
	TimeoutLoad       = 5 * time.Second
	TimeoutSave       = 5 * time.Second
)

// TUIHandler keeps the current status message. Each new message gets a
// higher sequence number, and Expire only clears the message it was
// scheduled for.
type TUIHandler struct {
	mu      sync.RWMutex
	seq     uint64
	current Message
	visible bool
	now     func() time.Time
}

func NewTUIHandler() *TUIHandler {
	return &TUIHandler{now: time.Now}
}

// Show replaces the current message and returns it with its sequence number.
func (h *TUIHandler) Show(text string, typ MessageType, timeout time.Duration) Message {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.seq++
	h.current = Message{Seq: h.seq, Text: text, Type: typ, Timeout: timeout, At: h.now()}
	h.visible = true
	return h.current
}

// Expire clears the message with the given sequence number. It returns
// false when a newer message has replaced it.
func (h *TUIHandler) Expire(seq uint64) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	if !h.visible || h.current.Seq != seq {
		return false
	}
	h.visible = false
	return true
}

// Current returns the visible message, if any.
func (h *TUIHandler) Current() (Message, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.current, h.visible
}
