package chat

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"
)

// Sender identifies which side of the conversation a message belongs to.
type Sender string

const (
	SenderUser Sender = "user"
	SenderBot  Sender = "bot"
)

// Message is a single turn in the visible conversation. While a reply is
// awaited the bot entry is a pending placeholder; it is replaced in place
// once the turn settles, never appended twice.
type Message struct {
	Sender  Sender
	Content string
	Pending bool
}

// FallbackReply is shown to the user when a turn fails for any reason.
// The raw cause is logged, never rendered.
const FallbackReply = "Sorry, something went wrong. Please try again later."

var (
	// ErrEmptyMessage is returned when Send is invoked with blank input.
	ErrEmptyMessage = errors.New("message is empty")
	// ErrBusy is returned when a request is already in flight.
	ErrBusy = errors.New("a request is already in flight")
)

// Relay sends a user message to the chat relay and returns the bot reply.
type Relay interface {
	Send(ctx context.Context, message string) (string, error)
}

// Conversation owns the local chat state: an append-only ordered message
// sequence, an open/closed flag, and a single-flight guard so at most one
// relay request is outstanding at a time. The UI enforces single-flight by
// disabling its send control; this programmatic surface enforces it with
// an explicit lock since nothing server-side does.
type Conversation struct {
	relay  Relay
	logger *slog.Logger

	mu       sync.Mutex
	open     bool
	busy     bool
	gen      uint64 // bumped by Reset so stale settlements are dropped
	cancel   context.CancelFunc
	messages []Message
}

// NewConversation creates an empty, closed conversation backed by the
// given relay.
func NewConversation(relay Relay) *Conversation {
	return &Conversation{
		relay:  relay,
		logger: slog.Default(),
	}
}

// Toggle flips the visibility of the conversation surface. Visibility has
// no effect on conversation state.
func (c *Conversation) Toggle() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.open = !c.open
}

// IsOpen reports whether the conversation surface is visible.
func (c *Conversation) IsOpen() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.open
}

// Busy reports whether a request is currently in flight.
func (c *Conversation) Busy() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.busy
}

// Reset unconditionally clears the message sequence. It has no network
// effect beyond cancelling an in-flight request; a settlement arriving
// after Reset must not repopulate the cleared sequence.
func (c *Conversation) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.cancel != nil {
		c.cancel()
	}
	c.gen++
	c.messages = nil
}

// Messages returns a snapshot of the conversation in display order,
// most recent last.
func (c *Conversation) Messages() []Message {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Message, len(c.messages))
	copy(out, c.messages)
	return out
}

// Send submits one user turn and blocks until it settles. The trimmed
// text is appended as a user message followed by a pending bot entry,
// exactly one relay request is issued, and the pending entry is replaced
// in place with the reply or with FallbackReply on any failure. A failed
// turn is terminal; Send still returns nil because the failure is
// rendered, not raised.
//
// Blank input returns ErrEmptyMessage without touching the sequence or
// the network. A Send while another is outstanding returns ErrBusy.
func (c *Conversation) Send(ctx context.Context, text string) error {
	text = strings.TrimSpace(text)
	if text == "" {
		return ErrEmptyMessage
	}

	c.mu.Lock()
	if c.busy {
		c.mu.Unlock()
		return ErrBusy
	}
	c.busy = true
	gen := c.gen
	callCtx, cancel := context.WithCancel(ctx)
	c.cancel = cancel
	c.messages = append(c.messages,
		Message{Sender: SenderUser, Content: text},
		Message{Sender: SenderBot, Pending: true},
	)
	c.mu.Unlock()

	reply, err := c.relay.Send(callCtx, text)
	cancel()
	if err != nil {
		c.logger.Warn("chat turn failed", "error", err)
		reply = FallbackReply
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.busy = false
	c.cancel = nil
	if c.gen != gen {
		// Reset happened mid-flight; the sequence was cleared and this
		// settlement no longer has a pending slot to fill.
		return nil
	}
	last := len(c.messages) - 1
	c.messages[last] = Message{Sender: SenderBot, Content: reply}
	return nil
}
