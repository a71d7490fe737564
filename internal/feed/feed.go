// Package feed provides the append-only mock conversation feed used by the chat step.
package feed

import (
	"slices"
	"strings"
	"time"

	"github.com/diogo/projectassist/internal/models"
)

// DefaultReplyDelay is how long the canned reply waits after a send
const DefaultReplyDelay = 1000 * time.Millisecond

// CannedReply is the assistant text returned for every user message
const CannedReply = "I'm here to help! Could you please provide more specific details about your request?"

// pendingReply is a scheduled assistant message keyed by the user message ID
type pendingReply struct {
	key string
	due time.Time
	seq uint64
}

// Feed is an ordered, append-only list of messages plus the replies still
// waiting to be delivered. It is owned by a single session and is not safe
// for concurrent use.
type Feed struct {
	clock    Clock
	delay    time.Duration
	reply    string
	messages []models.Message
	pending  []pendingReply
	seq      uint64
}

// Option configures a Feed
type Option func(*Feed)

// WithClock sets the time source
func WithClock(c Clock) Option {
	return func(f *Feed) {
		if c != nil {
			f.clock = c
		}
	}
}

// WithDelay sets the reply delay. Negative values are treated as zero.
func WithDelay(d time.Duration) Option {
	return func(f *Feed) {
		if d < 0 {
			d = 0
		}
		f.delay = d
	}
}

// WithReply overrides the canned reply text
func WithReply(text string) Option {
	return func(f *Feed) {
		if text != "" {
			f.reply = text
		}
	}
}

// New creates an empty feed
func New(opts ...Option) *Feed {
	f := &Feed{
		clock: RealClock{},
		delay: DefaultReplyDelay,
		reply: CannedReply,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Delay returns the configured reply delay
func (f *Feed) Delay() time.Duration {
	return f.delay
}

// Append adds a message with the given role immediately
func (f *Feed) Append(role, text string) models.Message {
	msg := models.NewMessage(role, text, f.clock.Now())
	f.messages = append(f.messages, msg)
	return msg
}

// Send appends a user message and schedules the canned reply. Empty or
// whitespace-only text is rejected and nothing is appended.
func (f *Feed) Send(text string) (models.Message, bool) {
	if strings.TrimSpace(text) == "" {
		return models.Message{}, false
	}

	msg := f.Append(models.RoleUser, text)
	f.seq++
	f.pending = append(f.pending, pendingReply{
		key: msg.ID,
		due: msg.Timestamp.Add(f.delay),
		seq: f.seq,
	})
	return msg, true
}

// DeliverDue appends every pending reply due at or before now, oldest
// first, and returns the delivered messages.
func (f *Feed) DeliverDue(now time.Time) []models.Message {
	if len(f.pending) == 0 {
		return nil
	}

	var due, rest []pendingReply
	for _, p := range f.pending {
		if p.due.After(now) {
			rest = append(rest, p)
		} else {
			due = append(due, p)
		}
	}
	if len(due) == 0 {
		return nil
	}

	slices.SortFunc(due, func(a, b pendingReply) int {
		if c := a.due.Compare(b.due); c != 0 {
			return c
		}
		return int(a.seq) - int(b.seq)
	})

	delivered := make([]models.Message, 0, len(due))
	for _, p := range due {
		msg := models.NewMessage(models.RoleAssistant, f.reply, p.due)
		f.messages = append(f.messages, msg)
		delivered = append(delivered, msg)
	}
	f.pending = rest
	return delivered
}

// Cancel drops the reply scheduled for the given user message ID
func (f *Feed) Cancel(id string) bool {
	for i, p := range f.pending {
		if p.key == id {
			f.pending = slices.Delete(f.pending, i, i+1)
			return true
		}
	}
	return false
}

// Pending returns the number of replies not yet delivered
func (f *Feed) Pending() int {
	return len(f.pending)
}

// NextDue returns the earliest pending due time
func (f *Feed) NextDue() (time.Time, bool) {
	if len(f.pending) == 0 {
		return time.Time{}, false
	}
	next := f.pending[0].due
	for _, p := range f.pending[1:] {
		if p.due.Before(next) {
			next = p.due
		}
	}
	return next, true
}

// Messages returns a copy of the feed in append order
func (f *Feed) Messages() []models.Message {
	return slices.Clone(f.messages)
}

// Len returns the number of appended messages
func (f *Feed) Len() int {
	return len(f.messages)
}

// LastAssistant returns the most recent assistant message
func (f *Feed) LastAssistant() (models.Message, bool) {
	for i := len(f.messages) - 1; i >= 0; i-- {
		if f.messages[i].Role == models.RoleAssistant {
			return f.messages[i], true
		}
	}
	return models.Message{}, false
}
