// Package session owns one wizard run: the selection state machine and the
// conversation feed it leads into.
package session

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/diogo/projectassist/internal/feed"
	"github.com/diogo/projectassist/internal/models"
	"github.com/diogo/projectassist/internal/wizard"
)

// Session is the single owner of the view state. It is driven from one
// goroutine (the UI event loop) and does no locking.
type Session struct {
	state  *wizard.State
	feed   *feed.Feed
	logger zerolog.Logger
}

// Option configures a Session
type Option func(*Session)

// WithLogger sets the logger used for transition events
func WithLogger(logger zerolog.Logger) Option {
	return func(s *Session) {
		s.logger = logger.With().Str("component", "session").Logger()
	}
}

// WithFeed replaces the default feed
func WithFeed(f *feed.Feed) Option {
	return func(s *Session) {
		if f != nil {
			s.feed = f
		}
	}
}

// New creates a session on the topics step with an empty feed
func New(opts ...Option) *Session {
	s := &Session{
		state:  wizard.New(),
		feed:   feed.New(),
		logger: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Step returns the active wizard step
func (s *Session) Step() wizard.Step {
	return s.state.Step()
}

// State exposes the wizard state for rendering
func (s *Session) State() *wizard.State {
	return s.state
}

// Feed exposes the conversation feed for rendering
func (s *Session) Feed() *feed.Feed {
	return s.feed
}

// Toggle flips an option on the active step
func (s *Session) Toggle(id string) {
	step := s.state.Step()
	s.state.Toggle(id, step)
	s.logger.Debug().
		Str("step", step.String()).
		Str("option", id).
		Strs("selection", s.state.Selection(step)).
		Msg("toggled option")
}

// CanContinue reports whether the Continue control is enabled
func (s *Session) CanContinue() bool {
	return s.state.CanAdvance()
}

// Continue advances the wizard. Entering the chat step seeds the feed with
// exactly one assistant greeting naming the selected topics.
func (s *Session) Continue() bool {
	from := s.state.Step()
	to, ok := s.state.Advance()
	if !ok {
		s.logger.Debug().Str("step", from.String()).Msg("continue ignored: empty selection")
		return false
	}

	s.logger.Info().
		Str("from", from.String()).
		Str("to", to.String()).
		Int("topics", len(s.state.SelectedTopics())).
		Int("sources", len(s.state.SelectedSources())).
		Msg("advanced step")

	if to == wizard.StepChat {
		greeting := s.feed.Append(models.RoleAssistant, s.state.Greeting())
		s.logger.Debug().Str("message_id", greeting.ID).Msg("chat opened")
	}
	return true
}

// Send submits chat input. Blank input and sends outside the chat step are
// ignored.
func (s *Session) Send(text string) (models.Message, bool) {
	if s.state.Step() != wizard.StepChat {
		return models.Message{}, false
	}

	msg, ok := s.feed.Send(text)
	if !ok {
		return msg, false
	}

	s.logger.Debug().
		Str("message_id", msg.ID).
		Int("length", len(msg.Content)).
		Dur("reply_in", s.feed.Delay()).
		Msg("user message queued")
	return msg, true
}

// DeliverDue appends every reply due at or before now
func (s *Session) DeliverDue(now time.Time) []models.Message {
	delivered := s.feed.DeliverDue(now)
	for _, msg := range delivered {
		s.logger.Debug().Str("message_id", msg.ID).Msg("assistant reply delivered")
	}
	return delivered
}

// Messages returns the conversation so far
func (s *Session) Messages() []models.Message {
	return s.feed.Messages()
}
