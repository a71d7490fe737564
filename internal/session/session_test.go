package session

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/diogo/projectassist/internal/feed"
	"github.com/diogo/projectassist/internal/models"
	"github.com/diogo/projectassist/internal/wizard"
)

func newTestSession(t *testing.T) (*Session, *feed.ManualClock) {
	t.Helper()
	clock := feed.NewManualClock(time.Date(2024, 3, 4, 10, 0, 0, 0, time.UTC))
	return New(WithFeed(feed.New(feed.WithClock(clock)))), clock
}

func openChat(t *testing.T, s *Session, topics ...string) {
	t.Helper()
	for _, id := range topics {
		s.Toggle(id)
	}
	require.True(t, s.Continue())
	s.Toggle(models.SourceAll)
	require.True(t, s.Continue())
	require.Equal(t, wizard.StepChat, s.Step())
}

func TestNew(t *testing.T) {
	s := New()

	assert.Equal(t, wizard.StepTopics, s.Step())
	assert.False(t, s.CanContinue())
	assert.Empty(t, s.Messages())
	assert.NotNil(t, s.State())
	assert.NotNil(t, s.Feed())
}

func TestContinue_DisabledWithoutSelection(t *testing.T) {
	s, _ := newTestSession(t)

	assert.False(t, s.Continue())
	assert.Equal(t, wizard.StepTopics, s.Step())

	s.Toggle(models.TopicOther)
	assert.True(t, s.CanContinue())
	assert.True(t, s.Continue())
	assert.Equal(t, wizard.StepSources, s.Step())

	assert.False(t, s.Continue())
	assert.Equal(t, wizard.StepSources, s.Step())
}

func TestContinue_EnteringChatGreetsOnce(t *testing.T) {
	s, _ := newTestSession(t)
	openChat(t, s, models.TopicProjectDetails)

	msgs := s.Messages()
	require.Len(t, msgs, 1)
	assert.Equal(t, models.RoleAssistant, msgs[0].Role)
	assert.Equal(t,
		"I'm reviewing project details that have been uploaded to the platform. Ask any question...",
		msgs[0].Content)

	// Further Continue calls on the chat step add nothing.
	assert.False(t, s.Continue())
	assert.Len(t, s.Messages(), 1)
}

func TestContinue_GreetingListsTopicsInSelectionOrder(t *testing.T) {
	s, _ := newTestSession(t)
	openChat(t, s, models.TopicOther, models.TopicCodeCompliance)

	msgs := s.Messages()
	require.Len(t, msgs, 1)
	assert.Contains(t, msgs[0].Content, "other documents, code & compliance")
}

func TestToggle_AppliesToActiveStep(t *testing.T) {
	s, _ := newTestSession(t)
	s.Toggle(models.TopicTraining)
	s.Continue()

	s.Toggle(models.SourceEmails)
	assert.Equal(t, []string{models.TopicTraining}, s.State().SelectedTopics())
	assert.Equal(t, []string{models.SourceEmails}, s.State().SelectedSources())
}

func TestSend_OnlyOnChatStep(t *testing.T) {
	s, _ := newTestSession(t)

	_, ok := s.Send("too early")
	assert.False(t, ok)
	assert.Empty(t, s.Messages())
}

func TestSend_ReplyAfterDelay(t *testing.T) {
	s, clock := newTestSession(t)
	openChat(t, s, models.TopicProjectDetails)

	msg, ok := s.Send("Who is the GC?")
	require.True(t, ok)
	assert.Equal(t, models.RoleUser, msg.Role)
	assert.Len(t, s.Messages(), 2)

	assert.Empty(t, s.DeliverDue(clock.Advance(500*time.Millisecond)))

	got := s.DeliverDue(clock.Advance(500 * time.Millisecond))
	require.Len(t, got, 1)
	assert.Equal(t, feed.CannedReply, got[0].Content)
	assert.Len(t, s.Messages(), 3)
}

func TestSend_WhitespaceIgnored(t *testing.T) {
	s, clock := newTestSession(t)
	openChat(t, s, models.TopicProjectDetails)

	_, ok := s.Send("   ")
	assert.False(t, ok)
	assert.Empty(t, s.DeliverDue(clock.Advance(time.Minute)))
	assert.Len(t, s.Messages(), 1)
}

func TestWithLogger_RecordsTransitions(t *testing.T) {
	var buf bytes.Buffer
	s := New(WithLogger(zerolog.New(&buf).Level(zerolog.InfoLevel)))

	s.Toggle(models.TopicOther)
	s.Continue()

	out := buf.String()
	assert.Contains(t, out, `"component":"session"`)
	assert.Contains(t, out, `"from":"topics"`)
	assert.Contains(t, out, `"to":"sources"`)
	// Toggle events are debug level and filtered out here.
	assert.False(t, strings.Contains(out, "toggled option"))
}
