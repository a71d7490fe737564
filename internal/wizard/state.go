// Package wizard implements the step and selection state machine behind the
// topic/source picker.
package wizard

import (
	"fmt"
	"slices"
	"strings"

	"github.com/diogo/projectassist/internal/models"
)

// Step is one of the three wizard phases
type Step int

const (
	StepTopics Step = iota
	StepSources
	StepChat
)

// String returns the lower-case step name
func (s Step) String() string {
	switch s {
	case StepTopics:
		return "topics"
	case StepSources:
		return "sources"
	case StepChat:
		return "chat"
	default:
		return "unknown"
	}
}

// greetingTemplate wraps the lower-cased topic titles
const greetingTemplate = "I'm reviewing %s that have been uploaded to the platform. Ask any question..."

// State holds the current step and the ordered selections for each step.
// The zero value is a fresh wizard on the topics step.
type State struct {
	step    Step
	topics  []string
	sources []string
}

// New creates a wizard positioned on the topics step
func New() *State {
	return &State{step: StepTopics}
}

// Step returns the active step
func (s *State) Step() Step {
	return s.step
}

// SelectedTopics returns the selected topic IDs in selection order
func (s *State) SelectedTopics() []string {
	return slices.Clone(s.topics)
}

// SelectedSources returns the selected source IDs in selection order
func (s *State) SelectedSources() []string {
	return slices.Clone(s.sources)
}

// Selection returns the selection for a step. Chat has none.
func (s *State) Selection(step Step) []string {
	switch step {
	case StepTopics:
		return s.SelectedTopics()
	case StepSources:
		return s.SelectedSources()
	default:
		return nil
	}
}

// Options returns the catalog shown on a step
func Options(step Step) []models.Option {
	switch step {
	case StepTopics:
		return models.TopicOptions()
	case StepSources:
		return models.SourceOptions()
	default:
		return nil
	}
}

// IsSelected reports whether id is selected on step. The "Check All" tile
// counts as selected when every searchable source is.
func (s *State) IsSelected(id string, step Step) bool {
	switch step {
	case StepTopics:
		return slices.Contains(s.topics, id)
	case StepSources:
		if id == models.SourceAll {
			return s.allSourcesSelected()
		}
		return slices.Contains(s.sources, id)
	default:
		return false
	}
}

// Toggle flips membership of id in the selection for step.
//
// On the sources step the SourceAll id replaces the selection wholesale: with
// either every source or none, decided by comparing the selection size to the
// catalog size. Unknown ids and the chat step are ignored.
func (s *State) Toggle(id string, step Step) {
	switch step {
	case StepTopics:
		if _, ok := models.TopicByID(id); !ok {
			return
		}
		s.topics = flip(s.topics, id)

	case StepSources:
		if id == models.SourceAll {
			if s.allSourcesSelected() {
				s.sources = nil
			} else {
				s.sources = models.SourceIDs()
			}
			return
		}
		if _, ok := models.SourceByID(id); !ok {
			return
		}
		s.sources = flip(s.sources, id)
	}
}

// CanAdvance reports whether Continue is enabled on the active step
func (s *State) CanAdvance() bool {
	switch s.step {
	case StepTopics:
		return len(s.topics) > 0
	case StepSources:
		return len(s.sources) > 0
	default:
		return false
	}
}

// Advance moves to the next step when the active selection is non-empty.
// It returns the entered step and whether a transition happened.
func (s *State) Advance() (Step, bool) {
	if !s.CanAdvance() {
		return s.step, false
	}
	s.step++
	return s.step, true
}

// Greeting returns the opening assistant line for the chat step, naming every
// selected topic in selection order.
func (s *State) Greeting() string {
	titles := make([]string, 0, len(s.topics))
	for _, id := range s.topics {
		if opt, ok := models.TopicByID(id); ok {
			titles = append(titles, opt.Title)
		}
	}
	return fmt.Sprintf(greetingTemplate, strings.ToLower(strings.Join(titles, ", ")))
}

func (s *State) allSourcesSelected() bool {
	return len(s.sources) == len(models.SourceIDs())
}

func flip(set []string, id string) []string {
	if i := slices.Index(set, id); i >= 0 {
		if len(set) == 1 {
			return nil
		}
		return slices.Delete(slices.Clone(set), i, i+1)
	}
	return append(slices.Clone(set), id)
}
