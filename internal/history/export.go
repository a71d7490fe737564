// Package history exports the chat transcript of a wizard run.
// Nothing is read back; a transcript is a one-way export.
package history

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/diogo/projectassist/internal/models"
)

// ExportFormat represents the format for exporting transcripts
type ExportFormat string

const (
	ExportFormatMarkdown ExportFormat = "markdown"
	ExportFormatJSON     ExportFormat = "json"
)

// Transcript is the exported view of one chat session
type Transcript struct {
	Title     string           `json:"title"`
	Topics    []string         `json:"topics"`
	Sources   []string         `json:"sources"`
	CreatedAt time.Time        `json:"created_at"`
	Messages  []models.Message `json:"messages"`
}

// NewTranscript builds a transcript from selected option IDs and the feed.
// IDs are resolved to their catalog titles.
func NewTranscript(topicIDs, sourceIDs []string, messages []models.Message, at time.Time) Transcript {
	return Transcript{
		Title:     fmt.Sprintf("Project Assistant %s", at.Format("2006-01-02 15:04")),
		Topics:    titles(topicIDs, models.TopicByID),
		Sources:   titles(sourceIDs, models.SourceByID),
		CreatedAt: at,
		Messages:  messages,
	}
}

func titles(ids []string, lookup func(string) (models.Option, bool)) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if opt, ok := lookup(id); ok {
			out = append(out, opt.Title)
		}
	}
	return out
}

// FormatFromPath picks the export format from a file extension
func FormatFromPath(path string) ExportFormat {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return ExportFormatJSON
	}
	return ExportFormatMarkdown
}

// ExportToMarkdown exports a transcript to Markdown format
func ExportToMarkdown(t Transcript) string {
	var sb strings.Builder

	// Header
	sb.WriteString("# ")
	sb.WriteString(t.Title)
	sb.WriteString("\n\n")

	// Metadata
	sb.WriteString("**Topics:** ")
	sb.WriteString(strings.Join(t.Topics, ", "))
	sb.WriteString("\n")
	sb.WriteString("**Sources:** ")
	sb.WriteString(strings.Join(t.Sources, ", "))
	sb.WriteString("\n")
	sb.WriteString("**Created:** ")
	sb.WriteString(t.CreatedAt.Format("2006-01-02 15:04:05"))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("**Messages:** %d", len(t.Messages)))
	sb.WriteString("\n\n---\n\n")

	for i, msg := range t.Messages {
		role := "User"
		if msg.Role == models.RoleAssistant {
			role = "Assistant"
		}

		sb.WriteString("## ")
		sb.WriteString(role)
		if !msg.Timestamp.IsZero() {
			sb.WriteString(" (")
			sb.WriteString(msg.Timestamp.Format("15:04:05"))
			sb.WriteString(")")
		}
		sb.WriteString("\n\n")

		sb.WriteString(msg.Content)
		sb.WriteString("\n")

		if i < len(t.Messages)-1 {
			sb.WriteString("\n---\n\n")
		}
	}

	return sb.String()
}

// ExportToJSON exports a transcript to indented JSON
func ExportToJSON(t Transcript) ([]byte, error) {
	if t.Messages == nil {
		t.Messages = []models.Message{}
	}
	return json.MarshalIndent(t, "", "  ")
}

// WriteTranscript writes the transcript to path, choosing the format from
// the file extension.
func WriteTranscript(path string, t Transcript) error {
	var data []byte
	switch FormatFromPath(path) {
	case ExportFormatJSON:
		b, err := ExportToJSON(t)
		if err != nil {
			return fmt.Errorf("failed to encode transcript: %w", err)
		}
		data = b
	default:
		data = []byte(ExportToMarkdown(t))
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create transcript directory: %w", err)
		}
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write transcript: %w", err)
	}
	return nil
}
