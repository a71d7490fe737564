// Package models contains the option catalogs and chat message types for projectassist.
package models

// Option represents a selectable catalog entry shown as a tile in the wizard
type Option struct {
	ID          string `json:"id"`
	Icon        string `json:"icon"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Topic option IDs
const (
	TopicProjectDetails = "project-details"
	TopicCodeCompliance = "code-compliance"
	TopicTraining       = "training"
	TopicOther          = "other"
)

// Source option IDs
const (
	SourceUploadedDocs = "uploaded-docs"
	SourceEmails       = "emails"
	SourceProcore      = "procore"

	// SourceAll is the "Check All" shorthand. It is never stored in a selection.
	SourceAll = "all"
)

// Catalog entries
var (
	topicOptions = []Option{
		{
			ID:          TopicProjectDetails,
			Icon:        "⛑",
			Title:       "Project Details",
			Description: "Information about project scope and requirements",
		},
		{
			ID:          TopicCodeCompliance,
			Icon:        "📐",
			Title:       "Code & Compliance",
			Description: "Technical specifications and standards",
		},
		{
			ID:          TopicTraining,
			Icon:        "⚠",
			Title:       "Safety Documents",
			Description: "Safety protocols and training materials",
		},
		{
			ID:          TopicOther,
			Icon:        "📋",
			Title:       "Other Documents",
			Description: "Additional project documentation",
		},
	}

	sourceOptions = []Option{
		{
			ID:          SourceUploadedDocs,
			Icon:        "⬆",
			Title:       "Uploaded Docs",
			Description: "Search through uploaded documentation",
		},
		{
			ID:          SourceEmails,
			Icon:        "✉",
			Title:       "Emails",
			Description: "Search through email correspondence",
		},
		{
			ID:          SourceProcore,
			Icon:        "🏢",
			Title:       "Procore",
			Description: "Search Procore project management system",
		},
		{
			ID:          SourceAll,
			Icon:        "☑",
			Title:       "Check All",
			Description: "Search across all available sources",
		},
	}
)

// TopicOptions returns the document category catalog in display order
func TopicOptions() []Option {
	out := make([]Option, len(topicOptions))
	copy(out, topicOptions)
	return out
}

// SourceOptions returns the information source catalog in display order,
// including the "Check All" tile.
func SourceOptions() []Option {
	out := make([]Option, len(sourceOptions))
	copy(out, sourceOptions)
	return out
}

// SourceIDs returns the IDs of the searchable sources, excluding SourceAll
func SourceIDs() []string {
	ids := make([]string, 0, len(sourceOptions)-1)
	for _, opt := range sourceOptions {
		if opt.ID == SourceAll {
			continue
		}
		ids = append(ids, opt.ID)
	}
	return ids
}

// TopicIDs returns the IDs of all topics in display order
func TopicIDs() []string {
	ids := make([]string, len(topicOptions))
	for i, opt := range topicOptions {
		ids[i] = opt.ID
	}
	return ids
}

// FindOption looks up an option by ID in the given catalog
func FindOption(catalog []Option, id string) (Option, bool) {
	for _, opt := range catalog {
		if opt.ID == id {
			return opt, true
		}
	}
	return Option{}, false
}

// TopicByID returns a topic option by its ID
func TopicByID(id string) (Option, bool) {
	return FindOption(topicOptions, id)
}

// SourceByID returns a source option by its ID (SourceAll included)
func SourceByID(id string) (Option, bool) {
	return FindOption(sourceOptions, id)
}
