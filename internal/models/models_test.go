package models

import (
	"testing"
	"time"
)

func TestTopicOptions(t *testing.T) {
	opts := TopicOptions()
	if len(opts) != 4 {
		t.Fatalf("len(TopicOptions()) = %d, want 4", len(opts))
	}

	want := []struct {
		id    string
		title string
	}{
		{TopicProjectDetails, "Project Details"},
		{TopicCodeCompliance, "Code & Compliance"},
		{TopicTraining, "Safety Documents"},
		{TopicOther, "Other Documents"},
	}
	for i, w := range want {
		if opts[i].ID != w.id {
			t.Errorf("opts[%d].ID = %s, want %s", i, opts[i].ID, w.id)
		}
		if opts[i].Title != w.title {
			t.Errorf("opts[%d].Title = %s, want %s", i, opts[i].Title, w.title)
		}
		if opts[i].Description == "" {
			t.Errorf("opts[%d].Description is empty", i)
		}
	}
}

func TestTopicOptions_ReturnsCopy(t *testing.T) {
	opts := TopicOptions()
	opts[0].Title = "changed"

	if TopicOptions()[0].Title != "Project Details" {
		t.Error("TopicOptions() should return a copy of the catalog")
	}
}

func TestSourceOptions(t *testing.T) {
	opts := SourceOptions()
	if len(opts) != 4 {
		t.Fatalf("len(SourceOptions()) = %d, want 4", len(opts))
	}
	if opts[len(opts)-1].ID != SourceAll {
		t.Errorf("last source option = %s, want %s", opts[len(opts)-1].ID, SourceAll)
	}
}

func TestSourceIDs_ExcludesAll(t *testing.T) {
	ids := SourceIDs()
	want := []string{SourceUploadedDocs, SourceEmails, SourceProcore}
	if len(ids) != len(want) {
		t.Fatalf("SourceIDs() = %v, want %v", ids, want)
	}
	for i := range want {
		if ids[i] != want[i] {
			t.Errorf("SourceIDs()[%d] = %s, want %s", i, ids[i], want[i])
		}
	}
}

func TestOptionIDsUnique(t *testing.T) {
	for name, catalog := range map[string][]Option{
		"topics":  TopicOptions(),
		"sources": SourceOptions(),
	} {
		seen := make(map[string]bool)
		for _, opt := range catalog {
			if seen[opt.ID] {
				t.Errorf("%s: duplicate id %s", name, opt.ID)
			}
			seen[opt.ID] = true
		}
	}
}

func TestFindOption(t *testing.T) {
	tests := []struct {
		name   string
		lookup func(string) (Option, bool)
		id     string
		found  bool
		title  string
	}{
		{"topic found", TopicByID, TopicTraining, true, "Safety Documents"},
		{"topic missing", TopicByID, SourceEmails, false, ""},
		{"source found", SourceByID, SourceProcore, true, "Procore"},
		{"source all", SourceByID, SourceAll, true, "Check All"},
		{"source missing", SourceByID, "dropbox", false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opt, ok := tt.lookup(tt.id)
			if ok != tt.found {
				t.Fatalf("found = %v, want %v", ok, tt.found)
			}
			if opt.Title != tt.title {
				t.Errorf("Title = %q, want %q", opt.Title, tt.title)
			}
		})
	}
}

func TestNewMessage(t *testing.T) {
	at := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	a := NewMessage(RoleUser, "hello", at)
	b := NewMessage(RoleUser, "hello", at)

	if a.ID == "" || b.ID == "" {
		t.Fatal("NewMessage should assign an ID")
	}
	if a.ID == b.ID {
		t.Error("NewMessage should assign unique IDs")
	}
	if !a.IsUser() {
		t.Error("IsUser() = false for user message")
	}
	if !a.Timestamp.Equal(at) {
		t.Errorf("Timestamp = %v, want %v", a.Timestamp, at)
	}

	reply := NewMessage(RoleAssistant, "hi", at)
	if reply.IsUser() {
		t.Error("IsUser() = true for assistant message")
	}
}
