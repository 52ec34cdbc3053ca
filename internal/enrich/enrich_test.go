package enrich

import (
	"strings"
	"testing"
)

func TestBuildPromptContainsInputs(t *testing.T) {
	prompt := BuildPrompt("Blue Backpack", "left, near library")

	for _, want := range []string{
		"Item Name: Blue Backpack",
		"Keywords: left, near library",
		"5 short tags (comma separated)",
		"Description:",
		"Tags:",
		"tag1, tag2, tag3, tag4, tag5",
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q:\n%s", want, prompt)
		}
	}
}

func TestParseWellFormedReply(t *testing.T) {
	raw := "Description:\nA blue backpack found near the library.\n\nTags:\nbackpack, blue, library, lost, bag"

	result := Parse(raw)
	if result.Description != "A blue backpack found near the library." {
		t.Errorf("unexpected description %q", result.Description)
	}
	if result.TagsInferred {
		t.Error("expected parsed tags, not the fallback")
	}
	if len(result.Tags) != 5 {
		t.Fatalf("expected 5 tags, got %d: %v", len(result.Tags), result.Tags)
	}
	if got := result.TagsText(); got != "backpack, blue, library, lost, bag" {
		t.Errorf("unexpected tags text %q", got)
	}
}

func TestParseMultilineDescription(t *testing.T) {
	raw := "Description:\nA red umbrella with\na wooden handle.\n\nTags:\nred, umbrella, wooden, handle, rain"

	result := Parse(raw)
	if result.Description != "A red umbrella with a wooden handle." {
		t.Errorf("expected lines joined with single spaces, got %q", result.Description)
	}
	if got := result.TagsText(); got != "red, umbrella, wooden, handle, rain" {
		t.Errorf("unexpected tags text %q", got)
	}
}

func TestParseNoTagLine(t *testing.T) {
	raw := "A plain reply with no tags at all.\nSecond line."

	result := Parse(raw)
	if !result.TagsInferred {
		t.Error("expected TagsInferred for a reply without a tag line")
	}
	if len(result.Tags) != 0 {
		t.Errorf("expected no tags, got %v", result.Tags)
	}
	if got := result.TagsText(); got != TagsFallback {
		t.Errorf("expected fallback marker, got %q", got)
	}
	if result.Description != "A plain reply with no tags at all. Second line." {
		t.Errorf("unexpected description %q", result.Description)
	}
}

func TestParseCommaBoundary(t *testing.T) {
	// One comma stays in the description, two commas make a tag line.
	raw := "Found near the gym, slightly worn.\nsmall, black, leather"

	result := Parse(raw)
	if result.Description != "Found near the gym, slightly worn." {
		t.Errorf("one-comma line should be description, got %q", result.Description)
	}
	if got := result.TagsText(); got != "small, black, leather" {
		t.Errorf("two-comma line should be tags, got %q", got)
	}
}

func TestParseLastTagLineWins(t *testing.T) {
	raw := "one, two, three\nfour, five, six"

	result := Parse(raw)
	if got := result.TagsText(); got != "four, five, six" {
		t.Errorf("expected the last qualifying line to win, got %q", got)
	}
	if result.Description != "" {
		t.Errorf("expected empty description, got %q", result.Description)
	}
}

func TestParseStripsLabels(t *testing.T) {
	raw := "Description:\nA black wallet.\nTags:\nwallet, black, leather, cash, cards"

	result := Parse(raw)
	if strings.Contains(result.Description, "Description") || strings.Contains(result.Description, "Tags") {
		t.Errorf("labels leaked into description: %q", result.Description)
	}
	if result.Description != "A black wallet." {
		t.Errorf("unexpected description %q", result.Description)
	}
}

func TestParseEmptyInput(t *testing.T) {
	result := Parse("")
	if result.Description != "" {
		t.Errorf("expected empty description, got %q", result.Description)
	}
	if !result.TagsInferred {
		t.Error("expected TagsInferred for empty input")
	}
	if got := result.TagsText(); got != TagsFallback {
		t.Errorf("expected fallback marker, got %q", got)
	}
}

func TestParseSkipsEmptyTagFields(t *testing.T) {
	raw := "phone, , charger,, cable"

	result := Parse(raw)
	if got := result.TagsText(); got != "phone, charger, cable" {
		t.Errorf("expected empty fields dropped, got %q", got)
	}
}
