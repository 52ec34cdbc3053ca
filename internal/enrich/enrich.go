// Package enrich builds the completion prompt for a reported item and parses
// the model's reply into a description and tags.
package enrich

import (
	"fmt"
	"strings"
)

// TagsFallback is stored in place of tags when the reply contains no
// recognizable tag line.
const TagsFallback = "AI generated"

const promptTemplate = `
Generate:
1) A detailed searchable description
2) 5 short tags (comma separated)

Item Name: %s
Keywords: %s

Format exactly like this:

Description:
<text>

Tags:
tag1, tag2, tag3, tag4, tag5
`

// BuildPrompt formats the completion prompt for a reported item. Both
// arguments must already be trimmed and non-empty; the caller validates.
func BuildPrompt(itemName, keywords string) string {
	return fmt.Sprintf(promptTemplate, itemName, keywords)
}

// Result is the parsed form of a completion reply.
type Result struct {
	Description string
	Tags        []string

	// TagsInferred is true when no tag line was found in the reply. Tags is
	// then empty and TagsText returns the fallback marker.
	TagsInferred bool
}

// TagsText returns the storage form of the tags: the parsed tags joined with
// ", ", or the fallback marker when none were found.
func (r Result) TagsText() string {
	if r.TagsInferred {
		return TagsFallback
	}
	return strings.Join(r.Tags, ", ")
}

// Parse splits a completion reply into a description and a tag list. The
// reply is expected to loosely follow the two-section format requested by
// BuildPrompt, but any text is accepted: the "Description:" and "Tags:"
// labels are stripped, a line containing at least two commas is taken as the
// tag line (the last such line wins), and every other non-empty line joins
// the description. A comma-heavy sentence on its own line is therefore
// misclassified as tags; no better guarantee is possible with free-form
// model output. When no line qualifies, the whole reply becomes the
// description and TagsInferred is set.
func Parse(raw string) Result {
	clean := strings.ReplaceAll(raw, "Description:", "")
	clean = strings.ReplaceAll(clean, "Tags:", "")

	var descLines []string
	var tagLine string
	var tagLineFound bool

	for _, line := range strings.Split(strings.TrimSpace(clean), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if strings.Count(line, ",") >= 2 {
			tagLine = line
			tagLineFound = true
			continue
		}
		descLines = append(descLines, line)
	}

	result := Result{Description: strings.Join(descLines, " ")}
	if !tagLineFound {
		result.TagsInferred = true
		return result
	}

	for _, tag := range strings.Split(tagLine, ",") {
		if tag = strings.TrimSpace(tag); tag != "" {
			result.Tags = append(result.Tags, tag)
		}
	}
	return result
}
