package jira

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/tidwall/gjson"
)

var issueLine = regexp.MustCompile(`^([\w-]+):\s+(.+)$`)

// IssueRef is one line of a jira list output.
type IssueRef struct {
	ID      string
	Summary string
}

// ParseIssueList parses "KEY-1: summary" lines, skipping anything else.
func ParseIssueList(out string) []IssueRef {
	var refs []IssueRef
	for _, line := range strings.Split(strings.TrimSpace(out), "\n") {
		m := issueLine.FindStringSubmatch(strings.TrimSpace(line))
		if m == nil {
			continue
		}
		refs = append(refs, IssueRef{ID: m[1], Summary: m[2]})
	}
	return refs
}

// Issue holds the issue fields the validation rules look at.
type Issue struct {
	Key              string
	Summary          string
	Description      string
	CommentCount     int
	OriginalEstimate string
	HasEstimate      bool
}

// HasDescription reports whether the description has non-blank text.
func (i Issue) HasDescription() bool {
	return strings.TrimSpace(i.Description) != ""
}

// ParseIssue reads the JSON template output of jira view.
func ParseIssue(data []byte) (Issue, error) {
	if !gjson.ValidBytes(data) {
		return Issue{}, fmt.Errorf("%w: invalid issue JSON", ErrCommandFailed)
	}
	doc := gjson.ParseBytes(data)
	estimate := doc.Get("fields.timetracking.originalEstimate")
	return Issue{
		Key:              doc.Get("key").String(),
		Summary:          doc.Get("fields.summary").String(),
		Description:      doc.Get("fields.description").String(),
		CommentCount:     int(doc.Get("fields.comment.comments.#").Int()),
		OriginalEstimate: estimate.String(),
		HasEstimate:      estimate.Exists() && estimate.Type != gjson.Null,
	}, nil
}
