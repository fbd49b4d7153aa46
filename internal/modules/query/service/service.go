package service

import (
	"strings"

	"querywizard/internal/modules/query/domain"
)

// Slack search operators per file type. Keys outside this table (including
// the empty "none selected" value) produce no token.
var fileTypeOperators = map[domain.FileType]string{
	domain.FileTypePDF:         "has:pdf",
	domain.FileTypeImage:       "has:image",
	domain.FileTypeSnippet:     "has:snippet",
	domain.FileTypeGDoc:        "has:gdoc",
	domain.FileTypeSpreadsheet: "has:spreadsheet",
}

// Service assembles Slack search query strings from filter selections. It is
// pure: no I/O, no clock, identical input yields identical output.
type Service struct{}

// New creates a new query builder service
func New() *Service {
	return &Service{}
}

// Build renders the selection into a single query string. Tokens appear in a
// fixed order (channel, from-user, file type, dates, keywords), joined by
// single spaces; criteria that are absent or normalize to empty contribute
// nothing. An empty selection yields an empty string.
func (s *Service) Build(sel domain.Selection) string {
	var parts []string

	if sel.Channel != "" {
		parts = append(parts, "in:#"+sel.Channel)
	}

	if user := strings.TrimSpace(sel.FromUser); user != "" {
		if !strings.HasPrefix(user, "@") {
			user = "@" + user
		}
		parts = append(parts, "from:"+user)
	}

	if op, ok := fileTypeOperators[sel.FileType]; ok {
		parts = append(parts, op)
	}

	if d := sel.Dates; d != nil && d.Enabled {
		if d.Mode == domain.DateModeDuring {
			if v, ok := resolveSlot(d.During); ok {
				parts = append(parts, "during:"+v)
			}
		} else {
			if v, ok := resolveSlot(d.Start); ok {
				parts = append(parts, "after:"+v)
			}
			if v, ok := resolveSlot(d.End); ok {
				parts = append(parts, "before:"+v)
			}
		}
	}

	if keywords := strings.TrimSpace(sel.Keywords); keywords != "" {
		parts = append(parts, keywords)
	}

	return strings.Join(parts, " ")
}

// resolveSlot renders one date slot. A nil slot or a calendar slot without a
// date contributes nothing. Unknown kinds and formats degrade to the
// calendar/full-date path so the builder never refuses to produce output.
func resolveSlot(slot *domain.DateSlot) (string, bool) {
	if slot == nil {
		return "", false
	}

	switch slot.Kind {
	case domain.DateKindToday:
		return "today", true
	case domain.DateKindYesterday:
		return "yesterday", true
	}

	if slot.Date.IsZero() {
		return "", false
	}

	switch slot.Format {
	case domain.DateFormatMonth:
		return slot.Date.Month().String(), true
	case domain.DateFormatYear:
		return slot.Date.Format("2006"), true
	default:
		if slot.WithTime {
			return slot.Date.Format("2006-01-02 15:04"), true
		}
		return slot.Date.Format("2006-01-02"), true
	}
}
