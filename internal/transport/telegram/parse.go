package telegram

import (
	"strconv"
	"strings"
	"time"

	"querywizard/internal/modules/query/domain"
)

// ParseSelection turns /query arguments into a filter selection. Arguments
// are either key=value filters (in, from, type, during, after, before) or
// bare words, which are collected as keywords. Unknown keys and unparseable
// values are ignored rather than rejected, matching the builder's
// best-effort contract.
func ParseSelection(args []string) domain.Selection {
	var sel domain.Selection
	var keywords []string

	for _, arg := range args {
		key, value, found := strings.Cut(arg, "=")
		if !found || value == "" {
			keywords = append(keywords, arg)
			continue
		}

		switch strings.ToLower(key) {
		case "in":
			sel.Channel = strings.TrimPrefix(value, "#")
		case "from":
			sel.FromUser = value
		case "type":
			if ft, err := domain.ParseFileType(value); err == nil {
				sel.FileType = ft
			}
		case "during":
			if slot := parseDateSlot(value); slot != nil {
				dates(&sel).Mode = domain.DateModeDuring
				dates(&sel).During = slot
			}
		case "after":
			if slot := parseDateSlot(value); slot != nil {
				dates(&sel).Mode = domain.DateModeRange
				dates(&sel).Start = slot
			}
		case "before":
			if slot := parseDateSlot(value); slot != nil {
				dates(&sel).Mode = domain.DateModeRange
				dates(&sel).End = slot
			}
		default:
			keywords = append(keywords, arg)
		}
	}

	sel.Keywords = strings.Join(keywords, " ")
	return sel
}

func dates(sel *domain.Selection) *domain.DateFilter {
	if sel.Dates == nil {
		sel.Dates = &domain.DateFilter{Enabled: true}
	}
	return sel.Dates
}

// parseDateSlot accepts "today", "yesterday", an ISO date, an English month
// name, or a four-digit year. Anything else yields nil.
func parseDateSlot(value string) *domain.DateSlot {
	switch strings.ToLower(value) {
	case "today":
		return domain.Today()
	case "yesterday":
		return domain.Yesterday()
	}

	if date, err := time.Parse("2006-01-02", value); err == nil {
		return domain.Calendar(date, domain.DateFormatFullDate)
	}

	if month, err := time.Parse("January", value); err == nil {
		return domain.Calendar(month, domain.DateFormatMonth)
	}

	if len(value) == 4 {
		if year, err := strconv.Atoi(value); err == nil {
			return domain.Calendar(time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC), domain.DateFormatYear)
		}
	}

	return nil
}
