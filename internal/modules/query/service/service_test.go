package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"querywizard/internal/modules/query/domain"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestBuildEmptySelection(t *testing.T) {
	svc := New()
	assert.Equal(t, "", svc.Build(domain.Selection{}))
}

func TestBuildTokenOrdering(t *testing.T) {
	svc := New()
	sel := domain.Selection{
		Channel:  "eng",
		FromUser: "bob",
		FileType: domain.FileTypePDF,
		Keywords: "deploy",
	}
	assert.Equal(t, "in:#eng from:@bob has:pdf deploy", svc.Build(sel))
}

func TestBuildIsPure(t *testing.T) {
	svc := New()
	sel := domain.Selection{
		Channel:  "eng",
		FromUser: "bob",
		Dates: &domain.DateFilter{
			Enabled: true,
			Mode:    domain.DateModeDuring,
			During:  domain.Today(),
		},
	}
	assert.Equal(t, svc.Build(sel), svc.Build(sel))
}

func TestBuildFromUser(t *testing.T) {
	svc := New()

	tests := []struct {
		name string
		user string
		want string
	}{
		{name: "bare name gets prefix", user: "bob", want: "from:@bob"},
		{name: "existing prefix kept", user: "@bob", want: "from:@bob"},
		{name: "surrounding whitespace trimmed", user: "  bob  ", want: "from:@bob"},
		{name: "whitespace only yields nothing", user: "   ", want: ""},
		{name: "empty yields nothing", user: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, svc.Build(domain.Selection{FromUser: tt.user}))
		})
	}
}

func TestBuildFileTypes(t *testing.T) {
	svc := New()

	tests := []struct {
		fileType domain.FileType
		want     string
	}{
		{fileType: domain.FileTypePDF, want: "has:pdf"},
		{fileType: domain.FileTypeImage, want: "has:image"},
		{fileType: domain.FileTypeSnippet, want: "has:snippet"},
		{fileType: domain.FileTypeGDoc, want: "has:gdoc"},
		{fileType: domain.FileTypeSpreadsheet, want: "has:spreadsheet"},
		{fileType: "", want: ""},
		{fileType: "word-document", want: ""},
	}

	for _, tt := range tests {
		t.Run(string(tt.fileType), func(t *testing.T) {
			assert.Equal(t, tt.want, svc.Build(domain.Selection{FileType: tt.fileType}))
		})
	}
}

func TestBuildDuringToday(t *testing.T) {
	svc := New()
	sel := domain.Selection{
		Dates: &domain.DateFilter{
			Enabled: true,
			Mode:    domain.DateModeDuring,
			During:  domain.Today(),
		},
	}
	assert.Equal(t, "during:today", svc.Build(sel))
}

func TestBuildDuringYesterday(t *testing.T) {
	svc := New()
	sel := domain.Selection{
		Dates: &domain.DateFilter{
			Enabled: true,
			Mode:    domain.DateModeDuring,
			During:  domain.Yesterday(),
		},
	}
	assert.Equal(t, "during:yesterday", svc.Build(sel))
}

func TestBuildDateFormats(t *testing.T) {
	svc := New()

	tests := []struct {
		name string
		slot *domain.DateSlot
		want string
	}{
		{name: "full date", slot: domain.Calendar(date(2024, time.March, 5), domain.DateFormatFullDate), want: "during:2024-03-05"},
		{name: "month only", slot: domain.Calendar(date(2024, time.March, 5), domain.DateFormatMonth), want: "during:March"},
		{name: "year only", slot: domain.Calendar(date(2024, time.March, 5), domain.DateFormatYear), want: "during:2024"},
		{name: "unknown format falls back to full date", slot: domain.Calendar(date(2024, time.March, 5), "fiscal_quarter"), want: "during:2024-03-05"},
		{name: "with time of day", slot: domain.CalendarTime(time.Date(2024, time.March, 5, 9, 30, 0, 0, time.UTC)), want: "during:2024-03-05 09:30"},
		{name: "calendar without date yields nothing", slot: &domain.DateSlot{Kind: domain.DateKindCalendar}, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sel := domain.Selection{
				Dates: &domain.DateFilter{
					Enabled: true,
					Mode:    domain.DateModeDuring,
					During:  tt.slot,
				},
			}
			assert.Equal(t, tt.want, svc.Build(sel))
		})
	}
}

func TestBuildRange(t *testing.T) {
	svc := New()

	t.Run("both ends", func(t *testing.T) {
		sel := domain.Selection{
			Dates: &domain.DateFilter{
				Enabled: true,
				Mode:    domain.DateModeRange,
				Start:   domain.Calendar(date(2024, time.March, 1), domain.DateFormatFullDate),
				End:     domain.Calendar(date(2024, time.March, 31), domain.DateFormatFullDate),
			},
		}
		assert.Equal(t, "after:2024-03-01 before:2024-03-31", svc.Build(sel))
	})

	t.Run("only end set month format", func(t *testing.T) {
		sel := domain.Selection{
			Dates: &domain.DateFilter{
				Enabled: true,
				Mode:    domain.DateModeRange,
				End:     domain.Calendar(date(2024, time.March, 1), domain.DateFormatMonth),
			},
		}
		assert.Equal(t, "before:March", svc.Build(sel))
	})

	t.Run("only start set", func(t *testing.T) {
		sel := domain.Selection{
			Dates: &domain.DateFilter{
				Enabled: true,
				Mode:    domain.DateModeRange,
				Start:   domain.Yesterday(),
			},
		}
		assert.Equal(t, "after:yesterday", svc.Build(sel))
	})
}

func TestBuildDisabledDateFilterSuppressesTokens(t *testing.T) {
	svc := New()
	sel := domain.Selection{
		Dates: &domain.DateFilter{
			Enabled: false,
			Mode:    domain.DateModeRange,
			Start:   domain.Calendar(date(2024, time.March, 5), domain.DateFormatFullDate),
			End:     domain.Today(),
		},
	}
	assert.Equal(t, "", svc.Build(sel))
}

func TestBuildDuringModeIgnoresRangeSlots(t *testing.T) {
	svc := New()
	sel := domain.Selection{
		Dates: &domain.DateFilter{
			Enabled: true,
			Mode:    domain.DateModeDuring,
			During:  domain.Today(),
			Start:   domain.Calendar(date(2024, time.March, 5), domain.DateFormatFullDate),
			End:     domain.Yesterday(),
		},
	}
	assert.Equal(t, "during:today", svc.Build(sel))
}

func TestBuildRangeModeIgnoresDuringSlot(t *testing.T) {
	svc := New()
	sel := domain.Selection{
		Dates: &domain.DateFilter{
			Enabled: true,
			Mode:    domain.DateModeRange,
			During:  domain.Today(),
			Start:   domain.Yesterday(),
		},
	}
	assert.Equal(t, "after:yesterday", svc.Build(sel))
}

func TestBuildKeywordsTrimmedVerbatim(t *testing.T) {
	svc := New()
	assert.Equal(t, "deploy error", svc.Build(domain.Selection{Keywords: "  deploy error  "}))
	assert.Equal(t, "", svc.Build(domain.Selection{Keywords: "   "}))
}

func TestBuildChannelIsNotValidated(t *testing.T) {
	// Channel existence is the form's concern; any string is rendered.
	svc := New()
	assert.Equal(t, "in:#not a real channel", svc.Build(domain.Selection{Channel: "not a real channel"}))
}
