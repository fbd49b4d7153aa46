package domain

import "time"

// Selection is one immutable snapshot of the search form: every field the
// user can set, captured at the moment a query is built. Zero values mean
// "not selected".
type Selection struct {
	Channel  string      `json:"channel,omitempty"`
	FromUser string      `json:"from_user,omitempty"`
	FileType FileType    `json:"file_type,omitempty"`
	Dates    *DateFilter `json:"dates,omitempty"`
	Keywords string      `json:"keywords,omitempty"`
}

// DateFilter gates the date section of a selection. When Enabled is false no
// date token is produced, regardless of how the slots are populated. DURING
// mode reads only During; RANGE mode reads only Start and End.
type DateFilter struct {
	Enabled bool      `json:"enabled"`
	Mode    DateMode  `json:"mode"`
	During  *DateSlot `json:"during,omitempty"`
	Start   *DateSlot `json:"start,omitempty"`
	End     *DateSlot `json:"end,omitempty"`
}

// DateSlot is one date selection, tagged with exactly one of the three kinds.
// Date, Format and WithTime are meaningful only for DateKindCalendar; the
// today and yesterday kinds resolve to literal words and carry no value, so a
// slot can never claim to be two things at once.
type DateSlot struct {
	Kind     DateKind   `json:"kind"`
	Date     time.Time  `json:"date,omitzero"`
	Format   DateFormat `json:"format,omitempty"`
	WithTime bool       `json:"with_time,omitempty"`
}

// Today returns a slot resolving to the literal word "today".
func Today() *DateSlot {
	return &DateSlot{Kind: DateKindToday}
}

// Yesterday returns a slot resolving to the literal word "yesterday".
func Yesterday() *DateSlot {
	return &DateSlot{Kind: DateKindYesterday}
}

// Calendar returns a slot holding a concrete date rendered per format.
func Calendar(date time.Time, format DateFormat) *DateSlot {
	return &DateSlot{Kind: DateKindCalendar, Date: date, Format: format}
}

// CalendarTime returns a full-date slot that also renders the clock time
// carried by date.
func CalendarTime(date time.Time) *DateSlot {
	return &DateSlot{Kind: DateKindCalendar, Date: date, Format: DateFormatFullDate, WithTime: true}
}
