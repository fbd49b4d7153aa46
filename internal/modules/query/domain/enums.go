//go:generate go run github.com/abice/go-enum --file=$GOFILE --names --nocase

package domain

// FileType represents the attachment type a query filters on
// ENUM(PDF,Image,Snippet,GDoc,Spreadsheet)
type FileType string

// DateMode selects between a single-day filter and an open range
// ENUM(during,range)
type DateMode string

// DateKind tags how a date slot resolves its value
// ENUM(today,yesterday,calendar)
type DateKind string

// DateFormat selects how a calendar date slot is rendered
// ENUM(full_date,month,year)
type DateFormat string
