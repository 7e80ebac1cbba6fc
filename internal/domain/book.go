package domain

import "time"

// TimestampLayout is ISO-8601 in UTC with millisecond precision.
// Example: 2021-03-04T09:11:44.598Z
const TimestampLayout = "2006-01-02T15:04:05.000Z"

// Book is a single record on the shelf.
//
// It is owned by the in-memory index; handlers receive copies.
type Book struct {
	// ─────────────────────────────
	// Identity (immutable)
	// ─────────────────────────────

	// ID is generated on creation and never changes.
	ID string `json:"id"`

	// ─────────────────────────────
	// Client supplied
	// (replaced wholesale on update)
	// ─────────────────────────────

	Name      string `json:"name"`
	Year      Year   `json:"year"`
	Author    string `json:"author"`
	Summary   string `json:"summary"`
	Publisher string `json:"publisher"`
	PageCount int    `json:"pageCount"`
	ReadPage  int    `json:"readPage"`
	Reading   bool   `json:"reading"`

	// ─────────────────────────────
	// Derived
	// ─────────────────────────────

	// Finished is true iff ReadPage == PageCount.
	// It is recomputed on every write and never taken from the client.
	Finished bool `json:"finished"`

	// InsertedAt is stamped once on creation.
	InsertedAt string `json:"insertedAt"`

	// UpdatedAt is refreshed on every update.
	UpdatedAt string `json:"updatedAt"`
}

// BookSummary is the condensed view returned by list operations.
type BookSummary struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Publisher string `json:"publisher"`
}

// NewBook builds a record from a validated payload.
// InsertedAt and UpdatedAt are equal.
func NewBook(id string, p BookPayload, now time.Time) Book {
	ts := FormatTimestamp(now)
	b := Book{
		ID:         id,
		InsertedAt: ts,
		UpdatedAt:  ts,
	}
	b.assign(p)
	return b
}

// Apply merges a validated payload over b, leaving ID and InsertedAt untouched.
func (b *Book) Apply(p BookPayload, now time.Time) {
	b.assign(p)
	b.UpdatedAt = FormatTimestamp(now)
}

func (b *Book) assign(p BookPayload) {
	b.Name = p.Name
	b.Year = p.Year
	b.Author = p.Author
	b.Summary = p.Summary
	b.Publisher = p.Publisher
	b.PageCount = p.PageCount
	b.ReadPage = p.ReadPage
	b.Reading = p.Reading
	b.Finished = IsFinished(p.PageCount, p.ReadPage)
}

// Summarize returns the condensed projection of b.
func (b Book) Summarize() BookSummary {
	return BookSummary{ID: b.ID, Name: b.Name, Publisher: b.Publisher}
}

// IsFinished reports whether every page has been read.
func IsFinished(pageCount, readPage int) bool {
	return pageCount == readPage
}

// FormatTimestamp renders t in TimestampLayout.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}
