package domain

import (
	"errors"
	"testing"
	"time"
)

func TestBookPayloadValidate(t *testing.T) {
	tests := []struct {
		name       string
		payload    BookPayload
		action     Action
		wantReason Reason
	}{
		{
			name:    "valid payload",
			payload: BookPayload{Name: "Dune", PageCount: 412, ReadPage: 100},
			action:  ActionAdd,
		},
		{
			name:    "readPage equal to pageCount",
			payload: BookPayload{Name: "Dune", PageCount: 412, ReadPage: 412},
			action:  ActionAdd,
		},
		{
			name:       "missing name",
			payload:    BookPayload{PageCount: 10, ReadPage: 1},
			action:     ActionAdd,
			wantReason: ReasonMissingName,
		},
		{
			name:       "readPage exceeds pageCount",
			payload:    BookPayload{Name: "Dune", PageCount: 10, ReadPage: 11},
			action:     ActionUpdate,
			wantReason: ReasonReadPageExceedsPageCount,
		},
		{
			name:       "missing name is reported before readPage",
			payload:    BookPayload{PageCount: 10, ReadPage: 11},
			action:     ActionUpdate,
			wantReason: ReasonMissingName,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.payload.Validate(tt.action)
			if tt.wantReason == "" {
				if err != nil {
					t.Fatalf("Validate() = %v, want nil", err)
				}
				return
			}

			var vErr *ValidationError
			if !errors.As(err, &vErr) {
				t.Fatalf("Validate() = %v, want *ValidationError", err)
			}
			if vErr.Reason != tt.wantReason {
				t.Errorf("Validate() reason = %v, want %v", vErr.Reason, tt.wantReason)
			}
			if vErr.Action != tt.action {
				t.Errorf("Validate() action = %v, want %v", vErr.Action, tt.action)
			}
		})
	}
}

func TestNewBook(t *testing.T) {
	now := time.Date(2021, 3, 4, 9, 11, 44, 598_000_000, time.UTC)
	payload := BookPayload{
		Name:      "Buku A",
		Year:      YearOf(2010),
		Author:    "John Doe",
		Summary:   "Lorem ipsum",
		Publisher: "Dicoding",
		PageCount: 100,
		ReadPage:  100,
		Reading:   false,
	}

	b := NewBook("abc", payload, now)

	if b.ID != "abc" {
		t.Errorf("NewBook() id = %v, want abc", b.ID)
	}
	if !b.Finished {
		t.Error("NewBook() with readPage == pageCount should be finished")
	}
	if b.InsertedAt != "2021-03-04T09:11:44.598Z" {
		t.Errorf("NewBook() insertedAt = %v, want 2021-03-04T09:11:44.598Z", b.InsertedAt)
	}
	if b.InsertedAt != b.UpdatedAt {
		t.Errorf("NewBook() insertedAt %v != updatedAt %v", b.InsertedAt, b.UpdatedAt)
	}
	if b.Publisher != "Dicoding" || b.Year != YearOf(2010) || b.Author != "John Doe" {
		t.Errorf("NewBook() did not copy payload fields: %+v", b)
	}
}

func TestBookApply(t *testing.T) {
	created := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	updated := created.Add(time.Hour)

	b := NewBook("abc", BookPayload{Name: "Old", PageCount: 10, ReadPage: 10}, created)
	b.Apply(BookPayload{Name: "New", PageCount: 20, ReadPage: 5, Reading: true}, updated)

	if b.ID != "abc" {
		t.Errorf("Apply() changed id to %v", b.ID)
	}
	if b.InsertedAt != FormatTimestamp(created) {
		t.Errorf("Apply() changed insertedAt to %v", b.InsertedAt)
	}
	if b.UpdatedAt != FormatTimestamp(updated) {
		t.Errorf("Apply() updatedAt = %v, want %v", b.UpdatedAt, FormatTimestamp(updated))
	}
	if b.Finished {
		t.Error("Apply() should recompute finished to false")
	}
	if b.Name != "New" || !b.Reading {
		t.Errorf("Apply() did not merge payload: %+v", b)
	}
}

func TestFormatTimestampConvertsToUTC(t *testing.T) {
	loc := time.FixedZone("WIB", 7*60*60)
	ts := time.Date(2024, 5, 1, 7, 0, 0, 0, loc)

	if got := FormatTimestamp(ts); got != "2024-05-01T00:00:00.000Z" {
		t.Errorf("FormatTimestamp() = %v, want 2024-05-01T00:00:00.000Z", got)
	}
}

func TestNewBookIDUnique(t *testing.T) {
	seen := make(map[string]bool, 1000)
	for i := 0; i < 1000; i++ {
		id := NewBookID()
		if id == "" {
			t.Fatal("NewBookID() returned empty id")
		}
		if seen[id] {
			t.Fatalf("NewBookID() returned duplicate id %v", id)
		}
		seen[id] = true
	}
}
