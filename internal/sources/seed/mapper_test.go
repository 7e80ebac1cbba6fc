package seed

import (
	"fmt"
	"testing"
	"time"

	"github.com/MrSnakeDoc/bookshelf/internal/domain"
	"github.com/MrSnakeDoc/bookshelf/internal/index"
	"github.com/MrSnakeDoc/bookshelf/internal/logger"
)

func TestSeederApply(t *testing.T) {
	books := index.NewBookIndex()
	n := 0
	newID := func() string {
		n++
		return fmt.Sprintf("seed-%d", n)
	}
	now := func() time.Time { return time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC) }

	file := File{Books: []Entry{
		{Name: "Finished", PageCount: 100, ReadPage: 100},
		{Name: "", PageCount: 10, ReadPage: 1},
		{Name: "Overread", PageCount: 10, ReadPage: 11},
		{Name: "In progress", PageCount: 300, ReadPage: 20, Reading: true},
	}}

	added := NewSeeder(books, newID, now, logger.NewNop()).Apply(file)

	if added != 2 {
		t.Fatalf("Apply() added %v, want 2", added)
	}

	list := books.List()
	if len(list) != 2 {
		t.Fatalf("index holds %v books, want 2", len(list))
	}
	if list[0].Name != "Finished" || !list[0].Finished {
		t.Errorf("first seeded book = %+v, want finished", list[0])
	}
	if list[1].Name != "In progress" || list[1].Finished {
		t.Errorf("second seeded book = %+v, want unfinished", list[1])
	}
	if list[0].InsertedAt != "2024-01-02T03:04:05.000Z" {
		t.Errorf("insertedAt = %v", list[0].InsertedAt)
	}
}

func TestEntryPayload(t *testing.T) {
	e := Entry{Name: "n", Year: "1999", Author: "a", Summary: "s", Publisher: "p", PageCount: 5, ReadPage: 2, Reading: true}
	p := e.Payload()

	if p.Name != "n" || p.Year != domain.YearOf(1999) || p.Author != "a" || p.Summary != "s" ||
		p.Publisher != "p" || p.PageCount != 5 || p.ReadPage != 2 || !p.Reading {
		t.Errorf("Payload() = %+v", p)
	}
}
