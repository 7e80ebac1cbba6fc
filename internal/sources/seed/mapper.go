package seed

import (
	"time"

	"github.com/MrSnakeDoc/bookshelf/internal/domain"
	"github.com/MrSnakeDoc/bookshelf/internal/index"
	"github.com/MrSnakeDoc/bookshelf/internal/logger"
)

// Payload converts an entry to the create payload
func (e Entry) Payload() domain.BookPayload {
	return domain.BookPayload{
		Name:      e.Name,
		Year:      domain.YearText(e.Year),
		Author:    e.Author,
		Summary:   e.Summary,
		Publisher: e.Publisher,
		PageCount: e.PageCount,
		ReadPage:  e.ReadPage,
		Reading:   e.Reading,
	}
}

// Seeder appends seed entries to the shelf through the same rules as the create endpoint
type Seeder struct {
	books  *index.BookIndex
	newID  func() string
	now    func() time.Time
	logger logger.Logger
}

// NewSeeder creates a new seeder
func NewSeeder(books *index.BookIndex, newID func() string, now func() time.Time, log logger.Logger) *Seeder {
	return &Seeder{
		books:  books,
		newID:  newID,
		now:    now,
		logger: log,
	}
}

// Apply adds every valid entry and returns how many were added.
// Invalid entries are skipped with a warning.
func (s *Seeder) Apply(file File) int {
	added := 0
	for i, entry := range file.Books {
		payload := entry.Payload()
		if err := payload.Validate(domain.ActionAdd); err != nil {
			s.logger.Warn("skipping invalid seed entry",
				logger.Int("position", i),
				logger.String("name", entry.Name),
				logger.Error(err))
			continue
		}

		s.books.Append(domain.NewBook(s.newID(), payload, s.now()))
		added++
	}
	return added
}
