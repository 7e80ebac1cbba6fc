package index

import (
	"sync"
	"time"

	"github.com/MrSnakeDoc/bookshelf/internal/domain"
)

// BookIndex holds the shelf in memory, in insertion order.
// Nothing is persisted; the index starts empty on every process start.
type BookIndex struct {
	mu         sync.RWMutex
	books      []domain.Book
	lastChange time.Time // Timestamp of last mutation
}

// NewBookIndex creates an empty index
func NewBookIndex() *BookIndex {
	return &BookIndex{
		books: make([]domain.Book, 0, 16),
	}
}

// Append adds a book at the end of the shelf
func (idx *BookIndex) Append(book domain.Book) {
	idx.mu.Lock()
	defer idx.mu.Unlock()

	idx.books = append(idx.books, book)
	idx.lastChange = time.Now()
}

// List returns a snapshot of all books in insertion order
func (idx *BookIndex) List() []domain.Book {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	books := make([]domain.Book, len(idx.books))
	copy(books, idx.books)
	return books
}

// FindByID retrieves a book by ID
func (idx *BookIndex) FindByID(id string) (domain.Book, bool) {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	i := idx.indexOfLocked(id)
	if i < 0 {
		return domain.Book{}, false
	}
	return idx.books[i], true
}

// FindIndexByID returns the position of the book, or -1
func (idx *BookIndex) FindIndexByID(id string) int {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	return idx.indexOfLocked(id)
}

// RemoveAt deletes the book at position i, keeping the order of the rest
func (idx *BookIndex) RemoveAt(i int) bool {
	idx.mu.Lock()
	defer idx.mu.Unlock()

	return idx.removeAtLocked(i)
}

// ReplaceAt overwrites the book at position i
func (idx *BookIndex) ReplaceAt(i int, book domain.Book) bool {
	idx.mu.Lock()
	defer idx.mu.Unlock()

	if i < 0 || i >= len(idx.books) {
		return false
	}
	idx.books[i] = book
	idx.lastChange = time.Now()
	return true
}

// Update applies fn to the stored book under the write lock and returns the result.
// fn must not change the ID.
func (idx *BookIndex) Update(id string, fn func(*domain.Book)) (domain.Book, bool) {
	idx.mu.Lock()
	defer idx.mu.Unlock()

	i := idx.indexOfLocked(id)
	if i < 0 {
		return domain.Book{}, false
	}
	fn(&idx.books[i])
	idx.lastChange = time.Now()
	return idx.books[i], true
}

// Delete removes the book with the given ID and returns it
func (idx *BookIndex) Delete(id string) (domain.Book, bool) {
	idx.mu.Lock()
	defer idx.mu.Unlock()

	i := idx.indexOfLocked(id)
	if i < 0 {
		return domain.Book{}, false
	}
	book := idx.books[i]
	idx.removeAtLocked(i)
	return book, true
}

// Count returns the number of books on the shelf
func (idx *BookIndex) Count() int {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	return len(idx.books)
}

// Reset empties the shelf
func (idx *BookIndex) Reset() {
	idx.mu.Lock()
	defer idx.mu.Unlock()

	idx.books = idx.books[:0]
	idx.lastChange = time.Now()
}

// GetLastChange returns the timestamp of the last mutation
func (idx *BookIndex) GetLastChange() time.Time {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	return idx.lastChange
}

func (idx *BookIndex) indexOfLocked(id string) int {
	for i := range idx.books {
		if idx.books[i].ID == id {
			return i
		}
	}
	return -1
}

func (idx *BookIndex) removeAtLocked(i int) bool {
	if i < 0 || i >= len(idx.books) {
		return false
	}
	idx.books = append(idx.books[:i], idx.books[i+1:]...)
	idx.lastChange = time.Now()
	return true
}
