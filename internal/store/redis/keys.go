package redis

import "fmt"

const (
	// KeyPrefixOps is the prefix for per-operation counters
	KeyPrefixOps = "bookshelf:ops:"
	// KeyPrefixViews is the prefix for per-book detail view counters
	KeyPrefixViews = "bookshelf:views:"
)

// OpKey returns the Redis key for an operation counter
func OpKey(op Operation) string {
	return KeyPrefixOps + string(op)
}

// ViewsKey returns the Redis key for a book's view counter
func ViewsKey(bookID string) string {
	return KeyPrefixViews + bookID
}

// ExtractBookID extracts the book ID from a views key
func ExtractBookID(key string) (string, error) {
	if len(key) <= len(KeyPrefixViews) || key[:len(KeyPrefixViews)] != KeyPrefixViews {
		return "", fmt.Errorf("invalid views key: %s", key)
	}
	return key[len(KeyPrefixViews):], nil
}
