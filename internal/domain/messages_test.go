package domain

import "testing"

func TestNewMessagesLocale(t *testing.T) {
	tests := []struct {
		input    string
		expected Locale
	}{
		{"en", LocaleEnglish},
		{"id", LocaleIndonesian},
		{" ID ", LocaleIndonesian},
		{"", LocaleEnglish},
		{"fr", LocaleEnglish},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := NewMessages(tt.input).Locale(); got != tt.expected {
				t.Errorf("NewMessages(%q).Locale() = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestCatalogsAreComplete(t *testing.T) {
	for key := range catalogs[LocaleEnglish] {
		for locale, catalog := range catalogs {
			if catalog[key] == "" {
				t.Errorf("locale %v missing message %v", locale, key)
			}
		}
	}
}

func TestForValidation(t *testing.T) {
	en := NewMessages("en")
	id := NewMessages("id")

	tests := []struct {
		name     string
		msgs     Messages
		err      *ValidationError
		expected string
	}{
		{
			name:     "add missing name",
			msgs:     en,
			err:      &ValidationError{Action: ActionAdd, Reason: ReasonMissingName},
			expected: "failed to add book: must supply book name",
		},
		{
			name:     "update read page",
			msgs:     en,
			err:      &ValidationError{Action: ActionUpdate, Reason: ReasonReadPageExceedsPageCount},
			expected: "failed to update book: readPage must not exceed pageCount",
		},
		{
			name:     "indonesian add missing name",
			msgs:     id,
			err:      &ValidationError{Action: ActionAdd, Reason: ReasonMissingName},
			expected: "Gagal menambahkan buku. Mohon isi nama buku",
		},
		{
			name:     "invalid body",
			msgs:     en,
			err:      &ValidationError{Action: ActionUpdate, Reason: ReasonInvalidBody},
			expected: "failed to update book: invalid request body",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.msgs.ForValidation(tt.err); got != tt.expected {
				t.Errorf("ForValidation() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestNotFoundMessages(t *testing.T) {
	var m Messages // zero value speaks English

	if got := m.NotFound(ActionGet); got != "book not found" {
		t.Errorf("NotFound(get) = %q", got)
	}
	if got := m.NotFound(ActionUpdate); got != "failed to update book: id not found" {
		t.Errorf("NotFound(update) = %q", got)
	}
	if got := m.NotFound(ActionDelete); got != "failed to delete book: id not found" {
		t.Errorf("NotFound(delete) = %q", got)
	}
	if got := m.Failed(ActionAdd); got != "failed to add book" {
		t.Errorf("Failed(add) = %q", got)
	}
}
