package domain

import "strings"

// Locale selects the language of user facing messages.
type Locale string

const (
	LocaleEnglish    Locale = "en"
	LocaleIndonesian Locale = "id"
)

// MessageKey identifies a user facing message.
type MessageKey string

const (
	MsgAddSuccess            MessageKey = "add.success"
	MsgAddMissingName        MessageKey = "add.missing_name"
	MsgAddReadPageExceeds    MessageKey = "add.read_page_exceeds"
	MsgAddInvalidBody        MessageKey = "add.invalid_body"
	MsgAddFailed             MessageKey = "add.failed"
	MsgUpdateSuccess         MessageKey = "update.success"
	MsgUpdateMissingName     MessageKey = "update.missing_name"
	MsgUpdateReadPageExceeds MessageKey = "update.read_page_exceeds"
	MsgUpdateInvalidBody     MessageKey = "update.invalid_body"
	MsgUpdateNotFound        MessageKey = "update.not_found"
	MsgDeleteSuccess         MessageKey = "delete.success"
	MsgDeleteNotFound        MessageKey = "delete.not_found"
	MsgBookNotFound          MessageKey = "get.not_found"
	MsgPageNotFound          MessageKey = "page.not_found"
	MsgInternalError         MessageKey = "internal"
)

var catalogs = map[Locale]map[MessageKey]string{
	LocaleEnglish: {
		MsgAddSuccess:            "book added successfully",
		MsgAddMissingName:        "failed to add book: must supply book name",
		MsgAddReadPageExceeds:    "failed to add book: readPage must not exceed pageCount",
		MsgAddInvalidBody:        "failed to add book: invalid request body",
		MsgAddFailed:             "failed to add book",
		MsgUpdateSuccess:         "book updated successfully",
		MsgUpdateMissingName:     "failed to update book: must supply book name",
		MsgUpdateReadPageExceeds: "failed to update book: readPage must not exceed pageCount",
		MsgUpdateInvalidBody:     "failed to update book: invalid request body",
		MsgUpdateNotFound:        "failed to update book: id not found",
		MsgDeleteSuccess:         "book deleted successfully",
		MsgDeleteNotFound:        "failed to delete book: id not found",
		MsgBookNotFound:          "book not found",
		MsgPageNotFound:          "page not found",
		MsgInternalError:         "internal server error",
	},
	LocaleIndonesian: {
		MsgAddSuccess:            "Buku berhasil ditambahkan",
		MsgAddMissingName:        "Gagal menambahkan buku. Mohon isi nama buku",
		MsgAddReadPageExceeds:    "Gagal menambahkan buku. readPage tidak boleh lebih besar dari pageCount",
		MsgAddInvalidBody:        "Gagal menambahkan buku. Body permintaan tidak valid",
		MsgAddFailed:             "Buku gagal ditambahkan",
		MsgUpdateSuccess:         "Buku berhasil diperbarui",
		MsgUpdateMissingName:     "Gagal memperbarui buku. Mohon isi nama buku",
		MsgUpdateReadPageExceeds: "Gagal memperbarui buku. readPage tidak boleh lebih besar dari pageCount",
		MsgUpdateInvalidBody:     "Gagal memperbarui buku. Body permintaan tidak valid",
		MsgUpdateNotFound:        "Gagal memperbarui buku. Id tidak ditemukan",
		MsgDeleteSuccess:         "Buku berhasil dihapus",
		MsgDeleteNotFound:        "Buku gagal dihapus. Id tidak ditemukan",
		MsgBookNotFound:          "Buku tidak ditemukan",
		MsgPageNotFound:          "Halaman tidak ditemukan",
		MsgInternalError:         "Terjadi kesalahan pada server",
	},
}

// Messages resolves message keys for one locale.
type Messages struct {
	locale Locale
}

// NewMessages returns the catalogue for locale, falling back to English
// for unknown or empty values.
func NewMessages(locale string) Messages {
	l := Locale(strings.ToLower(strings.TrimSpace(locale)))
	if _, ok := catalogs[l]; !ok {
		l = LocaleEnglish
	}
	return Messages{locale: l}
}

// Locale returns the active locale.
func (m Messages) Locale() Locale {
	if m.locale == "" {
		return LocaleEnglish
	}
	return m.locale
}

// Text returns the message for key. The zero Messages speaks English.
func (m Messages) Text(key MessageKey) string {
	if msg, ok := catalogs[m.Locale()][key]; ok {
		return msg
	}
	return catalogs[LocaleEnglish][key]
}

// ForValidation returns the message describing err.
func (m Messages) ForValidation(err *ValidationError) string {
	return m.Text(validationKey(err.Action, err.Reason))
}

// NotFound returns the not-found message for action.
func (m Messages) NotFound(action Action) string {
	switch action {
	case ActionUpdate:
		return m.Text(MsgUpdateNotFound)
	case ActionDelete:
		return m.Text(MsgDeleteNotFound)
	default:
		return m.Text(MsgBookNotFound)
	}
}

// Failed returns the message for an unexpected server side failure.
func (m Messages) Failed(action Action) string {
	if action == ActionAdd {
		return m.Text(MsgAddFailed)
	}
	return m.Text(MsgInternalError)
}

func validationKey(action Action, reason Reason) MessageKey {
	update := action == ActionUpdate
	switch reason {
	case ReasonMissingName:
		if update {
			return MsgUpdateMissingName
		}
		return MsgAddMissingName
	case ReasonReadPageExceedsPageCount:
		if update {
			return MsgUpdateReadPageExceeds
		}
		return MsgAddReadPageExceeds
	default:
		if update {
			return MsgUpdateInvalidBody
		}
		return MsgAddInvalidBody
	}
}
