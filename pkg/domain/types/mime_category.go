package types

import "strings"

// MimeCategory is the coarse classification of an uploaded file, derived
// from its content type for display and filtering
type MimeCategory string

const (
	MimeCategoryPDF         MimeCategory = "pdf"
	MimeCategoryImage       MimeCategory = "image"
	MimeCategoryDocument    MimeCategory = "document"
	MimeCategorySpreadsheet MimeCategory = "spreadsheet"
	MimeCategoryOther       MimeCategory = "other"
)

// AllMimeCategories returns all valid mime categories
func AllMimeCategories() []MimeCategory {
	return []MimeCategory{
		MimeCategoryPDF,
		MimeCategoryImage,
		MimeCategoryDocument,
		MimeCategorySpreadsheet,
		MimeCategoryOther,
	}
}

// IsValid checks if the mime category is valid
func (c MimeCategory) IsValid() bool {
	switch c {
	case MimeCategoryPDF,
		MimeCategoryImage,
		MimeCategoryDocument,
		MimeCategorySpreadsheet,
		MimeCategoryOther:
		return true
	default:
		return false
	}
}

// String returns the string representation of the mime category
func (c MimeCategory) String() string {
	return string(c)
}

// CategorizeMime maps a MIME content type to a MimeCategory
func CategorizeMime(contentType string) MimeCategory {
	ct := strings.ToLower(contentType)
	if i := strings.IndexByte(ct, ';'); i >= 0 {
		ct = strings.TrimSpace(ct[:i])
	}

	switch {
	case ct == "application/pdf":
		return MimeCategoryPDF
	case strings.HasPrefix(ct, "image/"):
		return MimeCategoryImage
	case strings.Contains(ct, "spreadsheet"), ct == "text/csv", strings.Contains(ct, "ms-excel"):
		return MimeCategorySpreadsheet
	case strings.HasPrefix(ct, "text/"), strings.Contains(ct, "word"), strings.Contains(ct, "document"):
		return MimeCategoryDocument
	default:
		return MimeCategoryOther
	}
}
