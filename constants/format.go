package constants

import "strings"

// DocumentFormats holds the allowed format values for ingest_jobs.format.
var DocumentFormats = []string{"PDF"}

// AcceptedContentTypes maps declared media types to a document format.
// Only PDF uploads are accepted today; everything else is rejected before
// any OCR call is made.
var AcceptedContentTypes = map[string]string{
	"application/pdf": "PDF",
}

// OCRLanguageHint is passed to the text-detection engine. Vendor budgets
// handled by the product are Brazilian Portuguese.
const OCRLanguageHint = "pt"

// MapContentTypeToFormat returns the canonical format for a declared media
// type, or "" when the type is not accepted.
func MapContentTypeToFormat(contentType string) string {
	ct := strings.ToLower(strings.TrimSpace(contentType))
	if i := strings.IndexByte(ct, ';'); i >= 0 {
		ct = strings.TrimSpace(ct[:i])
	}
	return AcceptedContentTypes[ct]
}
