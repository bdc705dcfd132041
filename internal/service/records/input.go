package records

import (
	"fmt"
	"io"
	"strings"

	"github.com/heartmarshall/ranch-records/internal/domain"
)

const (
	maxTitleLength       = 200
	maxDescriptionLength = 5000
)

// allowedContentTypes lists the MIME types accepted for record uploads.
var allowedContentTypes = toSet(
	// documents
	"application/pdf",
	"application/msword",
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document",
	"application/vnd.ms-excel",
	"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
	"application/vnd.ms-powerpoint",
	"application/vnd.openxmlformats-officedocument.presentationml.presentation",
	"text/plain",

	// images
	"image/jpeg",
	"image/png",
	"image/gif",
	"image/bmp",
	"image/webp",
	"image/tiff",
)

func toSet(values ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return set
}

// ContentTypeAllowed reports whether a MIME type may be uploaded. Parameters
// such as "; charset=utf-8" are ignored.
func ContentTypeAllowed(contentType string) bool {
	mediaType, _, _ := strings.Cut(contentType, ";")
	_, ok := allowedContentTypes[strings.ToLower(strings.TrimSpace(mediaType))]
	return ok
}

// UploadInput holds a file and the metadata describing it.
type UploadInput struct {
	FileName    string
	ContentType string
	Size        int64
	Body        io.Reader

	Title       string
	Type        string
	Description string
	Visibility  string
}

// validateFile checks the file part. It runs before the metadata so a bad
// file is reported on its own.
func (i UploadInput) validateFile(maxBytes int64) error {
	if i.Body == nil || strings.TrimSpace(i.FileName) == "" {
		return domain.NewValidationError("file", "No file uploaded")
	}
	if !ContentTypeAllowed(i.ContentType) {
		return domain.NewValidationError("file", "Record file type not allowed. Allowed types: documents and images.")
	}
	if i.Size > maxBytes {
		return domain.NewValidationError("file", fmt.Sprintf("File exceeds the %d MB limit", maxBytes>>20))
	}
	return nil
}

// validateMetadata checks all metadata fields and collects all errors.
func (i UploadInput) validateMetadata() error {
	var errs []domain.FieldError

	title := strings.TrimSpace(i.Title)
	if title == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
	}
	if len(title) > maxTitleLength {
		errs = append(errs, domain.FieldError{Field: "title", Message: fmt.Sprintf("max %d characters", maxTitleLength)})
	}

	if !domain.RecordType(strings.TrimSpace(i.Type)).IsValid() {
		errs = append(errs, domain.FieldError{Field: "type", Message: "must be one of agreement, bylaw, financial, minutes, map, schedule, other"})
	}

	if len(i.Description) > maxDescriptionLength {
		errs = append(errs, domain.FieldError{Field: "description", Message: fmt.Sprintf("max %d characters", maxDescriptionLength)})
	}

	if v := strings.TrimSpace(i.Visibility); v != "" && !domain.Visibility(v).IsValid() {
		errs = append(errs, domain.FieldError{Field: "visibility", Message: "must be one of public, protected, admin"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// visibility returns the requested visibility, defaulting to public.
func (i UploadInput) visibility() domain.Visibility {
	if v := strings.TrimSpace(i.Visibility); v != "" {
		return domain.Visibility(v)
	}
	return domain.VisibilityPublic
}

// SanitizeFileName makes an uploaded file name safe to use in a blob key:
// any directory part is dropped and runs of whitespace become one underscore.
func SanitizeFileName(name string) string {
	name = strings.ReplaceAll(name, "\\", "/")
	if i := strings.LastIndex(name, "/"); i >= 0 {
		name = name[i+1:]
	}
	return strings.Join(strings.Fields(name), "_")
}
