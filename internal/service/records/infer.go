package records

import (
	"path"
	"strings"
	"time"

	"github.com/heartmarshall/ranch-records/internal/domain"
)

// keySeparator splits the millisecond timestamp from the original name in a
// blob key.
const keySeparator = "-"

// OriginalName recovers the display file name from a blob key of the form
// "<prefix><millis>-<name_with_underscores>". ok is false when the key does
// not follow that convention.
func OriginalName(key string) (name string, ok bool) {
	base := path.Base(key)
	i := strings.Index(base, keySeparator)
	if i < 0 {
		return "", false
	}
	return strings.ReplaceAll(base[i+1:], "_", " "), true
}

// InferTitle turns a file name into a display title: the extension is
// dropped, underscores and hyphens become spaces, and every word starts with
// an upper-case letter.
func InferTitle(fileName string) string {
	ext := path.Ext(fileName)
	stem := fileName[:len(fileName)-len(ext)]
	stem = strings.NewReplacer("_", " ", "-", " ").Replace(stem)

	b := []byte(stem)
	prevWord := false
	for i, c := range b {
		word := isWordByte(c)
		if word && !prevWord && 'a' <= c && c <= 'z' {
			b[i] = c - ('a' - 'A')
		}
		prevWord = word
	}
	return string(b)
}

func isWordByte(c byte) bool {
	return c == '_' || ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z') || ('0' <= c && c <= '9')
}

// InferType guesses a record category from keywords in the file name.
// PDFs default to other, Word documents default to agreement, and every
// other extension is other.
func InferType(fileName string) domain.RecordType {
	lower := strings.ToLower(fileName)

	switch path.Ext(lower) {
	case ".pdf":
		switch {
		case strings.Contains(lower, "financial"):
			return domain.RecordTypeFinancial
		case strings.Contains(lower, "minutes"):
			return domain.RecordTypeMinutes
		case strings.Contains(lower, "map"):
			return domain.RecordTypeMap
		case strings.Contains(lower, "schedule"):
			return domain.RecordTypeSchedule
		case strings.Contains(lower, "agreement"), strings.Contains(lower, "bylaw"):
			return domain.RecordTypeAgreement
		}
		return domain.RecordTypeOther
	case ".doc", ".docx":
		switch {
		case strings.Contains(lower, "bylaw"):
			return domain.RecordTypeBylaw
		case strings.Contains(lower, "minutes"):
			return domain.RecordTypeMinutes
		}
		return domain.RecordTypeAgreement
	}
	return domain.RecordTypeOther
}

// uploadDescription is the description given to records discovered in the
// object store.
func uploadDescription(created time.Time) string {
	return "Uploaded on " + created.Format("1/2/2006")
}
