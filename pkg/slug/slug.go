package slug

import (
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"
)

// Make converts a human-readable string into a URL-safe slug: lowercase,
// runs of non-alphanumeric characters collapsed to a single hyphen.
func Make(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	prevHyphen := false
	for _, r := range strings.ToLower(s) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
			prevHyphen = false
		default:
			if !prevHyphen && b.Len() > 0 {
				b.WriteByte('-')
				prevHyphen = true
			}
		}
	}
	return strings.Trim(b.String(), "-")
}

// ForVacancy builds a vacancy slug from the title and the owning company name.
// The current date plus an 8-character random token makes collisions
// negligible without a read-check-write loop; the slug is an opaque URL key,
// not a business identifier.
func ForVacancy(title, companyName string) string {
	base := Make(title + "-" + companyName)
	today := time.Now().Format("20060102")
	token := uuid.NewString()[:8]
	return fmt.Sprintf("%s-%s-%s", base, today, token)
}

// ForProfile builds a profile slug from a display name (username or company
// name) and the numeric account id, matching the name-id uniqueness policy.
func ForProfile(name string, id int64) string {
	return Make(fmt.Sprintf("%s-%d", name, id))
}
