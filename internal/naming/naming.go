// Package naming provides naming conventions for launched instances.
package naming

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// DisplayName generates a default instance display name from the OS name,
// version, and launch time, with a short random suffix so repeated
// launches on the same second stay distinguishable.
//
// Example: ("Canonical Ubuntu", "22.04") yields
// canonical-ubuntu-2204-20260827-143005-1a2b3c4d.
func DisplayName(operatingSystem, version string, now time.Time) string {
	return fmt.Sprintf("%s-%s-%s-%s",
		slug(operatingSystem),
		compact(version),
		now.UTC().Format("20060102-150405"),
		uuid.NewString()[:8],
	)
}

// slug lowercases a value and squeezes every run of non-alphanumeric
// characters into a single hyphen.
func slug(s string) string {
	var b strings.Builder
	lastHyphen := true // trims leading separators
	for _, r := range strings.ToLower(s) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		default:
			if !lastHyphen {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}

// compact lowercases a value and drops everything that is not
// alphanumeric, so version strings like "22.04" become "2204".
func compact(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		if r >= 'a' && r <= 'z' || r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
