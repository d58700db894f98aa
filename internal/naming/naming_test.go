package naming

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDisplayName(t *testing.T) {
	at := time.Date(2026, 8, 27, 14, 30, 5, 0, time.UTC)

	name := DisplayName("Canonical Ubuntu", "22.04", at)

	assert.Regexp(t, regexp.MustCompile(`^canonical-ubuntu-2204-20260827-143005-[0-9a-f]{8}$`), name)
}

func TestDisplayName_Unique(t *testing.T) {
	at := time.Now()
	a := DisplayName("Oracle Linux", "9", at)
	b := DisplayName("Oracle Linux", "9", at)
	assert.NotEqual(t, a, b)
}

func TestSlug(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Canonical Ubuntu", "canonical-ubuntu"},
		{"Oracle Linux", "oracle-linux"},
		{"  spaced  out  ", "spaced-out"},
		{"9", "9"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, slug(tt.in), "slug(%q)", tt.in)
	}
}

func TestCompact(t *testing.T) {
	assert.Equal(t, "2204", compact("22.04"))
	assert.Equal(t, "9", compact("9"))
	assert.Equal(t, "20231", compact("2023.1"))
}
