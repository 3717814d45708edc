package sanitization

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeString(t *testing.T) {
	t.Run("neutralizes script tags", func(t *testing.T) {
		out := SanitizeString("<script>alert(1)</script>")
		assert.Contains(t, out, "&lt;script&gt;")
		assert.NotContains(t, out, "<script>")
	})

	t.Run("preserves plain text", func(t *testing.T) {
		assert.Equal(t, "test message", SanitizeString("test message"))
	})

	t.Run("preserves text adjacent to markup", func(t *testing.T) {
		out := SanitizeString("hello <b>world</b> goodbye")
		assert.True(t, strings.HasPrefix(out, "hello "))
		assert.True(t, strings.HasSuffix(out, " goodbye"))
		assert.NotContains(t, out, "<b>")
	})

	t.Run("escapes quotes and ampersands", func(t *testing.T) {
		assert.Equal(t, "&quot;a&quot; &amp; &#39;b&#39;", SanitizeString(`"a" & 'b'`))
	})

	t.Run("trims surrounding whitespace", func(t *testing.T) {
		assert.Equal(t, "abc", SanitizeString("  abc  "))
	})
}

func TestSanitizeEmail(t *testing.T) {
	assert.Equal(t, "john@example.com", SanitizeEmail("  John@Example.COM "))
	assert.Equal(t, "a&lt;b@example.com", SanitizeEmail("a<b@example.com"))
}

func TestSanitizeFields(t *testing.T) {
	fields := map[string]string{
		"name":    "Jane",
		"message": "<img src=x onerror=alert(1)>",
	}
	out := SanitizeFields(fields)
	assert.Equal(t, "Jane", out["name"])
	assert.NotContains(t, out["message"], "<img")
	assert.Len(t, out, 2)
}
