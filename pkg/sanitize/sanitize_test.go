package sanitize

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestText(t *testing.T) {
	cases := map[string]struct {
		in        string
		maxLength int
		want      string
	}{
		"plain text":          {"Mario Rossi", 0, "Mario Rossi"},
		"trims whitespace":    {"  ciao  ", 0, "ciao"},
		"escapes markup":      {"<script>x</script>", 0, "&lt;script&gt;x&lt;/script&gt;"},
		"escapes quotes":      {`l'amico "Gigi"`, 0, "l&#39;amico &#34;Gigi&#34;"},
		"strips control":      {"riga\x00uno\x1f", 0, "rigauno"},
		"strips del and c1":   {"a\x7fbc", 0, "abc"},
		"truncates runes":     {"абвгде", 4, "абвг"},
		"no limit when zero":  {strings.Repeat("a", 1000), 0, strings.Repeat("a", 1000)},
		"empty":               {"", 0, ""},
		"whitespace only":     {" \t\n ", 0, ""},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.want, Text(tc.in, tc.maxLength))
		})
	}
}
