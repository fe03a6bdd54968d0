// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package acquire

import (
	"strings"

	"github.com/pdiddy/gene-summarizer/pkg/types"
)

// FilterSections concatenates the text of every passage whose section type is
// in allowed, comparing case-insensitively. Each kept passage is followed by
// a newline and source order is preserved. Passages without text contribute
// nothing; an empty document yields "".
func FilterSections(doc types.Document, allowed []string) string {
	keep := make(map[string]bool, len(allowed))
	for _, s := range allowed {
		keep[strings.ToUpper(s)] = true
	}

	var b strings.Builder
	for _, p := range doc.Passages {
		if p.Text == nil || !keep[strings.ToUpper(p.Section)] {
			continue
		}
		b.WriteString(*p.Text)
		b.WriteByte('\n')
	}
	return b.String()
}
