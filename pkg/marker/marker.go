// Package marker renders caret-pointed diagnostics for byte-offset errors:
// the offending text on one line, then spaces up to the offset, a caret and
// the message.
package marker

import "strings"

// Format renders text with a caret under the given byte offset followed by
// message. Offsets outside the text are clamped to its bounds.
func Format(text string, offset int, message string) string {
	if offset < 0 {
		offset = 0
	}
	if offset > len(text) {
		offset = len(text)
	}

	var b strings.Builder
	b.Grow(len(text) + offset + len(message) + 3)
	b.WriteString(text)
	b.WriteByte('\n')
	for range offset {
		b.WriteByte(' ')
	}
	b.WriteString("^ ")
	b.WriteString(message)
	return b.String()
}
