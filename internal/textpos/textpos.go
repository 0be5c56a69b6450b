// Package textpos maps byte offsets in a text buffer to human-readable
// line/column positions for error reporting.
package textpos

// Locate returns the 1-based line and column of byte offset off in b.
// Columns count bytes, matching how most editors report JSON positions.
// Offsets past the end of b locate the position just after the last byte.
func Locate(b []byte, off int64) (line, col int) {
	if off > int64(len(b)) {
		off = int64(len(b))
	}
	line, col = 1, 1
	for i := int64(0); i < off; i++ {
		if b[i] == '\n' {
			line++
			col = 1
			continue
		}
		col++
	}
	return line, col
}
