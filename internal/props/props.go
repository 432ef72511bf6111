// Package props extracts the flat `key:: value` metadata block from the
// head of a note document. Parsing is deliberately permissive: unrecognized
// keys pass through untouched and a note without a block is not an error.
package props

import (
	"regexp"
	"strings"
)

var propLine = regexp.MustCompile(`^([\w][\w_-]*)::[ \t]*(.*)$`)

// Block is the parsed head of a note: its raw properties and the body text
// that follows them.
type Block struct {
	// Props maps property key to raw string value. Keys are case-sensitive;
	// downstream validation decides what is required or known.
	Props map[string]string

	// Body is the note text after the property block (the full text when the
	// note has no block).
	Body string
}

// Parse recognizes a leading contiguous run of `key:: value` lines and
// returns the mapping plus the remaining body. A duplicated key keeps the
// last value, matching the note tool's own serialization behavior.
func Parse(text string) Block {
	block := Block{Props: map[string]string{}}

	rest := text
	for rest != "" {
		line, tail := nextLine(rest)
		m := propLine.FindStringSubmatch(strings.TrimSpace(line))
		if m == nil {
			break
		}
		block.Props[m[1]] = strings.TrimSpace(m[2])
		rest = tail
	}

	// Blank lines between the block and the body are block padding.
	block.Body = strings.TrimLeft(rest, "\n")
	return block
}

func nextLine(s string) (line, rest string) {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return strings.TrimSuffix(s[:i], "\r"), s[i+1:]
	}
	return s, ""
}
