package corpusio

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrUnknownFormat = errors.New("unknown corpus format")
	ErrMalformedLine = errors.New("malformed line")
)

// Format names a tagged corpus layout
type Format string

const (
	// FormatTab is one token per line with whitespace separated fields,
	// sentences end with a blank line (CoNLL-2000 like).
	FormatTab Format = "tab"

	// FormatPipe is the native C&C layout, one sentence per line,
	// tokens separated by spaces and fields by "|".
	FormatPipe Format = "pipe"

	// FormatHashSlash is one "word/tag" per line, sentences separated
	// by "###/###".
	FormatHashSlash Format = "hashslash"

	// FormatVert is a vertical file with <s> structures as sentences.
	FormatVert Format = "vert"
)

var formatAliases = map[string]Format{
	"tab":       FormatTab,
	"conll":     FormatTab,
	"pipe":      FormatPipe,
	"candc":     FormatPipe,
	"hashslash": FormatHashSlash,
	"vert":      FormatVert,
	"vertical":  FormatVert,
}

// ParseFormat resolves a format name (case insensitive)
func ParseFormat(name string) (Format, error) {
	if f, ok := formatAliases[strings.ToLower(strings.TrimSpace(name))]; ok {
		return f, nil
	}
	return "", fmt.Errorf("%w: %s", ErrUnknownFormat, name)
}
