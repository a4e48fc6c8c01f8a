package corpusio

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// WriteTab writes sentences one token per line with tab separated
// fields, each sentence followed by a blank line.
func WriteTab(w io.Writer, sents []Sentence) error {
	bw := bufio.NewWriter(w)
	for _, sent := range sents {
		for _, tok := range sent {
			if _, err := bw.WriteString(strings.Join(tok, "\t") + "\n"); err != nil {
				return fmt.Errorf("failed to write tab corpus: %w", err)
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return fmt.Errorf("failed to write tab corpus: %w", err)
		}
	}
	return bw.Flush()
}

// FormatPipeLine encodes a sentence as a single C&C line (without newline).
func FormatPipeLine(sent Sentence) string {
	items := make([]string, len(sent))
	for i, tok := range sent {
		items[i] = strings.Join(tok, "|")
	}
	return strings.Join(items, " ")
}

// WritePipe writes sentences one per line in the C&C layout.
func WritePipe(w io.Writer, sents []Sentence) error {
	bw := bufio.NewWriter(w)
	for _, sent := range sents {
		if _, err := bw.WriteString(FormatPipeLine(sent) + "\n"); err != nil {
			return fmt.Errorf("failed to write pipe corpus: %w", err)
		}
	}
	return bw.Flush()
}

// Write encodes sentences using the given format. Only tab and pipe
// layouts are writable.
func Write(w io.Writer, format Format, sents []Sentence) error {
	switch format {
	case FormatTab:
		return WriteTab(w, sents)
	case FormatPipe:
		return WritePipe(w, sents)
	}
	return fmt.Errorf("%w: %s is not writable", ErrUnknownFormat, format)
}
