package convert

import (
	"io"

	"github.com/texnlp/sexpr/corpusio"
)

// Format re-encodes a tagged corpus, e.g. tab to pipe (C&C) and back.
func Format(w io.Writer, r io.Reader, from, to corpusio.Format) (Stats, error) {
	var stats Stats
	sr, err := corpusio.NewSentenceReader(from, r)
	if err != nil {
		return stats, err
	}
	sents, err := corpusio.ReadAll(sr)
	if err != nil {
		return stats, err
	}
	for _, s := range sents {
		stats.Sentences++
		stats.Tokens += len(s)
	}
	if err := corpusio.Write(w, to, sents); err != nil {
		return stats, err
	}
	stats.log(string(from) + " to " + string(to))
	return stats, nil
}
