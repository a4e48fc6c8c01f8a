// Package convert turns annotated corpora (Penn Treebank, CCGbank,
// Gigaword newswire) into word/tag lists usable for tagger training.
package convert

import (
	"github.com/dustin/go-humanize"
	"github.com/rs/zerolog/log"
)

// Stats summarizes a conversion
type Stats struct {
	Sentences int `json:"sentences"`
	Tokens    int `json:"tokens"`
	Skipped   int `json:"skipped"`
}

func (s Stats) log(what string) {
	log.Info().
		Str("sentences", humanize.Comma(int64(s.Sentences))).
		Str("tokens", humanize.Comma(int64(s.Tokens))).
		Int("skipped", s.Skipped).
		Msgf("finished %s conversion", what)
}
