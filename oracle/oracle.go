// Package oracle implements the most frequent tag baseline. Each known
// word gets the most frequent of its dictionary tags, unknown words
// get the tag most frequent overall.
package oracle

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/rs/zerolog/log"
	"github.com/texnlp/sexpr/corpusio"
	"github.com/texnlp/sexpr/tagdict"
)

const progressEachNth = 100000

type Tagger struct {
	dict     *tagdict.Dict
	counts   map[string]float64
	fallback string
}

// pickBest returns the tag with the highest count. Tags must be sorted,
// the first one wins on ties.
func pickBest(tags []string, counts map[string]float64) string {
	if len(tags) == 0 {
		return ""
	}
	ans := tags[0]
	for _, tag := range tags[1:] {
		if counts[tag] > counts[ans] {
			ans = tag
		}
	}
	return ans
}

// Train estimates tag frequencies from training sentences. Every token
// of a dictionary word adds 1/k to each of the word's k tags.
func Train(dict *tagdict.Dict, train corpusio.SentenceReader) (*Tagger, error) {
	counts := make(map[string]float64)
	var numTokens int
	for train.Next() {
		for _, tok := range train.Sentence() {
			numTokens++
			tags := dict.Tags(tok.Word())
			for _, tag := range tags {
				counts[tag] += 1.0 / float64(len(tags))
			}
		}
	}
	if err := train.Err(); err != nil {
		return nil, fmt.Errorf("failed to train oracle tagger: %w", err)
	}
	ans := &Tagger{
		dict:     dict,
		counts:   counts,
		fallback: pickBest(dict.Tagset(), counts),
	}
	log.Debug().
		Str("numTokens", humanize.Comma(int64(numTokens))).
		Str("fallbackTag", ans.fallback).
		Msg("trained oracle tagger")
	return ans, nil
}

// Tag returns the best tag for a word
func (t *Tagger) Tag(word string) string {
	tags := t.dict.Tags(word)
	if len(tags) == 0 {
		return t.fallback
	}
	return pickBest(tags, t.counts)
}

// Fallback is the tag used for unknown words
func (t *Tagger) Fallback() string {
	return t.fallback
}

// TagStream reads lines with the word in the first field and writes
// "word\ttag" lines. Blank lines are copied.
func (t *Tagger) TagStream(w io.Writer, r io.Reader) error {
	sc := bufio.NewScanner(r)
	bw := bufio.NewWriter(w)
	var numLines int
	for sc.Scan() {
		numLines++
		if numLines%progressEachNth == 0 {
			log.Info().Str("lines", humanize.Comma(int64(numLines))).Msg("tagging")
		}
		items := strings.Fields(sc.Text())
		var line string
		if len(items) > 0 {
			line = items[0] + "\t" + t.Tag(items[0])
		}
		if _, err := bw.WriteString(line + "\n"); err != nil {
			return fmt.Errorf("failed to write tagged output: %w", err)
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("failed to read test data: %w", err)
	}
	return bw.Flush()
}

// TagFiles trains the baseline from trainPath (tab format) and dictPath
// and tags testPath into w.
func TagFiles(w io.Writer, trainPath, dictPath, testPath string) error {
	dict, err := tagdict.LoadDictFile(dictPath)
	if err != nil {
		return err
	}
	train, err := corpusio.Open(trainPath)
	if err != nil {
		return err
	}
	defer train.Close()
	tagger, err := Train(dict, corpusio.NewTabReader(train))
	if err != nil {
		return err
	}
	test, err := corpusio.Open(testPath)
	if err != nil {
		return err
	}
	defer test.Close()
	return tagger.TagStream(w, test)
}
