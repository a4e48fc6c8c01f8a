package score

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/texnlp/sexpr/corpusio"
)

// SimpleResult holds the outcome of a positional comparison of
// two "word tag" files.
type SimpleResult struct {
	Words     Ratio
	Sentences Ratio

	// Errors contains all the (gold, model) confusions,
	// most frequent first
	Errors []ErrorCount
}

func readLines(r io.Reader) ([]string, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	ans := []string{}
	for sc.Scan() {
		ans = append(ans, strings.TrimSpace(sc.Text()))
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return ans, nil
}

func tagOf(line string, lineNum int) (string, error) {
	items := strings.Fields(line)
	if len(items) < 2 {
		return "", fmt.Errorf("%w: line %d: %q", ErrMalformedLine, lineNum, line)
	}
	return items[1], nil
}

// ScoreSimple compares gold and model tags line by line. A blank model
// line ends a sentence which is correct if all of its words are.
func ScoreSimple(gold, model io.Reader) (*SimpleResult, error) {
	goldLines, err := readLines(gold)
	if err != nil {
		return nil, fmt.Errorf("failed to read gold data: %w", err)
	}
	modelLines, err := readLines(model)
	if err != nil {
		return nil, fmt.Errorf("failed to read model data: %w", err)
	}

	var ans SimpleResult
	hist := make(errorHistogram)
	allCorrect := true
	numWords := 0

	for i, goldLine := range goldLines {
		lineNum := i + 1
		if i >= len(modelLines) {
			return nil, fmt.Errorf(
				"%w: model ends at line %d, gold has %d lines",
				ErrLengthMismatch, len(modelLines), len(goldLines))
		}
		modelLine := modelLines[i]

		if modelLine == "" {
			if goldLine != "" {
				log.Warn().
					Int("line", lineNum).
					Str("gold", goldLine).
					Msg("different sentence length in gold and model")
			}
			if numWords > 0 {
				ans.Sentences.add(allCorrect)
			}
			allCorrect = true
			numWords = 0
			continue
		}
		if goldLine == "" {
			return nil, fmt.Errorf(
				"%w: line %d: gold sentence ends, model has %q",
				ErrLengthMismatch, lineNum, modelLine)
		}

		gtag, err := tagOf(goldLine, lineNum)
		if err != nil {
			return nil, fmt.Errorf("invalid gold data: %w", err)
		}
		mtag, err := tagOf(modelLine, lineNum)
		if err != nil {
			return nil, fmt.Errorf("invalid model data: %w", err)
		}
		if gtag != mtag {
			allCorrect = false
			hist.inc(gtag, mtag)
		}
		ans.Words.add(gtag == mtag)
		numWords++
	}
	if numWords > 0 {
		ans.Sentences.add(allCorrect)
	}
	ans.Errors = hist.sorted()
	return &ans, nil
}

// ScoreSimpleFiles is ScoreSimple reading from (possibly gzipped) files.
func ScoreSimpleFiles(goldPath, modelPath string) (*SimpleResult, error) {
	gold, err := corpusio.Open(goldPath)
	if err != nil {
		return nil, err
	}
	defer gold.Close()
	model, err := corpusio.Open(modelPath)
	if err != nil {
		return nil, err
	}
	defer model.Close()
	return ScoreSimple(gold, model)
}
