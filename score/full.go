package score

import (
	"fmt"

	"github.com/texnlp/sexpr/corpusio"
)

// DefaultIgnoreCats lists gold tags (first tag column) excluded
// from scoring
var DefaultIgnoreCats = []string{".", ";", ":", ",", "LRB", "RRB", ""}

const (
	DefaultColumn    = 1
	DefaultTopErrors = 5
)

type Options struct {
	Format corpusio.Format

	// Column is the index of the scored field, the word being 0
	Column int

	IgnoreCats []string
	TopErrors  int
}

func (opts *Options) applyDefaults() {
	if opts.Format == "" {
		opts.Format = corpusio.FormatPipe
	}
	if opts.Column <= 0 {
		opts.Column = DefaultColumn
	}
	if opts.IgnoreCats == nil {
		opts.IgnoreCats = DefaultIgnoreCats
	}
	if opts.TopErrors <= 0 {
		opts.TopErrors = DefaultTopErrors
	}
}

// Result is the outcome of scoring a tagged file against
// gold data with respect to training data.
type Result struct {
	Total     Ratio
	Sentences Ratio
	Known     Ratio
	Unknown   Ratio
	Ambiguous Ratio

	// LexiconPrecision and LexiconRecall evaluate word/tag pairs
	// which are not present in the training data.
	LexiconPrecision Ratio
	LexiconRecall    Ratio

	Errors []ErrorCount
}

type lexicon map[string]map[string]struct{}

func buildLexicon(sents []corpusio.Sentence, column int) lexicon {
	ans := make(lexicon)
	for _, sent := range sents {
		for _, tok := range sent {
			tags, ok := ans[tok.Word()]
			if !ok {
				tags = make(map[string]struct{})
				ans[tok.Word()] = tags
			}
			tags[tok.Field(column)] = struct{}{}
		}
	}
	return ans
}

func wordTagEntries(sents []corpusio.Sentence, column int) map[string]struct{} {
	ans := make(map[string]struct{})
	for _, sent := range sents {
		for _, tok := range sent {
			ans[tok.Word()+"/"+tok.Field(column)] = struct{}{}
		}
	}
	return ans
}

// scoreLexicon compares word/tag entries unseen in training data
func scoreLexicon(model, gold, train []corpusio.Sentence, column int) (prec, rec Ratio) {
	modelLex := wordTagEntries(model, column)
	goldLex := wordTagEntries(gold, column)
	trainLex := wordTagEntries(train, column)
	for k := range trainLex {
		delete(modelLex, k)
		delete(goldLex, k)
	}
	truePositives := 0
	for k := range modelLex {
		if _, ok := goldLex[k]; ok {
			truePositives++
		}
	}
	prec = Ratio{Correct: truePositives, Total: len(modelLex)}
	rec = Ratio{Correct: truePositives, Total: len(goldLex)}
	return
}

// Score evaluates model sentences against gold ones. Sentences and
// tokens are matched by position.
func Score(model, gold, train []corpusio.Sentence, opts Options) (*Result, error) {
	opts.applyDefaults()
	if len(model) != len(gold) {
		return nil, fmt.Errorf(
			"%w: gold has %d sentences, model %d", ErrLengthMismatch, len(gold), len(model))
	}
	ignore := make(map[string]bool, len(opts.IgnoreCats))
	for _, c := range opts.IgnoreCats {
		ignore[c] = true
	}
	trainLex := buildLexicon(train, opts.Column)

	var ans Result
	hist := make(errorHistogram)
	for i, goldSent := range gold {
		modelSent := model[i]
		if len(modelSent) != len(goldSent) {
			return nil, fmt.Errorf(
				"%w: sentence %d has %d gold and %d model tokens",
				ErrLengthMismatch, i+1, len(goldSent), len(modelSent))
		}
		sentOK := true
		for j, goldTok := range goldSent {
			if ignore[goldTok.Field(1)] {
				continue
			}
			goldTag := goldTok.Field(opts.Column)
			modelTag := modelSent[j].Field(opts.Column)
			ok := goldTag == modelTag
			if !ok {
				sentOK = false
				hist.inc(goldTag, modelTag)
			}
			tags, known := trainLex[goldTok.Word()]
			if known {
				ans.Known.add(ok)

			} else {
				ans.Unknown.add(ok)
			}
			if len(tags) > 1 {
				ans.Ambiguous.add(ok)
			}
			ans.Total.add(ok)
		}
		ans.Sentences.add(sentOK)
	}
	ans.Errors = TopErrors(hist.sorted(), opts.TopErrors)
	ans.LexiconPrecision, ans.LexiconRecall = scoreLexicon(model, gold, train, opts.Column)
	return &ans, nil
}

// ScoreFiles loads model, gold and train files in the configured
// format and scores them.
func ScoreFiles(modelPath, goldPath, trainPath string, opts Options) (*Result, error) {
	opts.applyDefaults()
	model, err := corpusio.ReadFile(modelPath, opts.Format)
	if err != nil {
		return nil, fmt.Errorf("failed to load model data: %w", err)
	}
	gold, err := corpusio.ReadFile(goldPath, opts.Format)
	if err != nil {
		return nil, fmt.Errorf("failed to load gold data: %w", err)
	}
	train, err := corpusio.ReadFile(trainPath, opts.Format)
	if err != nil {
		return nil, fmt.Errorf("failed to load train data: %w", err)
	}
	return Score(model, gold, train, opts)
}
