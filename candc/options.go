// Package candc drives the external C&C tagger tools: it trains
// a POS tagger or a supertagger, tags evaluation and development
// data and scores the results.
package candc

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/czcorpus/cnc-gokit/fs"
)

const (
	EnvCandCHome = "CANDC"

	DefaultModelDir  = "models"
	DefaultOutputDir = "output"

	// OutputFormatCandC makes taggers read and write
	// "word|pos|supertag" items
	OutputFormatCandC = "candc"

	devMaxWords = "5000"
)

var (
	ErrMissingCandCHome = errors.New("the CANDC environment variable must point to the C&C tools")
	ErrMissingTrainFile = errors.New("missing training file")
	ErrModelDirIsFile   = errors.New("a file with the same name as the model dir already exists")
)

type Options struct {
	CandCHome string

	TrainFile string
	EvalFile  string
	DevFile   string

	ModelDir     string
	OutputDir    string
	OutputFormat string

	// JustPOSInput means training data contain only word|pos items
	JustPOSInput bool

	// CatTag switches from POS tagging to supertagging
	CatTag bool

	// Raw means tagged input contains just words
	Raw bool

	// Multitag makes the development run output multiple tags per word
	Multitag bool

	Verbose bool

	// Sigma is the Gaussian smoothing parameter, used only when positive
	Sigma float64

	ScoreTopErrors int
	IgnoreCats     []string
}

// ApplyDefaults fills in empty directories and the C&C location
// from the environment.
func (opts *Options) ApplyDefaults() {
	if opts.CandCHome == "" {
		opts.CandCHome = os.Getenv(EnvCandCHome)
	}
	if opts.ModelDir == "" {
		opts.ModelDir = DefaultModelDir
	}
	if opts.OutputDir == "" {
		opts.OutputDir = DefaultOutputDir
	}
}

func (opts *Options) Validate() error {
	if opts.CandCHome == "" {
		return ErrMissingCandCHome
	}
	if !fs.PathExists(opts.CandCHome) {
		return fmt.Errorf("%w: %s does not exist", ErrMissingCandCHome, opts.CandCHome)
	}
	if isFile, err := fs.IsFile(opts.CandCHome); err != nil || isFile {
		return fmt.Errorf("%w: %s is not a directory", ErrMissingCandCHome, opts.CandCHome)
	}
	if strings.TrimSpace(opts.TrainFile) == "" {
		return ErrMissingTrainFile
	}
	if opts.Sigma < 0 {
		return fmt.Errorf("invalid smoothing sigma %f", opts.Sigma)
	}
	return nil
}

// ScoredColumn is the tag column compared when scoring
// (1 for POS tags, 2 for supertags).
func (opts *Options) ScoredColumn() int {
	if opts.CatTag {
		return 2
	}
	return 1
}
