package candc

import (
	"fmt"
	"path/filepath"
)

// C&C format strings, the escapes are interpreted by the tools
const (
	fmtPOSTrain     = "%w|%p|%? \\n"
	fmtSuperTrain   = "%w|%p|%s \\n"
	fmtJustPOS      = "%w|%p \\n"
	fmtPOSTagIn     = "%w|%?|%? \\n"
	fmtCandC        = "%w|%p|%s \\n"
	fmtPOSTagOut    = "%w\\t%p\\n\\n\\n"
	fmtSuperTagOut  = "%w\\t%s\\n\\n\\n"
	fixModelHelper  = "afix_candc.sh"
	trainComment    = "Foo"
	trainSolver     = "bfgs"
	trainPOSExec    = "train_pos"
	trainSuperExec  = "train_super"
	tagPOSExec      = "pos"
	tagSuperExec    = "super"
	tagMultitagExec = "mpos"
)

func (opts *Options) binary(name string) string {
	return filepath.Join(opts.CandCHome, "bin", name)
}

// TrainCommand creates the train_pos (or train_super) invocation.
func (opts *Options) TrainCommand() *Command {
	exe := trainPOSExec
	ifmt := fmtPOSTrain
	if opts.CatTag {
		exe = trainSuperExec
		ifmt = fmtSuperTrain
	}
	if opts.JustPOSInput {
		ifmt = fmtJustPOS
	}
	args := []string{
		"--model", opts.ModelDir,
		"--comment", trainComment,
		"--input", opts.TrainFile,
		"--solver", trainSolver,
	}
	if opts.Sigma > 0 {
		args = append(args, "--sigma", fmt.Sprintf("%f", opts.Sigma))
	}
	args = append(args, "--ifmt", ifmt)
	return &Command{
		Name:      opts.binary(exe),
		Args:      args,
		LogStdout: opts.Verbose,
		LogStderr: opts.Verbose,
	}
}

// FixModelCommand makes a POS model usable without
// the full Penn Treebank training data. Nil for supertagging.
func (opts *Options) FixModelCommand() *Command {
	if opts.CatTag {
		return nil
	}
	return &Command{
		Name:      fixModelHelper,
		Args:      []string{opts.ModelDir},
		LogStdout: opts.Verbose,
		LogStderr: opts.Verbose,
	}
}

// tagFormats resolves the tagging executable and its input
// and output formats (empty format = tool's default).
func (opts *Options) tagFormats() (exe, ifmt, ofmt string) {
	exe = tagPOSExec
	ifmt = fmtPOSTagIn
	ofmt = fmtPOSTagOut
	if opts.Raw {
		ifmt = ""
	}
	if opts.CatTag {
		exe = tagSuperExec
		ifmt = fmtJustPOS
		ofmt = fmtSuperTagOut
	}
	if opts.OutputFormat == OutputFormatCandC {
		ifmt = fmtCandC
		ofmt = fmtCandC
	}
	if opts.Multitag {
		exe = tagMultitagExec
		ofmt = ""
	}
	return
}

// TagCommand creates a tagger invocation for input. Development runs
// are limited in sentence length and use the configured output format.
func (opts *Options) TagCommand(input string, dev bool) *Command {
	exe, ifmt, ofmt := opts.tagFormats()
	args := []string{"--model", opts.ModelDir}
	if dev {
		args = append(args, "--maxwords", devMaxWords)
	}
	args = append(args, "--input", input)
	if ifmt != "" {
		args = append(args, "--ifmt", ifmt)
	}
	if dev && ofmt != "" {
		args = append(args, "--ofmt", ofmt)
	}
	return &Command{
		Name:      opts.binary(exe),
		Args:      args,
		LogStderr: opts.Verbose,
	}
}
