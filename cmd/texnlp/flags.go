package main

import (
	"github.com/urfave/cli/v2"
)

// GlobalFlags are shared by all the commands
type GlobalFlags struct {
	ConfigPath string
	Verbose    bool
}

func (flags *GlobalFlags) AsCliFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "config",
			Usage:       "Path to a JSON configuration file.",
			Destination: &flags.ConfigPath,
		},
		&cli.BoolFlag{
			Name:        "verbose",
			Aliases:     []string{"v"},
			Usage:       "Log debug messages (and output of external tools).",
			Destination: &flags.Verbose,
		},
	}
}

type SexpFlags struct {
	Dump    string
	Workers int
}

func (flags *SexpFlags) AsCliFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "dump",
			Value:       dumpEncode,
			Usage:       "Output mode: encode, print or spew.",
			Destination: &flags.Dump,
		},
		&cli.IntFlag{
			Name:        "workers",
			Usage:       "Parse lines concurrently using N workers (0 = configured value, 1 = streaming).",
			Destination: &flags.Workers,
		},
	}
}

type ScoreFlags struct {
	Simple bool
	Gold   string
	Model  string
	Train  string
	Format string
	Column int
}

func (flags *ScoreFlags) AsCliFlags() []cli.Flag {
	return []cli.Flag{
		&cli.BoolFlag{
			Name:        "simple",
			Usage:       "Compare two word/tag files line by line (no training data needed).",
			Destination: &flags.Simple,
		},
		&cli.StringFlag{
			Name:        "gold",
			Aliases:     []string{"g"},
			Usage:       "The gold file.",
			Required:    true,
			Destination: &flags.Gold,
		},
		&cli.StringFlag{
			Name:        "model",
			Aliases:     []string{"m"},
			Usage:       "The output file created by the model.",
			Required:    true,
			Destination: &flags.Model,
		},
		&cli.StringFlag{
			Name:        "train",
			Aliases:     []string{"t"},
			Usage:       "The training file (for determining known words).",
			Destination: &flags.Train,
		},
		&cli.StringFlag{
			Name:        "format",
			Aliases:     []string{"f"},
			Value:       "pipe",
			Usage:       "Data format: tab, pipe, hashslash or vert.",
			Destination: &flags.Format,
		},
		&cli.IntFlag{
			Name:        "column",
			Aliases:     []string{"c"},
			Value:       1,
			Usage:       "The tag column to score (1 is the first tag after the word).",
			Destination: &flags.Column,
		},
	}
}

type ConvertFlags struct {
	Lenient   bool
	CCGOutput string
	From      string
	To        string
}

func (flags *ConvertFlags) treebankFlags() []cli.Flag {
	return []cli.Flag{
		&cli.BoolFlag{
			Name:        "lenient",
			Usage:       "Skip malformed trees and report them at the end.",
			Destination: &flags.Lenient,
		},
	}
}

func (flags *ConvertFlags) ccgbankFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "output",
			Aliases:     []string{"o"},
			Value:       "pos",
			Usage:       "What to extract: pos, supertag or candc.",
			Destination: &flags.CCGOutput,
		},
	}
}

func (flags *ConvertFlags) formatFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "from",
			Value:       "tab",
			Usage:       "Input format.",
			Destination: &flags.From,
		},
		&cli.StringFlag{
			Name:        "to",
			Value:       "candc",
			Usage:       "Output format (tab/conll or pipe/candc).",
			Destination: &flags.To,
		},
	}
}

type TagsetFlags struct {
	Cutoff int
}

func (flags *TagsetFlags) AsCliFlags() []cli.Flag {
	return []cli.Flag{
		&cli.IntFlag{
			Name:        "cutoff",
			Usage:       "Print only tags occurring more than N times.",
			Destination: &flags.Cutoff,
		},
	}
}

type OracleFlags struct {
	Train string
	Dict  string
	Test  string
}

func (flags *OracleFlags) AsCliFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "train",
			Usage:       "Tagged training data (word tag per line).",
			Required:    true,
			Destination: &flags.Train,
		},
		&cli.StringFlag{
			Name:        "dict",
			Usage:       "Tag dictionary (word tag per line).",
			Required:    true,
			Destination: &flags.Dict,
		},
		&cli.StringFlag{
			Name:        "test",
			Usage:       "Data to tag (word first on each line).",
			Required:    true,
			Destination: &flags.Test,
		},
	}
}

type CandCFlags struct {
	Dev          string
	Eval         string
	Model        string
	OutputDir    string
	OutputFormat string
	JustPOSInput bool
	CatTag       bool
	Raw          bool
	Multitag     bool
	Smooth       float64
}

func (flags *CandCFlags) AsCliFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "dev",
			Aliases:     []string{"d"},
			Usage:       "Develop on FILE.",
			Destination: &flags.Dev,
		},
		&cli.StringFlag{
			Name:        "eval",
			Aliases:     []string{"e"},
			Usage:       "Evaluate on FILE.",
			Destination: &flags.Eval,
		},
		&cli.StringFlag{
			Name:        "model",
			Aliases:     []string{"m"},
			Usage:       "Save model to DIR (default: configured modelDir).",
			Destination: &flags.Model,
		},
		&cli.StringFlag{
			Name:        "output-dir",
			Aliases:     []string{"o"},
			Usage:       "Save tagger output to DIR (default: configured outputDir).",
			Destination: &flags.OutputDir,
		},
		&cli.StringFlag{
			Name:        "ofmt",
			Aliases:     []string{"f"},
			Usage:       "Use output format FORMAT (candc is recognized).",
			Destination: &flags.OutputFormat,
		},
		&cli.BoolFlag{
			Name:        "just-pos-input",
			Aliases:     []string{"p"},
			Usage:       "Training data contain just words and POS tags.",
			Destination: &flags.JustPOSInput,
		},
		&cli.BoolFlag{
			Name:        "cattag",
			Aliases:     []string{"c"},
			Usage:       "Tag categories rather than POS tags (supertagging).",
			Destination: &flags.CatTag,
		},
		&cli.BoolFlag{
			Name:        "raw",
			Aliases:     []string{"r"},
			Usage:       "Input file for tagging is raw (has no tags).",
			Destination: &flags.Raw,
		},
		&cli.BoolFlag{
			Name:        "multitag",
			Aliases:     []string{"a"},
			Usage:       "Output multitags on development file.",
			Destination: &flags.Multitag,
		},
		&cli.Float64Flag{
			Name:        "smooth",
			Aliases:     []string{"s"},
			Usage:       "Gaussian smoothing sigma (used when > 0).",
			Destination: &flags.Smooth,
		},
	}
}
