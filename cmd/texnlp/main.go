// Command texnlp bundles corpus tools for training and evaluating
// C&C taggers: an s-expression reader, corpus converters, a tag
// scorer, a most frequent tag baseline and a C&C driver.
package main

import (
	"os"

	"github.com/czcorpus/cnc-gokit/logging"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/texnlp/sexpr/cnf"
	"github.com/urfave/cli/v2"
)

type app struct {
	global GlobalFlags
	conf   *cnf.Conf
}

func (a *app) setup(c *cli.Context) error {
	conf, err := cnf.LoadConfig(a.global.ConfigPath)
	if err != nil {
		return err
	}
	logging.SetupLogging(conf.Logging)
	if a.global.Verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	cnf.ApplyDefaults(conf)
	a.conf = conf
	return nil
}

func newApp() *cli.App {
	a := &app{}
	var (
		sexpFlags    SexpFlags
		scoreFlags   ScoreFlags
		convertFlags ConvertFlags
		tagsetFlags  TagsetFlags
		oracleFlags  OracleFlags
		candcFlags   CandCFlags
	)
	return &cli.App{
		Name:   "texnlp",
		Usage:  "Corpus tools for training and evaluating C&C taggers.",
		Flags:  a.global.AsCliFlags(),
		Before: a.setup,
		Commands: []*cli.Command{
			{
				Name:      "sexp",
				Usage:     "Parse s-expressions (one or more per line).",
				ArgsUsage: "[FILE...]",
				Flags:     sexpFlags.AsCliFlags(),
				Action: func(c *cli.Context) error {
					return a.runSexp(c, sexpFlags)
				},
			},
			{
				Name:  "score",
				Usage: "Score tagger output against gold data.",
				Flags: scoreFlags.AsCliFlags(),
				Action: func(c *cli.Context) error {
					return a.runScore(c, scoreFlags)
				},
			},
			{
				Name:  "convert",
				Usage: "Convert annotated corpora to word/tag lists.",
				Subcommands: []*cli.Command{
					{
						Name:      "treebank",
						Usage:     "Penn Treebank .mrg trees to word/tag lines.",
						ArgsUsage: "FILE...",
						Flags:     convertFlags.treebankFlags(),
						Action: func(c *cli.Context) error {
							return a.runConvertTreebank(c, convertFlags)
						},
					},
					{
						Name:      "ccgbank",
						Usage:     "CCGbank AUTO files to word/tag lines.",
						ArgsUsage: "FILE...",
						Flags:     convertFlags.ccgbankFlags(),
						Action: func(c *cli.Context) error {
							return a.runConvertCCGBank(c, convertFlags)
						},
					},
					{
						Name:      "gigaword",
						Usage:     "Tokenize Gigaword newswire text.",
						ArgsUsage: "FILE...",
						Action:    a.runConvertGigaword,
					},
					{
						Name:      "format",
						Usage:     "Re-encode a tagged corpus (tab <-> pipe).",
						ArgsUsage: "FILE",
						Flags:     convertFlags.formatFlags(),
						Action: func(c *cli.Context) error {
							return a.runConvertFormat(c, convertFlags)
						},
					},
				},
			},
			{
				Name:      "tagset",
				Usage:     "Print tags of a word/tag file.",
				ArgsUsage: "FILE",
				Flags:     tagsetFlags.AsCliFlags(),
				Action: func(c *cli.Context) error {
					return a.runTagset(c, tagsetFlags)
				},
			},
			{
				Name:      "tagdict-stats",
				Usage:     "Print ambiguity statistics of a tag dictionary.",
				ArgsUsage: "FILE",
				Action:    a.runTagdictStats,
			},
			{
				Name:  "oracle",
				Usage: "Tag data with the most frequent tag baseline.",
				Flags: oracleFlags.AsCliFlags(),
				Action: func(c *cli.Context) error {
					return a.runOracle(c, oracleFlags)
				},
			},
			{
				Name:      "candc",
				Usage:     "Train a C&C tagger and tag eval/dev data.",
				ArgsUsage: "TRAIN_FILE",
				Flags:     candcFlags.AsCliFlags(),
				Action: func(c *cli.Context) error {
					return a.runCandC(c, candcFlags)
				},
			},
		},
	}
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		log.Fatal().Err(err).Msg("texnlp failed")
	}
}
