package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/dustin/go-humanize"
	"github.com/rs/zerolog/log"
	"github.com/texnlp/sexpr"
	"github.com/texnlp/sexpr/ast"
	"github.com/texnlp/sexpr/candc"
	"github.com/texnlp/sexpr/convert"
	"github.com/texnlp/sexpr/corpusio"
	"github.com/texnlp/sexpr/oracle"
	"github.com/texnlp/sexpr/score"
	"github.com/texnlp/sexpr/tagdict"
	"github.com/urfave/cli/v2"
)

const (
	dumpEncode = "encode"
	dumpPrint  = "print"
	dumpSpew   = "spew"
)

// eachInput calls fn for each file argument (gzip is handled
// transparently) or for stdin if there are no arguments.
func eachInput(c *cli.Context, fn func(r io.Reader) error) error {
	if c.NArg() == 0 {
		return fn(os.Stdin)
	}
	for _, path := range c.Args().Slice() {
		log.Debug().Str("file", path).Msg("processing input file")
		f, err := corpusio.Open(path)
		if err != nil {
			return err
		}
		err = fn(f)
		f.Close()
		if err != nil {
			return fmt.Errorf("failed to process %s: %w", path, err)
		}
	}
	return nil
}

func singleArg(c *cli.Context) (string, error) {
	if c.NArg() != 1 {
		return "", fmt.Errorf("%s expects exactly one file argument", c.Command.Name)
	}
	return c.Args().First(), nil
}

func writeTrees(w io.Writer, trees []*ast.Node, dump string) error {
	switch dump {
	case dumpPrint:
		for _, t := range trees {
			ast.Print(w, t)
		}
	case dumpSpew:
		for _, t := range trees {
			if _, err := io.WriteString(w, spew.Sdump(t)); err != nil {
				return err
			}
		}
	default:
		if _, err := io.WriteString(w, ast.EncodeAll(trees)+"\n"); err != nil {
			return err
		}
	}
	return nil
}

func readLines(r io.Reader) ([]string, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	ans := []string{}
	for sc.Scan() {
		ans = append(ans, strings.TrimRight(sc.Text(), "\r\n"))
	}
	return ans, sc.Err()
}

func (a *app) runSexp(c *cli.Context, flags SexpFlags) error {
	switch flags.Dump {
	case dumpEncode, dumpPrint, dumpSpew:
	default:
		return fmt.Errorf("unknown dump mode %s", flags.Dump)
	}
	workers := flags.Workers
	if workers == 0 {
		workers = a.conf.ParseWorkers
	}
	w := bufio.NewWriter(c.App.Writer)
	defer w.Flush()
	return eachInput(c, func(r io.Reader) error {
		if workers <= 1 {
			rd := sexpr.NewReader(r)
			for rd.Next() {
				if err := writeTrees(w, rd.Trees(), flags.Dump); err != nil {
					return err
				}
			}
			return rd.Err()
		}
		lines, err := readLines(r)
		if err != nil {
			return err
		}
		parsed, err := sexpr.ParseLines(c.Context, lines, workers)
		if err != nil {
			return err
		}
		log.Debug().
			Str("lines", humanize.Comma(int64(len(lines)))).
			Int("workers", workers).
			Msg("parsed lines")
		for _, trees := range parsed {
			if err := writeTrees(w, trees, flags.Dump); err != nil {
				return err
			}
		}
		return nil
	})
}

func (a *app) runScore(c *cli.Context, flags ScoreFlags) error {
	if flags.Simple {
		res, err := score.ScoreSimpleFiles(flags.Gold, flags.Model)
		if err != nil {
			return err
		}
		return res.WriteReport(c.App.Writer, a.conf.ScoreTopErrors)
	}
	if flags.Train == "" {
		return fmt.Errorf("the --train file is required (or use --simple)")
	}
	format, err := corpusio.ParseFormat(flags.Format)
	if err != nil {
		return err
	}
	res, err := score.ScoreFiles(flags.Model, flags.Gold, flags.Train, score.Options{
		Format:     format,
		Column:     flags.Column,
		IgnoreCats: a.conf.IgnoreCats,
		TopErrors:  a.conf.ScoreTopErrors,
	})
	if err != nil {
		return err
	}
	return res.WriteReport(c.App.Writer)
}

func (a *app) runConvertTreebank(c *cli.Context, flags ConvertFlags) error {
	return eachInput(c, func(r io.Reader) error {
		_, err := convert.Treebank(c.App.Writer, r, convert.TreebankOptions{Lenient: flags.Lenient})
		return err
	})
}

func (a *app) runConvertCCGBank(c *cli.Context, flags ConvertFlags) error {
	out, err := convert.ParseCCGOutput(flags.CCGOutput)
	if err != nil {
		return err
	}
	return eachInput(c, func(r io.Reader) error {
		_, err := convert.CCGBank(c.App.Writer, r, out)
		return err
	})
}

func (a *app) runConvertGigaword(c *cli.Context) error {
	return eachInput(c, func(r io.Reader) error {
		_, err := convert.Gigaword(c.App.Writer, r)
		return err
	})
}

func (a *app) runConvertFormat(c *cli.Context, flags ConvertFlags) error {
	from, err := corpusio.ParseFormat(flags.From)
	if err != nil {
		return err
	}
	to, err := corpusio.ParseFormat(flags.To)
	if err != nil {
		return err
	}
	return eachInput(c, func(r io.Reader) error {
		_, err := convert.Format(c.App.Writer, r, from, to)
		return err
	})
}

func (a *app) runTagset(c *cli.Context, flags TagsetFlags) error {
	path, err := singleArg(c)
	if err != nil {
		return err
	}
	tags, err := tagdict.TagsetFile(path, flags.Cutoff)
	if err != nil {
		return err
	}
	for _, tag := range tags {
		if _, err := fmt.Fprintln(c.App.Writer, tag); err != nil {
			return err
		}
	}
	return nil
}

func (a *app) runTagdictStats(c *cli.Context) error {
	path, err := singleArg(c)
	if err != nil {
		return err
	}
	dict, err := tagdict.LoadDictFile(path)
	if err != nil {
		return err
	}
	dict.Stats().WriteTable(c.App.Writer)
	return nil
}

func (a *app) runOracle(c *cli.Context, flags OracleFlags) error {
	w := bufio.NewWriter(c.App.Writer)
	if err := oracle.TagFiles(w, flags.Train, flags.Dict, flags.Test); err != nil {
		return err
	}
	return w.Flush()
}

func (a *app) runCandC(c *cli.Context, flags CandCFlags) error {
	trainFile, err := singleArg(c)
	if err != nil {
		return err
	}
	opts := candc.Options{
		CandCHome:      a.conf.CandCHome,
		TrainFile:      trainFile,
		EvalFile:       flags.Eval,
		DevFile:        flags.Dev,
		ModelDir:       a.conf.ModelDir,
		OutputDir:      a.conf.OutputDir,
		OutputFormat:   flags.OutputFormat,
		JustPOSInput:   flags.JustPOSInput,
		CatTag:         flags.CatTag,
		Raw:            flags.Raw,
		Multitag:       flags.Multitag,
		Verbose:        a.global.Verbose,
		Sigma:          flags.Smooth,
		ScoreTopErrors: a.conf.ScoreTopErrors,
		IgnoreCats:     a.conf.IgnoreCats,
	}
	if flags.Model != "" {
		opts.ModelDir = flags.Model
	}
	if flags.OutputDir != "" {
		opts.OutputDir = flags.OutputDir
	}
	driver, err := candc.NewDriver(opts)
	if err != nil {
		return err
	}
	return driver.Run(c.Context, c.App.Writer)
}
