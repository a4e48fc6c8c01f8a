package candc

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/czcorpus/cnc-gokit/fs"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/texnlp/sexpr/corpusio"
	"github.com/texnlp/sexpr/score"
)

type Driver struct {
	opts Options
}

func prepareDir(path string) error {
	if isFile, err := fs.IsFile(path); err == nil && isFile {
		return fmt.Errorf("%w: %s", ErrModelDirIsFile, path)
	}
	if !fs.PathExists(path) {
		log.Info().Str("path", path).Msg("creating directory")
		if err := os.MkdirAll(path, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", path, err)
		}
	}
	return nil
}

// NewDriver validates options and prepares the model directory.
func NewDriver(opts Options) (*Driver, error) {
	opts.ApplyDefaults()
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if err := prepareDir(opts.ModelDir); err != nil {
		return nil, err
	}
	return &Driver{opts: opts}, nil
}

func (d *Driver) Options() Options {
	return d.opts
}

// Train runs the trainer and (for POS models) the model fix-up helper
func (d *Driver) Train(ctx context.Context) error {
	if err := d.opts.TrainCommand().Run(ctx); err != nil {
		return err
	}
	if fix := d.opts.FixModelCommand(); fix != nil {
		if err := fix.Run(ctx); err != nil {
			return err
		}
	}
	return nil
}

func (d *Driver) resultFile(prefix string) string {
	return filepath.Join(d.opts.OutputDir, fmt.Sprintf("%s-%s.tagged", prefix, uuid.NewString()))
}

// createResult opens a file for tagger output.
var createResult = func(path string) (io.WriteCloser, error) {
	return os.Create(path)
}

func (d *Driver) tagInto(ctx context.Context, input, resultPath string, dev bool) error {
	if err := prepareDir(d.opts.OutputDir); err != nil {
		return err
	}
	out, err := createResult(resultPath)
	if err != nil {
		return fmt.Errorf("failed to create result file: %w", err)
	}
	cmd := d.opts.TagCommand(input, dev)
	cmd.Stdout = out
	if err := cmd.Run(ctx); err != nil {
		out.Close()
		return err
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("failed to write result file %s: %w", resultPath, err)
	}
	return nil
}

// Eval tags the evaluation file and scores the output against it.
func (d *Driver) Eval(ctx context.Context) (*score.Result, string, error) {
	resultPath := d.resultFile("eval")
	log.Info().Str("resultFile", resultPath).Msg("tagging eval file")
	if err := d.tagInto(ctx, d.opts.EvalFile, resultPath, false); err != nil {
		return nil, resultPath, err
	}
	res, err := score.ScoreFiles(resultPath, d.opts.EvalFile, d.opts.TrainFile, score.Options{
		Format:     corpusio.FormatPipe,
		Column:     d.opts.ScoredColumn(),
		IgnoreCats: d.opts.IgnoreCats,
		TopErrors:  d.opts.ScoreTopErrors,
	})
	if err != nil {
		return nil, resultPath, fmt.Errorf("failed to score eval file: %w", err)
	}
	return res, resultPath, nil
}

// Dev tags the development file and returns the path of the result
func (d *Driver) Dev(ctx context.Context) (string, error) {
	resultPath := d.resultFile("dev")
	log.Info().Str("resultFile", resultPath).Msg("tagging devel file")
	if err := d.tagInto(ctx, d.opts.DevFile, resultPath, true); err != nil {
		return resultPath, err
	}
	return resultPath, nil
}

// Run trains the model and then processes eval and dev files
// if configured. The score report is written to w.
func (d *Driver) Run(ctx context.Context, w io.Writer) error {
	if err := d.Train(ctx); err != nil {
		return err
	}
	if d.opts.EvalFile != "" {
		res, _, err := d.Eval(ctx)
		if err != nil {
			return err
		}
		if err := res.WriteReport(w); err != nil {
			return err
		}
	}
	if d.opts.DevFile != "" {
		if _, err := d.Dev(ctx); err != nil {
			return err
		}
	}
	return nil
}
