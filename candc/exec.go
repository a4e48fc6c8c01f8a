package candc

import (
	"bytes"
	"context"
	"fmt"
	"io"
	osexec "os/exec"
	"strings"

	"github.com/kballard/go-shellquote"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// writeLog is an io.Writer passing written lines to the logger
type writeLog struct {
	level zerolog.Level
	name  string
}

func (wl writeLog) Write(p []byte) (n int, err error) {
	for _, line := range strings.Split(strings.TrimRight(string(p), "\n"), "\n") {
		log.WithLevel(wl.level).Str("command", wl.name).Msg(line)
	}
	return len(p), nil
}

// Command describes an external program invocation
type Command struct {

	// Name is a path to the binary or a name osexec.LookPath can find
	Name string

	// Args does not include Name
	Args []string

	// Stdout receives the standard output of the command (if not nil)
	Stdout io.Writer

	// LogStdout duplicates the standard output to the info log
	LogStdout bool

	// LogStderr duplicates the standard error output to the info log
	LogStderr bool
}

// String returns the command in a form pasteable to a shell
func (command *Command) String() string {
	return shellquote.Join(append([]string{command.Name}, command.Args...)...)
}

func squashWriters(writers ...io.Writer) io.Writer {
	nonNil := []io.Writer{}
	for _, writer := range writers {
		if writer != nil {
			nonNil = append(nonNil, writer)
		}
	}
	switch len(nonNil) {
	case 0:
		return nil
	case 1:
		return nonNil[0]
	default:
		return io.MultiWriter(nonNil...)
	}
}

// DefaultRun executes the command and waits for it to finish.
// The standard error output is attached to a returned error.
func DefaultRun(ctx context.Context, command *Command) error {
	cmd := osexec.CommandContext(ctx, command.Name, command.Args...)
	var stdoutLog, stderrLog io.Writer
	if command.LogStdout {
		stdoutLog = writeLog{level: zerolog.InfoLevel, name: command.Name}
	}
	if command.LogStderr {
		stderrLog = writeLog{level: zerolog.InfoLevel, name: command.Name}
	}
	var stderr bytes.Buffer
	cmd.Stdout = squashWriters(stdoutLog, command.Stdout)
	cmd.Stderr = squashWriters(stderrLog, &stderr)
	log.Info().Str("command", command.String()).Msg("executing")
	if err := cmd.Run(); err != nil {
		log.Error().Err(err).Str("command", command.String()).Msg("command failed")
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return fmt.Errorf("failed to run %s: %w: %s", command.Name, err, msg)
		}
		return fmt.Errorf("failed to run %s: %w", command.Name, err)
	}
	return nil
}

// Run runs a command and waits for it to finish
var Run func(ctx context.Context, command *Command) error = DefaultRun

// SetRunForTesting replaces the Run function so no external
// programs are executed.
func SetRunForTesting(testRun func(ctx context.Context, command *Command) error) {
	Run = testRun
}

func (command *Command) Run(ctx context.Context) error {
	return Run(ctx, command)
}
