package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/texnlp/sexpr/candc"
)

func writeFile(t *testing.T, dir, name, data string) string {
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte(data), 0644))
	return p
}

func runApp(t *testing.T, args ...string) (string, error) {
	app := newApp()
	var buf bytes.Buffer
	app.Writer = &buf
	err := app.Run(append([]string{"texnlp"}, args...))
	return buf.String(), err
}

func TestSexpCommand(t *testing.T) {
	dir := t.TempDir()
	input := writeFile(t, dir, "trees.txt", "(a   (b c) d) e\n\n(1 2)\n")

	for _, workers := range []string{"1", "3"} {
		out, err := runApp(t, "sexp", "--workers", workers, input)
		require.NoError(t, err)
		assert.Equal(t, "(a (b c) d) e\n\n(1 2)\n", out)
	}

	out, err := runApp(t, "sexp", "--dump", "print", input)
	require.NoError(t, err)
	assert.Contains(t, out, "(list)[3]")

	out, err = runApp(t, "sexp", "--dump", "spew", input)
	require.NoError(t, err)
	assert.Contains(t, out, "ast.Node")
}

func TestSexpCommandErrors(t *testing.T) {
	dir := t.TempDir()
	input := writeFile(t, dir, "trees.txt", "(a b)\n(c\n")
	_, err := runApp(t, "sexp", "--workers", "1", input)
	assert.ErrorContains(t, err, "line 2")

	_, err = runApp(t, "sexp", "--dump", "xml", input)
	assert.Error(t, err)
}

func TestScoreCommand(t *testing.T) {
	dir := t.TempDir()
	gold := writeFile(t, dir, "gold", "a X\nb Y\n\n")
	model := writeFile(t, dir, "model", "a X\nb Z\n\n")
	out, err := runApp(t, "score", "--simple", "--gold", gold, "--model", model)
	require.NoError(t, err)
	assert.Contains(t, out, "Word accuracy: 50.000 (1/2)")

	train := writeFile(t, dir, "train", "a X\n\n")
	out, err = runApp(t, "score", "-f", "tab", "-g", gold, "-m", model, "-t", train)
	require.NoError(t, err)
	assert.Contains(t, out, "Knowns:    100.00%\t(1/1)")

	_, err = runApp(t, "score", "-g", gold, "-m", model)
	assert.Error(t, err)
}

func TestConvertCommands(t *testing.T) {
	dir := t.TempDir()
	tab := writeFile(t, dir, "data.tab", "a\tX\nb\tY\n\n")
	out, err := runApp(t, "convert", "format", "--from", "conll", "--to", "candc", tab)
	require.NoError(t, err)
	assert.Equal(t, "a|X b|Y\n", out)

	mrg := writeFile(t, dir, "wsj.mrg", "( (S (NN a) (-NONE- *) ))\n")
	out, err = runApp(t, "convert", "treebank", mrg)
	require.NoError(t, err)
	assert.Equal(t, "a\tNN\n\n", out)

	auto := writeFile(t, dir, "wsj.auto", "ID=1\n(<L N NN NN dog N>)\n")
	out, err = runApp(t, "convert", "ccgbank", "-o", "candc", auto)
	require.NoError(t, err)
	assert.Equal(t, "dog|NN|N\n", out)

	giga := writeFile(t, dir, "nyt", "<TEXT>\n<P>\nHi!\n</P>\n</TEXT>\n")
	out, err = runApp(t, "convert", "gigaword", giga)
	require.NoError(t, err)
	assert.Equal(t, "Hi\n!\n\n", out)
}

func TestTagsetAndDictCommands(t *testing.T) {
	dir := t.TempDir()
	dict := writeFile(t, dir, "dict", "run NN\nrun VB\nthe DT\nthe DT\n")
	out, err := runApp(t, "tagset", "--cutoff", "1", dict)
	require.NoError(t, err)
	assert.Equal(t, "DT\n", out)

	out, err = runApp(t, "tagdict-stats", dict)
	require.NoError(t, err)
	assert.Contains(t, out, "1.5000")

	_, err = runApp(t, "tagset")
	assert.Error(t, err)
}

func TestOracleCommand(t *testing.T) {
	dir := t.TempDir()
	dict := writeFile(t, dir, "dict", "run NN\nrun VB\nthe DT\n")
	train := writeFile(t, dir, "train", "the DT\nrun VB\n\nrun NN\n")
	test := writeFile(t, dir, "test", "run\n\ndog\n")
	out, err := runApp(t, "oracle", "--train", train, "--dict", dict, "--test", test)
	require.NoError(t, err)
	assert.Equal(t, "run\tNN\n\ndog\tDT\n", out)
}

func TestCandCCommand(t *testing.T) {
	dir := t.TempDir()
	home := filepath.Join(dir, "candc")
	require.NoError(t, os.Mkdir(home, 0755))
	t.Setenv(candc.EnvCandCHome, home)
	train := writeFile(t, dir, "train.pipe", "a|X\n")

	var executed []string
	candc.SetRunForTesting(func(ctx context.Context, command *candc.Command) error {
		executed = append(executed, filepath.Base(command.Name))
		return nil
	})
	defer candc.SetRunForTesting(candc.DefaultRun)

	_, err := runApp(t, "candc", "--cattag", "-m", filepath.Join(dir, "models"), train)
	require.NoError(t, err)
	assert.Equal(t, []string{"train_super"}, executed)
	assert.DirExists(t, filepath.Join(dir, "models"))
}
