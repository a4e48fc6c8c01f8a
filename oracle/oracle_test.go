package oracle

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/texnlp/sexpr/corpusio"
	"github.com/texnlp/sexpr/tagdict"
)

const (
	testDict  = "the DT\nrun NN\nrun VB\ndog NN\nbarks VBZ\nbarks NNS\n"
	testTrain = "the DT\ndog NN\nbarks VBZ\n\nthe DT\nrun VB\n\nunknown XX\n"
)

func trainTagger(t *testing.T) *Tagger {
	dict, err := tagdict.LoadDict(strings.NewReader(testDict))
	require.NoError(t, err)
	tagger, err := Train(dict, corpusio.NewTabReader(strings.NewReader(testTrain)))
	require.NoError(t, err)
	return tagger
}

func TestTag(t *testing.T) {
	// counts: DT=2, NN=1+0.5, VB=0.5, VBZ=0.5, NNS=0.5
	tagger := trainTagger(t)
	testCases := []struct {
		In  string
		Out string
	}{
		{"the", "DT"},
		{"run", "NN"},
		{"dog", "NN"},
		{"barks", "NNS"},
		{"cat", "DT"},
	}
	for _, tc := range testCases {
		assert.Equal(t, tc.Out, tagger.Tag(tc.In), "word %s", tc.In)
	}
	assert.Equal(t, "DT", tagger.Fallback())
}

func TestTagStream(t *testing.T) {
	tagger := trainTagger(t)
	var buf bytes.Buffer
	err := tagger.TagStream(&buf, strings.NewReader("the X\ncat Y\n\nrun\n"))
	require.NoError(t, err)
	assert.Equal(t, "the\tDT\ncat\tDT\n\nrun\tNN\n", buf.String())
}

func TestEmptyTraining(t *testing.T) {
	dict, err := tagdict.LoadDict(strings.NewReader("a Y\nb X\n"))
	require.NoError(t, err)
	tagger, err := Train(dict, corpusio.NewTabReader(strings.NewReader("")))
	require.NoError(t, err)
	assert.Equal(t, "X", tagger.Fallback())
	assert.Equal(t, "Y", tagger.Tag("a"))
}

func TestTagFiles(t *testing.T) {
	dir := t.TempDir()
	write := func(name, data string) string {
		p := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(p, []byte(data), 0644))
		return p
	}
	var buf bytes.Buffer
	err := TagFiles(
		&buf, write("train", testTrain), write("dict", testDict), write("test", "dog Z\n"))
	require.NoError(t, err)
	assert.Equal(t, "dog\tNN\n", buf.String())
}
