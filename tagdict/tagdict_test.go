package tagdict

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTagset(t *testing.T) {
	input := "the DT\ndog NN\n\ncat NN\nruns VBZ\nthe DT\n"
	testCases := []struct {
		Cutoff int
		Out    []string
	}{
		{0, []string{"DT", "NN", "VBZ"}},
		{1, []string{"DT", "NN"}},
		{2, []string{}},
	}
	for _, tc := range testCases {
		ans, err := Tagset(strings.NewReader(input), tc.Cutoff)
		require.NoError(t, err)
		assert.Equal(t, tc.Out, ans)
	}
}

func TestTagsetMalformed(t *testing.T) {
	_, err := Tagset(strings.NewReader("the DT\nlonely\n"), 0)
	assert.ErrorIs(t, err, ErrMalformedLine)
}

func TestDict(t *testing.T) {
	d, err := LoadDict(strings.NewReader("run NN\nrun VB\n\nthe DT\nrun NN\n"))
	require.NoError(t, err)
	assert.Equal(t, 2, d.NumWords())
	assert.True(t, d.Contains("run"))
	assert.False(t, d.Contains("dog"))
	assert.Equal(t, []string{"NN", "VB"}, d.Tags("run"))
	assert.Nil(t, d.Tags("dog"))
	assert.Equal(t, []string{"DT", "NN", "VB"}, d.Tagset())

	s := d.Stats()
	assert.Equal(t, Stats{NumTags: 3, MaxAmbiguity: 2, AvgAmbiguity: 1.5}, s)

	var buf bytes.Buffer
	s.WriteTable(&buf)
	assert.Contains(t, buf.String(), "1.5000")
}

func TestEmptyDictStats(t *testing.T) {
	assert.Equal(t, Stats{}, NewDict().Stats())
}
