package convert

import (
	"bytes"
	"strings"
	"testing"

	"github.com/hashicorp/go-multierror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/texnlp/sexpr"
	"github.com/texnlp/sexpr/corpusio"
	"github.com/texnlp/sexpr/parser"
)

const testTreebank = `*x*  header comment  *x*
( (S
    (NP-SBJ (NNP Pierre) (NNP Vinken) )
    (VP (VBD said)
      (SBAR (-NONE- 0)
        (S (NP-SBJ (PRP it) ) (VP (VBZ works) ))))
    (. .) ))
( (S (NP-SBJ (-NONE- *) ) (VP (VB Go) ) (. !) ))
`

func TestTreebank(t *testing.T) {
	var buf bytes.Buffer
	stats, err := Treebank(&buf, strings.NewReader(testTreebank), TreebankOptions{})
	require.NoError(t, err)
	assert.Equal(t,
		"Pierre\tNNP\nVinken\tNNP\nsaid\tVBD\nit\tPRP\nworks\tVBZ\n.\t.\n\nGo\tVB\n!\t.\n\n",
		buf.String())
	assert.Equal(t, Stats{Sentences: 2, Tokens: 8}, stats)
}

func TestTreebankSingleLineTrees(t *testing.T) {
	var buf bytes.Buffer
	_, err := Treebank(&buf, strings.NewReader("(S (NN a)) (S (NN b))\n"), TreebankOptions{})
	require.NoError(t, err)
	assert.Equal(t, "a\tNN\n\nb\tNN\n\n", buf.String())
}

func TestTreebankStrict(t *testing.T) {
	var buf bytes.Buffer
	_, err := Treebank(&buf, strings.NewReader("(S (NN a))\n(S (NN b)))\n"), TreebankOptions{})
	assert.ErrorIs(t, err, parser.ErrUnmatchedClose)
	var se *parser.StructuralError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, 2, se.Line)
}

func TestTreebankLenient(t *testing.T) {
	input := "(S (NN a)))\n(S (NN b))\n(S (NN c)\n"
	var buf bytes.Buffer
	stats, err := Treebank(&buf, strings.NewReader(input), TreebankOptions{Lenient: true})
	require.Error(t, err)
	merr, ok := err.(*multierror.Error)
	require.True(t, ok)
	assert.Len(t, merr.Errors, 2)
	assert.ErrorIs(t, merr.Errors[0], parser.ErrUnmatchedClose)
	assert.ErrorIs(t, merr.Errors[1], parser.ErrUnclosedList)
	assert.Equal(t, "b\tNN\n\n", buf.String())
	assert.Equal(t, 2, stats.Skipped)
}

func TestPreterminals(t *testing.T) {
	trees, err := sexpr.Parse("(S (NP (DT the) (NN dog)) (-NONE- *T*) (VP (VBZ barks)))")
	require.NoError(t, err)
	assert.Equal(t, [][2]string{{"the", "DT"}, {"dog", "NN"}, {"barks", "VBZ"}}, Preterminals(trees[0]))
}

const testAuto = `ID=wsj_0001.1 PARSER=GOLD NUMPARSE=1
(<T S[dcl] 0 2> (<T NP 0 1> (<L N NNP NNP Vinken N>) ) (<T S[dcl]\NP 0 2> (<L (S[dcl]\NP)/NP VBZ VBZ is (S[dcl]\NP_10)/NP_11>) (<L N NN NN chairman N>) ) )
ID=wsj_0001.2 PARSER=GOLD NUMPARSE=1
(<L N NNP NNP Elsevier N>)
`

func TestCCGLeaves(t *testing.T) {
	leaves := CCGLeaves(strings.Split(testAuto, "\n")[1])
	assert.Equal(t, []CCGLeaf{
		{Word: "Vinken", POS: "NNP", Category: "N"},
		{Word: "is", POS: "VBZ", Category: `(S[dcl]\NP)/NP`},
		{Word: "chairman", POS: "NN", Category: "N"},
	}, leaves)
}

func TestCCGBank(t *testing.T) {
	testCases := []struct {
		In  CCGOutput
		Out string
	}{
		{CCGOutputPOS, "Vinken\tNNP\nis\tVBZ\nchairman\tNN\n\nElsevier\tNNP\n\n"},
		{CCGOutputSupertag, "Vinken\tN\nis\t(S[dcl]\\NP)/NP\nchairman\tN\n\nElsevier\tN\n\n"},
		{CCGOutputCandC, "Vinken|NNP|N is|VBZ|(S[dcl]\\NP)/NP chairman|NN|N\nElsevier|NNP|N\n"},
	}
	for _, tc := range testCases {
		var buf bytes.Buffer
		stats, err := CCGBank(&buf, strings.NewReader(testAuto), tc.In)
		require.NoError(t, err)
		assert.Equal(t, tc.Out, buf.String())
		assert.Equal(t, 2, stats.Sentences)
		assert.Equal(t, 4, stats.Tokens)
	}
}

func TestCCGBankSkipsLeaflessLines(t *testing.T) {
	in := "ID=wsj_0001.1 PARSER=GOLD NUMPARSE=1\n(<T S[dcl] 0 2> )\n" + testAuto
	var buf bytes.Buffer
	stats, err := CCGBank(&buf, strings.NewReader(in), CCGOutputPOS)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Skipped)
	assert.Equal(t, 2, stats.Sentences)
	assert.Equal(t, "Vinken\tNNP\nis\tVBZ\nchairman\tNN\n\nElsevier\tNNP\n\n", buf.String())
}

func TestParseCCGOutput(t *testing.T) {
	o, err := ParseCCGOutput("supertag")
	assert.NoError(t, err)
	assert.Equal(t, CCGOutputSupertag, o)
	_, err = ParseCCGOutput("xml")
	assert.Error(t, err)
}

func TestTokenizeWord(t *testing.T) {
	testCases := []struct {
		In  string
		Out []string
	}{
		{"dog", []string{"dog"}},
		{"...", []string{"..."}},
		{"U.S.", []string{"U.S."}},
		{"Mr.", []string{"Mr."}},
		{"end.", []string{"end", "."}},
		{`"don't,`, []string{`"`, "do", "n't", ","}},
		{"($5)", []string{"(", "$", "5", ")"}},
		{"John's", []string{"John", "'s"}},
		{"dogs'", []string{"dogs", "'"}},
		{"``Hello", []string{"``", "Hello"}},
		{"why?''", []string{"why", "?", "''"}},
		{"50%", []string{"50", "%"}},
	}
	for _, tc := range testCases {
		assert.Equal(t, tc.Out, TokenizeWord(tc.In), "word %s", tc.In)
	}
}

func TestGigaword(t *testing.T) {
	input := `<DOC id="NYT_ENG_19940701.0001">
<HEADLINE>
Ignored headline.
</HEADLINE>
<TEXT>
<P>
The dog barks. It's loud!
</P>
<P>
"Yes," he said.
</P>
</TEXT>
</DOC>
`
	var buf bytes.Buffer
	_, err := Gigaword(&buf, strings.NewReader(input))
	require.NoError(t, err)
	expected := strings.Join([]string{
		"The", "dog", "barks", ".", "",
		"It", "'s", "loud", "!", "",
		`"`, "Yes", ",", `"`, "he", "said", ".", "",
	}, "\n") + "\n"
	assert.Equal(t, expected, buf.String())
}

func TestFormat(t *testing.T) {
	var buf bytes.Buffer
	stats, err := Format(&buf, strings.NewReader("a\tX\nb\tY\n\nc\tZ\n"), corpusio.FormatTab, corpusio.FormatPipe)
	require.NoError(t, err)
	assert.Equal(t, "a|X b|Y\nc|Z\n", buf.String())
	assert.Equal(t, Stats{Sentences: 2, Tokens: 3}, stats)

	var back bytes.Buffer
	_, err = Format(&back, &buf, corpusio.FormatPipe, corpusio.FormatTab)
	require.NoError(t, err)
	assert.Equal(t, "a\tX\nb\tY\n\nc\tZ\n\n", back.String())
}
