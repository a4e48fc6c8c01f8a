package corpusio

import (
	"context"
	"io"

	"github.com/rs/zerolog/log"
	"github.com/tomachalek/vertigo/v6"
)

// DefaultSentenceStruct is the structure delimiting sentences in vertical files
const DefaultSentenceStruct = "s"

// sentenceCollector is a vertigo.LineProcessor gathering
// tokens into sentences.
type sentenceCollector struct {
	ctx        context.Context
	sentStruct string
	curr       Sentence
	sentences  []Sentence
}

func (sc *sentenceCollector) flush() {
	if len(sc.curr) > 0 {
		sc.sentences = append(sc.sentences, sc.curr)
	}
	sc.curr = nil
}

func (sc *sentenceCollector) ProcToken(tk *vertigo.Token, line int, err error) error {
	if err != nil {
		return err
	}
	if err := sc.ctx.Err(); err != nil {
		return err
	}
	tok := make(Token, 0, len(tk.Attrs)+1)
	tok = append(tok, tk.Word)
	tok = append(tok, tk.Attrs...)
	sc.curr = append(sc.curr, tok)
	return nil
}

func (sc *sentenceCollector) ProcStruct(st *vertigo.Structure, line int, err error) error {
	if err != nil {
		return err
	}
	if st.Name == sc.sentStruct {
		sc.flush()
	}
	return nil
}

func (sc *sentenceCollector) ProcStructClose(st *vertigo.StructureClose, line int, err error) error {
	if err != nil {
		return err
	}
	if st.Name == sc.sentStruct {
		sc.flush()
	}
	return nil
}

// VertReader reads sentences of a vertical file. The whole input is
// parsed on the first call to Next.
type VertReader struct {
	ctx        context.Context
	r          io.Reader
	sentStruct string
	loaded     bool
	sentences  []Sentence
	idx        int
	err        error
}

func NewVertReader(ctx context.Context, r io.Reader, sentStruct string) *VertReader {
	if sentStruct == "" {
		sentStruct = DefaultSentenceStruct
	}
	return &VertReader{ctx: ctx, r: r, sentStruct: sentStruct, idx: -1}
}

func (vr *VertReader) load() {
	vr.loaded = true
	coll := &sentenceCollector{ctx: vr.ctx, sentStruct: vr.sentStruct}
	parserConf := &vertigo.ParserConf{
		StructAttrAccumulator: "nil",
		Encoding:              "utf-8",
		LogProgressEachNth:    1000000,
	}
	sc := newScanner(vr.r)
	if err := vertigo.ParseVerticalFromScanner(vr.ctx, sc, parserConf, coll); err != nil {
		vr.err = err
		return
	}
	coll.flush()
	vr.sentences = coll.sentences
	log.Debug().Int("numSentences", len(vr.sentences)).Msg("loaded vertical file")
}

func (vr *VertReader) Next() bool {
	if !vr.loaded {
		vr.load()
	}
	if vr.err != nil {
		return false
	}
	vr.idx++
	return vr.idx < len(vr.sentences)
}

func (vr *VertReader) Sentence() Sentence {
	if vr.idx < 0 || vr.idx >= len(vr.sentences) {
		return nil
	}
	return vr.sentences[vr.idx]
}

func (vr *VertReader) Err() error {
	return vr.err
}

var _ SentenceReader = (*VertReader)(nil)
