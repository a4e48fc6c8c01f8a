package corpusio

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
)

const (
	maxLineSize     = 4 * 1024 * 1024
	hashSlashMarker = "###/###"
)

// Token holds the fields of a corpus position, the word comes first.
type Token []string

// Word returns the first field
func (t Token) Word() string {
	return t.Field(0)
}

// Field returns the i-th field or an empty string if there is none.
func (t Token) Field(i int) string {
	if i < 0 || i >= len(t) {
		return ""
	}
	return t[i]
}

// Sentence is a sequence of tokens
type Sentence []Token

// Words returns the first field of every token
func (s Sentence) Words() []string {
	ans := make([]string, len(s))
	for i, tok := range s {
		ans[i] = tok.Word()
	}
	return ans
}

// SentenceReader iterates over the sentences of a tagged corpus.
type SentenceReader interface {
	Next() bool
	Sentence() Sentence
	Err() error
}

// NewSentenceReader creates a reader for the given format.
func NewSentenceReader(format Format, r io.Reader) (SentenceReader, error) {
	switch format {
	case FormatTab:
		return NewTabReader(r), nil
	case FormatPipe:
		return NewPipeReader(r), nil
	case FormatHashSlash:
		return NewHashSlashReader(r), nil
	case FormatVert:
		return NewVertReader(context.Background(), r, DefaultSentenceStruct), nil
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, format)
}

// ReadAll collects all the remaining sentences of a reader.
func ReadAll(sr SentenceReader) ([]Sentence, error) {
	ans := []Sentence{}
	for sr.Next() {
		ans = append(ans, sr.Sentence())
	}
	if err := sr.Err(); err != nil {
		return nil, err
	}
	return ans, nil
}

// ReadFile reads all the sentences of a (possibly gzipped) corpus file.
func ReadFile(path string, format Format) ([]Sentence, error) {
	f, err := Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	sr, err := NewSentenceReader(format, f)
	if err != nil {
		return nil, err
	}
	ans, err := ReadAll(sr)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return ans, nil
}

func newScanner(r io.Reader) *bufio.Scanner {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	return sc
}

// ------------------------------------------------

// TabReader reads one token per line, blank lines end sentences.
type TabReader struct {
	sc   *bufio.Scanner
	curr Sentence
	err  error
}

func NewTabReader(r io.Reader) *TabReader {
	return &TabReader{sc: newScanner(r)}
}

func (tr *TabReader) Next() bool {
	var sent Sentence
	for tr.sc.Scan() {
		fields := strings.Fields(tr.sc.Text())
		if len(fields) == 0 {
			if len(sent) > 0 {
				tr.curr = sent
				return true
			}
			continue
		}
		sent = append(sent, Token(fields))
	}
	tr.err = tr.sc.Err()
	if tr.err == nil && len(sent) > 0 {
		tr.curr = sent
		return true
	}
	tr.curr = nil
	return false
}

func (tr *TabReader) Sentence() Sentence {
	return tr.curr
}

func (tr *TabReader) Err() error {
	return tr.err
}

// ------------------------------------------------

// PipeReader reads C&C style sentences, e.g.:
//
//	Pierre|NNP|N/N Vinken|NNP|N ,|,|, 61|CD|N/N years|NNS|N
type PipeReader struct {
	sc   *bufio.Scanner
	curr Sentence
	err  error
}

func NewPipeReader(r io.Reader) *PipeReader {
	return &PipeReader{sc: newScanner(r)}
}

func (pr *PipeReader) Next() bool {
	for pr.sc.Scan() {
		items := strings.Fields(pr.sc.Text())
		if len(items) == 0 {
			continue
		}
		sent := make(Sentence, len(items))
		for i, item := range items {
			sent[i] = Token(strings.Split(item, "|"))
		}
		pr.curr = sent
		return true
	}
	pr.err = pr.sc.Err()
	pr.curr = nil
	return false
}

func (pr *PipeReader) Sentence() Sentence {
	return pr.curr
}

func (pr *PipeReader) Err() error {
	return pr.err
}

// ------------------------------------------------

// HashSlashReader reads "word/tag" lines with "###/###" between sentences.
type HashSlashReader struct {
	sc   *bufio.Scanner
	line int
	curr Sentence
	err  error
}

func NewHashSlashReader(r io.Reader) *HashSlashReader {
	return &HashSlashReader{sc: newScanner(r)}
}

func (hr *HashSlashReader) Next() bool {
	var sent Sentence
	for hr.sc.Scan() {
		hr.line++
		line := strings.TrimSpace(hr.sc.Text())
		if line == hashSlashMarker {
			if len(sent) > 0 {
				hr.curr = sent
				return true
			}
			continue
		}
		if line == "" {
			continue
		}
		idx := strings.LastIndex(line, "/")
		if idx <= 0 {
			hr.err = fmt.Errorf("%w: line %d: %q", ErrMalformedLine, hr.line, line)
			hr.curr = nil
			return false
		}
		sent = append(sent, Token{line[:idx], line[idx+1:]})
	}
	hr.err = hr.sc.Err()
	if hr.err == nil && len(sent) > 0 {
		hr.curr = sent
		return true
	}
	hr.curr = nil
	return false
}

func (hr *HashSlashReader) Sentence() Sentence {
	return hr.curr
}

func (hr *HashSlashReader) Err() error {
	return hr.err
}
