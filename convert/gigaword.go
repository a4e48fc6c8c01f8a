package convert

import (
	"bufio"
	"io"
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

var (
	acronymRE   = regexp.MustCompile(`^(?:[A-Za-z]\.)+$`)
	abbrevRE    = regexp.MustCompile(`^(?:Mr|Mrs|Ms|Dr|Sr|Jr|Assoc|Co|No|St|Sen|vs|Inc|Corp|Ltd|Rev|Lt|Jan|Feb|Mar|Apr|Jun|Jul|Aug|Sep|Sept|Oct|Nov|Dec|Mon|Tue|Tues|Wed|Thu|Thur|Fri|Sat|Sun)\.$`)
	frontCharRE = regexp.MustCompile("^(\\$|'|\"|``|\\()(.+)$")
	endCharRE   = regexp.MustCompile("^(.+)(''|\"|\\)|,|\\.|\\?|!|%|;|:)$")
	cliticRE    = regexp.MustCompile(`^(\w+\.?)(n't|'s|'re|'d|'ve|'ll)$`)
)

func tokenizeWord(word string, front, back []string) ([]string, []string) {
	for word != "" {
		if word == "..." || acronymRE.MatchString(word) || abbrevRE.MatchString(word) {
			return append(front, word), back
		}
		if m := frontCharRE.FindStringSubmatch(word); m != nil {
			front = append(front, m[1])
			word = m[2]
			continue
		}
		if m := endCharRE.FindStringSubmatch(word); m != nil {
			back = append(back, m[2])
			word = m[1]
			continue
		}
		if last := word[len(word)-1]; last == '\'' || last == '`' {
			back = append(back, string(last))
			word = word[:len(word)-1]
			continue
		}
		if m := cliticRE.FindStringSubmatch(word); m != nil {
			return append(front, m[1]), append(back, m[2])
		}
		return append(front, word), back
	}
	return front, back
}

// TokenizeWord splits a whitespace delimited newswire word into
// Treebank style tokens, e.g. `"don't,` gives `"`, `do`, `n't`, `,`.
func TokenizeWord(word string) []string {
	front, back := tokenizeWord(word, nil, nil)
	for i := len(back) - 1; i >= 0; i-- {
		front = append(front, back[i])
	}
	return front
}

func isSentenceEnd(tok string) bool {
	return tok == "." || tok == "?" || tok == "!"
}

// Gigaword tokenizes paragraphs found in <TEXT> elements of Gigaword
// SGML files. Tokens are written one per line, blank lines separate
// sentences and paragraphs.
func Gigaword(w io.Writer, r io.Reader) (Stats, error) {
	var stats Stats
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	bw := bufio.NewWriter(w)

	var inText bool
	var last string
	writeLine := func(s string) error {
		_, err := bw.WriteString(s + "\n")
		return err
	}

	for sc.Scan() {
		line := norm.NFC.String(strings.TrimSpace(sc.Text()))
		switch {
		case line == "<TEXT>":
			inText = true
		case line == "</TEXT>":
			inText = false
		case !inText:
		case line == "<P>":
			last = ""
		case line == "</P>":
			if err := writeLine(""); err != nil {
				return stats, err
			}
			stats.Sentences++
		default:
			for _, word := range strings.Fields(line) {
				if isSentenceEnd(last) {
					if err := writeLine(""); err != nil {
						return stats, err
					}
					stats.Sentences++
				}
				for _, tok := range TokenizeWord(word) {
					last = tok
					if err := writeLine(tok); err != nil {
						return stats, err
					}
					stats.Tokens++
				}
			}
		}
	}
	if err := sc.Err(); err != nil {
		return stats, err
	}
	if err := bw.Flush(); err != nil {
		return stats, err
	}
	stats.log("Gigaword")
	return stats, nil
}
