package convert

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strings"
)

// leaves of CCGbank AUTO trees, e.g. <L N/N NNP NNP Pierre N_73/N_73>
// (categories contain parentheses so the s-expression reader is of
// no use here)
var ccgLeafRE = regexp.MustCompile(`<L\s(\S+)\s(\S+)\s\S+\s(\S+)\s\S+>`)

type CCGOutput int

const (
	// CCGOutputPOS writes "word\tpos" lines
	CCGOutputPOS CCGOutput = iota

	// CCGOutputSupertag writes "word\tcategory" lines
	CCGOutputSupertag

	// CCGOutputCandC writes one "word|pos|category" sentence per line
	CCGOutputCandC
)

func ParseCCGOutput(name string) (CCGOutput, error) {
	switch strings.ToLower(name) {
	case "", "pos":
		return CCGOutputPOS, nil
	case "super", "supertag", "cat":
		return CCGOutputSupertag, nil
	case "candc", "pipe":
		return CCGOutputCandC, nil
	}
	return 0, fmt.Errorf("unknown CCGbank output %s", name)
}

// CCGLeaf is a lexical item of a CCGbank derivation
type CCGLeaf struct {
	Word     string
	POS      string
	Category string
}

// CCGLeaves extracts leaves of a single AUTO derivation line.
func CCGLeaves(tree string) []CCGLeaf {
	matches := ccgLeafRE.FindAllStringSubmatch(tree, -1)
	ans := make([]CCGLeaf, len(matches))
	for i, m := range matches {
		ans[i] = CCGLeaf{Category: m[1], POS: m[2], Word: m[3]}
	}
	return ans
}

func writeCCGSentence(w *bufio.Writer, leaves []CCGLeaf, out CCGOutput) error {
	var err error
	switch out {
	case CCGOutputCandC:
		items := make([]string, len(leaves))
		for i, lf := range leaves {
			items[i] = lf.Word + "|" + lf.POS + "|" + lf.Category
		}
		_, err = w.WriteString(strings.Join(items, " ") + "\n")
	default:
		for _, lf := range leaves {
			tag := lf.POS
			if out == CCGOutputSupertag {
				tag = lf.Category
			}
			if _, err = w.WriteString(lf.Word + "\t" + tag + "\n"); err != nil {
				return err
			}
		}
		err = w.WriteByte('\n')
	}
	return err
}

// CCGBank converts AUTO files, where each "ID=..." header line is
// followed by a derivation line.
func CCGBank(w io.Writer, r io.Reader, out CCGOutput) (Stats, error) {
	var stats Stats
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	bw := bufio.NewWriter(w)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "ID=") {
			continue
		}
		leaves := CCGLeaves(line)
		if len(leaves) == 0 {
			stats.Skipped++
			continue
		}
		if err := writeCCGSentence(bw, leaves, out); err != nil {
			return stats, fmt.Errorf("failed to write CCGbank sentence: %w", err)
		}
		stats.Sentences++
		stats.Tokens += len(leaves)
	}
	if err := sc.Err(); err != nil {
		return stats, err
	}
	if err := bw.Flush(); err != nil {
		return stats, err
	}
	stats.log("CCGbank")
	return stats, nil
}
