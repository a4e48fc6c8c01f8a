// Package tagdict builds tag sets and word-to-tags dictionaries
// from "word tag" lists.
package tagdict

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/texnlp/sexpr/corpusio"
)

var ErrMalformedLine = errors.New("malformed dictionary line")

func splitWordTag(line string, lineNum int) (word, tag string, ok bool, err error) {
	items := strings.Fields(line)
	if len(items) == 0 {
		return "", "", false, nil
	}
	if len(items) < 2 {
		return "", "", false, fmt.Errorf("%w: line %d: %q", ErrMalformedLine, lineNum, line)
	}
	return items[0], items[1], true, nil
}

// Tagset returns tags (the second field of each line) occurring
// more than cutoff times, sorted.
func Tagset(r io.Reader, cutoff int) ([]string, error) {
	counts := make(map[string]int)
	sc := bufio.NewScanner(r)
	var lineNum int
	for sc.Scan() {
		lineNum++
		_, tag, ok, err := splitWordTag(sc.Text(), lineNum)
		if err != nil {
			return nil, err
		}
		if ok {
			counts[tag]++
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	ans := make([]string, 0, len(counts))
	for tag, c := range counts {
		if c > cutoff {
			ans = append(ans, tag)
		}
	}
	sort.Strings(ans)
	return ans, nil
}

// TagsetFile is Tagset reading a (possibly gzipped) file
func TagsetFile(path string, cutoff int) ([]string, error) {
	f, err := corpusio.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Tagset(f, cutoff)
}

// Dict maps words to the set of tags they may have.
type Dict struct {
	words  map[string]map[string]struct{}
	tagset map[string]struct{}
}

func NewDict() *Dict {
	return &Dict{
		words:  make(map[string]map[string]struct{}),
		tagset: make(map[string]struct{}),
	}
}

func (d *Dict) Add(word, tag string) {
	tags, ok := d.words[word]
	if !ok {
		tags = make(map[string]struct{})
		d.words[word] = tags
	}
	tags[tag] = struct{}{}
	d.tagset[tag] = struct{}{}
}

func (d *Dict) Contains(word string) bool {
	_, ok := d.words[word]
	return ok
}

// Tags returns sorted tags of a word (nil for unknown words)
func (d *Dict) Tags(word string) []string {
	tags, ok := d.words[word]
	if !ok {
		return nil
	}
	return sortedKeys(tags)
}

func (d *Dict) NumWords() int {
	return len(d.words)
}

// Tagset returns all the tags of the dictionary, sorted
func (d *Dict) Tagset() []string {
	return sortedKeys(d.tagset)
}

func sortedKeys(m map[string]struct{}) []string {
	ans := make([]string, 0, len(m))
	for k := range m {
		ans = append(ans, k)
	}
	sort.Strings(ans)
	return ans
}

// LoadDict reads "word tag" lines, blank lines are skipped.
func LoadDict(r io.Reader) (*Dict, error) {
	d := NewDict()
	sc := bufio.NewScanner(r)
	var lineNum int
	for sc.Scan() {
		lineNum++
		word, tag, ok, err := splitWordTag(sc.Text(), lineNum)
		if err != nil {
			return nil, err
		}
		if ok {
			d.Add(word, tag)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("failed to load tag dictionary: %w", err)
	}
	return d, nil
}

func LoadDictFile(path string) (*Dict, error) {
	f, err := corpusio.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return LoadDict(f)
}
