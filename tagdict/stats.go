package tagdict

import (
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"
)

// Stats describes the ambiguity of a dictionary
type Stats struct {
	NumTags      int     `json:"numTags"`
	MaxAmbiguity int     `json:"maxAmbiguity"`
	AvgAmbiguity float64 `json:"avgAmbiguity"`
}

func (d *Dict) Stats() Stats {
	ans := Stats{NumTags: len(d.tagset)}
	var total int
	for _, tags := range d.words {
		total += len(tags)
		if len(tags) > ans.MaxAmbiguity {
			ans.MaxAmbiguity = len(tags)
		}
	}
	if len(d.words) > 0 {
		ans.AvgAmbiguity = float64(total) / float64(len(d.words))
	}
	return ans
}

func (s Stats) WriteTable(w io.Writer) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"tags", "max tags per word", "avg tags per word"})
	table.SetAutoFormatHeaders(false)
	table.Append([]string{
		fmt.Sprint(s.NumTags),
		fmt.Sprint(s.MaxAmbiguity),
		fmt.Sprintf("%.4f", s.AvgAmbiguity),
	})
	table.Render()
}
