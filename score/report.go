package score

import (
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func newPrinter() *message.Printer {
	return message.NewPrinter(language.English)
}

func writeErrorTable(w io.Writer, errs []ErrorCount) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"#Err", "Gold", "Model"})
	table.SetAutoFormatHeaders(false)
	table.SetBorder(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	for _, e := range errs {
		table.Append([]string{fmt.Sprint(e.Count), e.Gold, e.Model})
	}
	table.Render()
}

func accuracyLine(p *message.Printer, r Ratio) string {
	return p.Sprintf("%.2f%%\t(%d/%d)", r.Percent(), r.Correct, r.Total)
}

// WriteReport prints word and sentence accuracy followed
// by topN most common errors.
func (res *SimpleResult) WriteReport(w io.Writer, topN int) error {
	p := newPrinter()
	_, err := p.Fprintf(
		w, "Word accuracy: %2.3f (%d/%d)\n",
		res.Words.Percent(), res.Words.Correct, res.Words.Total)
	if err != nil {
		return err
	}
	_, err = p.Fprintf(
		w, "Sent accuracy: %2.3f (%d/%d)\n\nMost common errors:\n",
		res.Sentences.Percent(), res.Sentences.Correct, res.Sentences.Total)
	if err != nil {
		return err
	}
	writeErrorTable(w, TopErrors(res.Errors, topN))
	return nil
}

func (res *Result) WriteReport(w io.Writer) error {
	p := newPrinter()
	rows := []struct {
		label string
		r     Ratio
	}{
		{"Total:     ", res.Total},
		{"Sentence:  ", res.Sentences},
		{"", Ratio{}},
		{"Knowns:    ", res.Known},
		{"Unknowns:  ", res.Unknown},
		{"Ambiguous: ", res.Ambiguous},
	}
	if _, err := io.WriteString(w, "Performance:\n-----------------------\n"); err != nil {
		return err
	}
	for _, row := range rows {
		var err error
		if row.label == "" {
			_, err = io.WriteString(w, "-----------------------\n")

		} else {
			_, err = fmt.Fprintf(w, "%s%s\n", row.label, accuracyLine(p, row.r))
		}
		if err != nil {
			return err
		}
	}
	if _, err := io.WriteString(w, "\nMost common errors:\n"); err != nil {
		return err
	}
	writeErrorTable(w, res.Errors)
	_, err := fmt.Fprintf(
		w, "\nLexicon performance:\n----------------------\nP: %s\nR: %s\n",
		accuracyLine(p, res.LexiconPrecision), accuracyLine(p, res.LexiconRecall))
	return err
}
