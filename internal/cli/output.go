package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"islamic-quotes-be/pkg/quoteclient"

	"github.com/fatih/color"
)

type printer struct {
	format string
	w      io.Writer
}

func newPrinter(opts *RootOptions, w io.Writer) *printer {
	return &printer{format: opts.Format, w: w}
}

func (p *printer) json(v interface{}) error {
	enc := json.NewEncoder(p.w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}

func (p *printer) quote(q *quoteclient.Quote) error {
	if p.format == "json" {
		return p.json(q)
	}

	color.New(color.FgCyan, color.Bold).Fprintf(p.w, "#%d  %s\n", q.Id, q.Category)
	fmt.Fprintln(p.w, q.Original)
	color.New(color.FgWhite, color.Bold).Fprintf(p.w, "\"%s\"\n", q.Text)
	source := q.Source
	if q.Status != nil {
		source = fmt.Sprintf("%s (%s)", source, *q.Status)
	}
	color.New(color.FgYellow).Fprintf(p.w, "- %s\n", source)
	fmt.Fprintln(p.w, q.Explanation)
	return nil
}

func (p *printer) quotes(qs []quoteclient.Quote) error {
	if p.format == "json" {
		return p.json(qs)
	}
	if len(qs) == 0 {
		color.New(color.FgYellow).Fprintln(p.w, "No quotes found")
		return nil
	}
	for i := range qs {
		if i > 0 {
			fmt.Fprintln(p.w)
		}
		if err := p.quote(&qs[i]); err != nil {
			return err
		}
	}
	return nil
}

func (p *printer) categories(cs []string) error {
	if p.format == "json" {
		return p.json(cs)
	}
	for _, c := range cs {
		fmt.Fprintln(p.w, c)
	}
	return nil
}
