package main

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/fatih/color"

	"github.com/x-xyz/hbarmarket/domain/txn"
)

type printer struct {
	w        io.Writer
	jsonMode bool

	success *color.Color
	warn    *color.Color
	fail    *color.Color
	label   *color.Color
}

func newPrinter(w io.Writer, jsonMode, noColor bool) *printer {
	p := &printer{
		w:        w,
		jsonMode: jsonMode,
		success:  color.New(color.FgGreen, color.Bold),
		warn:     color.New(color.FgYellow),
		fail:     color.New(color.FgRed),
		label:    color.New(color.FgCyan),
	}
	if noColor {
		for _, c := range []*color.Color{p.success, p.warn, p.fail, p.label} {
			c.DisableColor()
		}
	}
	return p
}

// result prints v as json in json mode, otherwise calls human.
func (p *printer) result(v interface{}, human func()) error {
	if p.jsonMode {
		enc := json.NewEncoder(p.w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}
	human()
	return nil
}

func (p *printer) field(name string, value interface{}) {
	p.label.Fprintf(p.w, "%-14s", name+":")
	fmt.Fprintf(p.w, " %v\n", value)
}

func (p *printer) table(header string, rows [][]string) {
	tw := tabwriter.NewWriter(p.w, 0, 4, 2, ' ', 0)
	p.label.Fprintln(tw, header)
	for _, r := range rows {
		for i, col := range r {
			if i > 0 {
				fmt.Fprint(tw, "\t")
			}
			fmt.Fprint(tw, col)
		}
		fmt.Fprintln(tw)
	}
	tw.Flush()
}

func (p *printer) outcome(o *txn.Outcome) {
	if o == nil {
		return
	}
	switch o.Status {
	case txn.StatusConfirmed:
		p.success.Fprintf(p.w, "✔ %s confirmed\n", o.Label)
	case txn.StatusFailed:
		p.fail.Fprintf(p.w, "✘ %s failed\n", o.Label)
	default:
		p.warn.Fprintf(p.w, "… %s pending\n", o.Label)
	}
	p.field("hash", o.Hash)
	if o.BlockNumber > 0 {
		p.field("block", o.BlockNumber)
	}
	if len(o.Error) > 0 {
		p.field("error", o.Error)
	}
	if len(o.ExplorerUrl) > 0 {
		p.field("explorer", o.ExplorerUrl)
	}
}
