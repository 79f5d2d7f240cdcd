// Package report renders the tabular text listing of an extracted object.
package report

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/mgutz/ansi"
	"github.com/olekukonko/tablewriter"

	"github.com/elf-tools/elfview/elf"
)

var (
	typeColor = ansi.ColorFunc("cyan")
	bindColor = ansi.ColorFunc("yellow")
	nameColor = ansi.ColorFunc("green+b")
)

type Printer struct {
	W     io.Writer
	Color bool
}

// New builds a Printer for w, with colors on when w is a terminal.
func New(w io.Writer) *Printer {
	color := false
	if f, ok := w.(*os.File); ok {
		color = isatty.IsTerminal(f.Fd())
	}
	return &Printer{W: w, Color: color}
}

func (p *Printer) paint(color func(string) string, s string) string {
	if !p.Color {
		return s
	}
	return color(s)
}

func (p *Printer) table(headers []string) *tablewriter.Table {
	t := tablewriter.NewWriter(p.W)
	t.SetHeader(headers)
	t.SetBorder(false)
	t.SetAutoWrapText(false)
	return t
}

// Print writes the full report: object type and entry address, then the
// segment, section and symbol listings.
func (p *Printer) Print(o *elf.Object) {
	if o.Path != "" {
		fmt.Fprintf(p.W, "%s: ", o.Path)
	}
	fmt.Fprintf(p.W, "%s, entry 0x%x\n\n", o.Header.Type, o.Header.Entry)

	fmt.Fprintf(p.W, "segments (%d):\n", len(o.Segments))
	t := p.table([]string{"vaddr", "paddr", "type", "align"})
	for _, seg := range o.Segments {
		t.Append([]string{
			fmt.Sprintf("0x%x", seg.Vaddr),
			fmt.Sprintf("0x%x", seg.Paddr),
			p.paint(typeColor, seg.Type.String()),
			fmt.Sprintf("%d", seg.Align),
		})
	}
	t.Render()

	fmt.Fprintf(p.W, "\nsections (%d):\n", len(o.Sections))
	t = p.table([]string{"offset", "type", "name"})
	for _, sec := range o.Sections {
		t.Append([]string{
			fmt.Sprintf("0x%x", sec.Offset),
			p.paint(typeColor, sec.Type.String()),
			p.paint(nameColor, sec.Name),
		})
	}
	t.Render()

	fmt.Fprintf(p.W, "\nsymbols (%d):\n", len(o.Symbols))
	t = p.table([]string{"value", "bind", "type", "name"})
	for _, sym := range o.Symbols {
		t.Append([]string{
			fmt.Sprintf("0x%x", sym.Value),
			p.paint(bindColor, sym.Bind.String()),
			p.paint(typeColor, sym.Type.String()),
			p.paint(nameColor, sym.Name),
		})
	}
	t.Render()
}
