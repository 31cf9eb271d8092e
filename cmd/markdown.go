package cmd

import (
	"fmt"
	"io"

	"github.com/charmbracelet/glamour"
)

// Printer writes markdown to a terminal, styled with glamour, or as is when
// Plain is set.
type Printer struct {
	W     io.Writer
	Plain bool
	Width int // Width is the word wrap width, 0 means 100.

	renderer *glamour.TermRenderer
}

// Print renders md and writes it.
func (p *Printer) Print(md string) {
	if p.Plain {
		fmt.Fprint(p.W, md)
		return
	}
	if p.renderer == nil {
		width := p.Width
		if width == 0 {
			width = 100
		}
		r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(width))
		if err != nil {
			p.Plain = true
			fmt.Fprint(p.W, md)
			return
		}
		p.renderer = r
	}
	out, err := p.renderer.Render(md)
	if err != nil {
		fmt.Fprint(p.W, md)
		return
	}
	fmt.Fprint(p.W, out)
}
