package services

import (
	"context"
	"io"

	"folio.dev/internal/dom"
)

// Page is one loaded page session
type Page struct {
	Document *dom.Document
	Window   *dom.Window
	Renderer *Renderer
}

// OpenPage parses the hosting page at location, then runs the renderer's
// startup sequence against it
func OpenPage(ctx context.Context, src io.Reader, location string, projects *ProjectService, opts ...Option) (*Page, error) {
	doc, err := dom.Parse(src)
	if err != nil {
		return nil, err
	}
	loc, err := dom.NewLocation(location)
	if err != nil {
		return nil, err
	}

	win := dom.NewWindow(loc)
	r := NewRenderer(doc, win, projects, opts...)
	r.Start(ctx)

	return &Page{Document: doc, Window: win, Renderer: r}, nil
}

// Render serializes the page
func (p *Page) Render(w io.Writer) error {
	return p.Document.Render(w)
}
