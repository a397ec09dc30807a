package services

import (
	"fmt"

	"github.com/samber/lo"
	"golang.org/x/net/html"

	"folio.dev/internal/dom"
	"folio.dev/internal/models"
)

const (
	newContext = "_blank"
	noOpener   = "noopener"
)

// storeButton is one optional action on a mobile card
type storeButton struct {
	label string
	url   func(models.Project) string
}

var storeButtons = []storeButton{
	{label: "App Store", url: func(p models.Project) string { return p.AppStoreURL }},
	{label: "Google Play", url: func(p models.Project) string { return p.PlayStoreURL }},
	{label: "公式サイト", url: func(p models.Project) string { return p.WebsiteURL }},
}

// CreateCard builds the card for one project. Web projects become a single
// link; every other type becomes a container with store buttons.
func (r *Renderer) CreateCard(p models.Project) *html.Node {
	thumb := dom.Div(dom.Attrs{
		Class:     "card-thumb",
		Role:      "img",
		AriaLabel: fmt.Sprintf("%s のサムネイル", p.Title),
		Style:     thumbStyle(p.Image),
	})
	title := dom.Div(dom.Attrs{Class: "card-title"}, dom.Text(p.Title))
	desc := dom.P(dom.Attrs{Class: "card-desc"}, dom.Text(p.Description))
	badges := dom.Div(dom.Attrs{Class: "badges"}, lo.Map(p.Tags, func(tag string, _ int) *html.Node {
		return dom.Span(dom.Attrs{Class: "badge"}, dom.Text(tag))
	})...)

	if p.Type == models.TypeWeb {
		return dom.A(dom.Attrs{
			Class:     "card",
			Href:      p.LinkURL(),
			Target:    newContext,
			Rel:       noOpener,
			AriaLabel: fmt.Sprintf("%s を開く", p.Title),
		}, thumb, title, desc, badges)
	}

	actions := dom.Div(dom.Attrs{Class: "card-actions"}, r.storeButtons(p)...)

	primary := p.PrimaryURL()
	if primary == "" {
		return dom.Div(dom.Attrs{
			Class:     "card",
			Role:      "group",
			AriaLabel: p.Title,
		}, thumb, title, desc, badges, actions)
	}

	card := dom.Div(dom.Attrs{
		Class:     "card clickable",
		Role:      "link",
		AriaLabel: p.Title,
		TabIndex:  "0",
	}, thumb, title, desc, badges, actions)

	r.doc.On(card, dom.Click, func(*dom.Event) {
		r.win.Open(primary, newContext, noOpener)
	})
	r.doc.On(card, dom.KeyDown, func(ev *dom.Event) {
		if ev.Key == "Enter" || ev.Key == " " {
			ev.PreventDefault()
			r.win.Open(primary, newContext, noOpener)
		}
	})
	return card
}

func (r *Renderer) storeButtons(p models.Project) []*html.Node {
	var buttons []*html.Node
	for _, b := range storeButtons {
		target := b.url(p)
		if target == "" {
			continue
		}
		btn := dom.A(dom.Attrs{
			Class:  "btn",
			Href:   target,
			Target: newContext,
			Rel:    noOpener,
		}, dom.Text(b.label))
		r.doc.On(btn, dom.Click, func(ev *dom.Event) {
			ev.StopPropagation()
			r.win.Open(target, newContext, noOpener)
		})
		buttons = append(buttons, btn)
	}
	return buttons
}

func thumbStyle(image string) string {
	if image == "" {
		return ""
	}
	return fmt.Sprintf("background-image: url('%s'); background-size: cover; background-position: center", image)
}
