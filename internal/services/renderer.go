package services

import (
	"context"
	"strconv"
	"time"

	"github.com/rs/zerolog"
	"github.com/samber/lo"
	"golang.org/x/net/html"

	"folio.dev/internal/dom"
	"folio.dev/internal/logger"
	"folio.dev/internal/models"
)

// Element ids and attributes the hosting page provides
const (
	GridID       = "portfolio-grid"
	OwnerNameID  = "owner-name"
	OwnerRoleID  = "owner-role"
	OwnerIntroID = "owner-intro"
	YearID       = "year"
	FilterAttr   = "data-filter"
	filterKey    = "filter"
)

// Empty-state card text
const (
	EmptyTitle = "まだ作品がありません"
	EmptyBody  = "data/portfolio.json を編集して作品を追加してください。"
)

// State is the renderer's view of the page session
type State struct {
	All    []models.Project
	Filter models.Filter
}

// Renderer builds the portfolio grid inside one page session. It is not
// safe for concurrent use; each page gets its own Renderer.
type Renderer struct {
	doc      *dom.Document
	win      *dom.Window
	projects *ProjectService
	now      func() time.Time
	log      zerolog.Logger

	state State

	grid       *html.Node
	ownerName  *html.Node
	ownerRole  *html.Node
	ownerIntro *html.Node
	year       *html.Node
	controls   []*html.Node
}

// Option customizes a Renderer
type Option func(*Renderer)

// WithClock overrides the clock used for the year display
func WithClock(now func() time.Time) Option {
	return func(r *Renderer) { r.now = now }
}

// WithDefaultFilter sets the filter used when the fragment selects none
func WithDefaultFilter(f models.Filter) Option {
	return func(r *Renderer) { r.state.Filter = f }
}

// NewRenderer binds a renderer to the page's fixed elements
func NewRenderer(doc *dom.Document, win *dom.Window, projects *ProjectService, opts ...Option) *Renderer {
	r := &Renderer{
		doc:      doc,
		win:      win,
		projects: projects,
		now:      time.Now,
		log:      logger.GetRenderLogger(),
		state:    State{All: []models.Project{}, Filter: models.DefaultFilter},

		grid:       doc.GetElementByID(GridID),
		ownerName:  doc.GetElementByID(OwnerNameID),
		ownerRole:  doc.GetElementByID(OwnerRoleID),
		ownerIntro: doc.GetElementByID(OwnerIntroID),
		year:       doc.GetElementByID(YearID),
		controls:   doc.ElementsWithAttr(FilterAttr),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// State returns a copy of the current state
func (r *Renderer) State() State {
	return State{
		All:    append([]models.Project{}, r.state.All...),
		Filter: r.state.Filter,
	}
}

// Start sets the year, wires the filter controls and loads the data
func (r *Renderer) Start(ctx context.Context) {
	if r.year != nil {
		dom.SetText(r.year, strconv.Itoa(r.now().Year()))
	}
	r.BindFilters()
	r.Load(ctx)
}

// Load fetches the data document, falling back to sample projects on
// failure, then applies the fragment filter and renders
func (r *Renderer) Load(ctx context.Context) {
	portfolio, _ := r.projects.Load(ctx, r.win.Location)

	if portfolio.Owner != nil {
		setIfPresent(r.ownerName, portfolio.Owner.Name)
		setIfPresent(r.ownerRole, portfolio.Owner.Role)
		setIfPresent(r.ownerIntro, portfolio.Owner.Intro)
	}
	r.state.All = portfolio.Projects
	if r.state.All == nil {
		r.state.All = []models.Project{}
	}

	if f, ok := models.ParseFilter(r.win.Location.Fragment()); ok {
		r.state.Filter = f
	}
	r.Render(r.state.Filter)
	r.syncControls()
}

// Render replaces the grid contents with the projects matching filter
func (r *Renderer) Render(filter models.Filter) {
	r.state.Filter = filter
	if r.grid == nil {
		r.log.Debug().Msg("No grid container, skipping render")
		return
	}
	r.doc.Clear(r.grid)

	projects := lo.Filter(r.state.All, func(p models.Project, _ int) bool {
		return filter.Matches(p)
	})

	if len(projects) == 0 {
		r.grid.AppendChild(dom.Div(dom.Attrs{Class: "card"},
			dom.Div(dom.Attrs{Class: "card-title"}, dom.Text(EmptyTitle)),
			dom.P(dom.Attrs{Class: "card-desc"}, dom.Text(EmptyBody)),
		))
		return
	}

	for _, p := range projects {
		r.grid.AppendChild(r.CreateCard(p))
	}
	r.log.Debug().Str("filter", string(filter)).Int("cards", len(projects)).Msg("Rendered grid")
}

// BindFilters registers a click handler on every filter control
func (r *Renderer) BindFilters() {
	for _, control := range r.controls {
		control := control // per-iteration copy (go 1.21 loop semantics)
		r.doc.On(control, dom.Click, func(*dom.Event) {
			r.Activate(control)
		})
	}
}

// Activate applies a filter control: re-render, mark it active and mirror
// the filter into the fragment without a new history entry
func (r *Renderer) Activate(control *html.Node) {
	value, _ := dom.Data(control, filterKey)
	r.Render(models.Filter(value))
	r.syncControls()
	r.win.Location.ReplaceFragment(value)
}

// Controls returns the filter controls found in the page
func (r *Renderer) Controls() []*html.Node {
	return r.controls
}

func (r *Renderer) syncControls() {
	for _, control := range r.controls {
		value, _ := dom.Data(control, filterKey)
		active := value == string(r.state.Filter)
		dom.ToggleClass(control, "active", active)
		dom.SetAttr(control, "aria-selected", strconv.FormatBool(active))
	}
}

func setIfPresent(n *html.Node, value string) {
	if n != nil && value != "" {
		dom.SetText(n, value)
	}
}
