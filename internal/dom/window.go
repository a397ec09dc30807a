package dom

import (
	"fmt"
	"net/url"
)

// Location is the page address. Fragment changes made through
// ReplaceFragment never add history entries.
type Location struct {
	url     *url.URL
	history []string
}

// NewLocation parses the page address
func NewLocation(raw string) (*Location, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid page location %q: %w", raw, err)
	}
	return &Location{url: u, history: []string{u.String()}}, nil
}

// Fragment returns the fragment without the leading '#'
func (l *Location) Fragment() string {
	return l.url.Fragment
}

// ReplaceFragment rewrites the fragment in place
func (l *Location) ReplaceFragment(fragment string) {
	l.url.Fragment = fragment
	l.history[len(l.history)-1] = l.url.String()
}

// HistoryLength returns the number of history entries
func (l *Location) HistoryLength() int {
	return len(l.history)
}

// Resolve resolves a reference relative to the page address
func (l *Location) Resolve(ref string) (*url.URL, error) {
	r, err := url.Parse(ref)
	if err != nil {
		return nil, fmt.Errorf("invalid reference %q: %w", ref, err)
	}
	return l.url.ResolveReference(r), nil
}

// String returns the full address
func (l *Location) String() string {
	return l.url.String()
}

// Navigation records one request to open a browsing context
type Navigation struct {
	URL      string
	Target   string
	Features string
}

// Window owns the location and collects navigations opened from the page
type Window struct {
	Location *Location
	opened   []Navigation
}

// NewWindow creates a window showing loc
func NewWindow(loc *Location) *Window {
	return &Window{Location: loc}
}

// Open requests a new browsing context
func (w *Window) Open(rawURL, target, features string) {
	w.opened = append(w.opened, Navigation{URL: rawURL, Target: target, Features: features})
}

// Opened returns the navigations requested so far
func (w *Window) Opened() []Navigation {
	return append([]Navigation(nil), w.opened...)
}
