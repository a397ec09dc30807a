package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/samber/lo"
)

// Project categories
const (
	TypeWeb    = "web"
	TypeMobile = "mobile"
)

// Project represents a portfolio project
type Project struct {
	ID           string   `json:"id"`
	Type         string   `json:"type"`
	Title        string   `json:"title"`
	Description  string   `json:"description,omitempty"`
	Tags         []string `json:"tags,omitempty"`
	Image        string   `json:"image,omitempty"`
	URL          string   `json:"url,omitempty"`
	AppStoreURL  string   `json:"appStoreUrl,omitempty"`
	PlayStoreURL string   `json:"playStoreUrl,omitempty"`
	WebsiteURL   string   `json:"websiteUrl,omitempty"`
}

// LinkURL returns the target of a web card
func (p Project) LinkURL() string {
	if p.URL == "" {
		return "#"
	}
	return p.URL
}

// PrimaryURL returns the whole-card target of a mobile card, or "" if none
func (p Project) PrimaryURL() string {
	switch {
	case p.WebsiteURL != "":
		return p.WebsiteURL
	case p.AppStoreURL != "":
		return p.AppStoreURL
	default:
		return p.PlayStoreURL
	}
}

// Owner holds the profile fields shown in the page header
type Owner struct {
	Name  string `json:"name,omitempty"`
	Role  string `json:"role,omitempty"`
	Intro string `json:"intro,omitempty"`
}

// Portfolio is the data document served at data/portfolio.json
type Portfolio struct {
	Owner    *Owner    `json:"owner,omitempty"`
	Projects []Project `json:"projects"`
}

// ErrNotObject is returned when the document root is not a JSON object
var ErrNotObject = errors.New("portfolio document is not a JSON object")

// UnmarshalJSON tolerates a non-object owner and a non-array projects
// field; both are treated as absent.
func (p *Portfolio) UnmarshalJSON(data []byte) error {
	if !isKind(data, '{') {
		return ErrNotObject
	}

	var raw struct {
		Owner    json.RawMessage `json:"owner"`
		Projects json.RawMessage `json:"projects"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	p.Owner = nil
	p.Projects = []Project{}

	if isKind(raw.Owner, '{') {
		var owner Owner
		if err := json.Unmarshal(raw.Owner, &owner); err != nil {
			return err
		}
		p.Owner = &owner
	}

	if isKind(raw.Projects, '[') {
		if err := json.Unmarshal(raw.Projects, &p.Projects); err != nil {
			return err
		}
	}

	return nil
}

// FindProject returns the project with the given id
func (p *Portfolio) FindProject(id string) (*Project, error) {
	project, found := lo.Find(p.Projects, func(pr Project) bool {
		return pr.ID == id
	})
	if !found {
		return nil, fmt.Errorf("project not found: %s", id)
	}
	return &project, nil
}

func isKind(data json.RawMessage, open byte) bool {
	trimmed := bytes.TrimSpace(data)
	return len(trimmed) > 0 && trimmed[0] == open
}
