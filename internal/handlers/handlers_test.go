package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"folio.dev/internal/config"
	"folio.dev/internal/models"
	"folio.dev/internal/services"
)

const sitePage = `<!doctype html>
<html><body>
<h1 id="owner-name">Name</h1>
<button class="filter-btn" data-filter="web">Web</button>
<button class="filter-btn" data-filter="mobile">Mobile</button>
<div id="portfolio-grid"></div>
</body></html>`

const siteData = `{
	"owner": {"name": "Jane"},
	"projects": [{"id": "p1", "type": "web", "title": "Site", "url": "https://x.test", "tags": ["TS"]}]
}`

func newSite(t *testing.T, data string) *config.Config {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte(sitePage), 0644))
	if data != "" {
		require.NoError(t, os.MkdirAll(filepath.Join(dir, "data"), 0755))
		require.NoError(t, os.WriteFile(filepath.Join(dir, "data", "portfolio.json"), []byte(data), 0644))
	}

	cfg := config.Default()
	cfg.Site.Dir = dir
	return &cfg
}

func serve(t *testing.T, cfg *config.Config, target string) *httptest.ResponseRecorder {
	t.Helper()
	router, err := SetupRoutes(cfg)
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestServePage(t *testing.T) {
	cfg := newSite(t, siteData)

	rec := serve(t, cfg, "/")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))

	body := rec.Body.String()
	assert.Contains(t, body, `<h1 id="owner-name">Jane</h1>`)
	assert.Contains(t, body, `href="https://x.test"`)
	assert.Contains(t, body, `<span class="badge">TS</span>`)
	assert.Contains(t, body, `<button class="filter-btn active" data-filter="web" aria-selected="true">`)
	assert.Contains(t, body, `<button class="filter-btn" data-filter="mobile" aria-selected="false">`)

	rec = serve(t, cfg, "/?filter=mobile")
	require.Equal(t, http.StatusOK, rec.Code)
	body = rec.Body.String()
	assert.Contains(t, body, services.EmptyTitle)
	assert.NotContains(t, body, `href="https://x.test"`)
	assert.Contains(t, body, `<button class="filter-btn active" data-filter="mobile" aria-selected="true">`)
}

func TestServePage_FallbackWhenDataMissing(t *testing.T) {
	cfg := newSite(t, "")

	rec := serve(t, cfg, "/?filter=all")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "サンプルWebサイト")
	assert.Contains(t, rec.Body.String(), "サンプルToDoアプリ")
}

func TestServePage_MissingPage(t *testing.T) {
	cfg := newSite(t, siteData)
	cfg.Site.Page = "missing.html"

	rec := serve(t, cfg, "/")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error": "Page unavailable"}`, rec.Body.String())
}

func TestProjectsAPI(t *testing.T) {
	cfg := newSite(t, siteData)

	rec := serve(t, cfg, "/api/projects")
	require.Equal(t, http.StatusOK, rec.Code)
	var projects []models.Project
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &projects))
	require.Len(t, projects, 1)
	assert.Equal(t, "p1", projects[0].ID)

	rec = serve(t, cfg, "/api/projects/p1")
	require.Equal(t, http.StatusOK, rec.Code)
	var project models.Project
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &project))
	assert.Equal(t, "Site", project.Title)

	rec = serve(t, cfg, "/api/projects/nope")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error": "Project not found"}`, rec.Body.String())
}

func TestHealthAndStatic(t *testing.T) {
	cfg := newSite(t, siteData)

	rec := serve(t, cfg, "/api/health")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status": "ok"}`, rec.Body.String())

	rec = serve(t, cfg, "/data/portfolio.json")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, siteData, rec.Body.String())

	rec = serve(t, cfg, "/static/index.html")
	assert.Equal(t, http.StatusMovedPermanently, rec.Code, "file server redirects index.html to its directory")
}

func TestPageURL(t *testing.T) {
	u, err := PageURL(config.SiteConfig{Page: "index.html"})
	require.NoError(t, err)
	assert.Equal(t, "file:///index.html", u.String())

	u, err = PageURL(config.SiteConfig{Page: "index.html", DataBaseURL: "https://cdn.test/site/"})
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.test/site/index.html", u.String())
}
