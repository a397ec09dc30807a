package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/rs/zerolog"

	"folio.dev/internal/dom"
	"folio.dev/internal/logger"
	"folio.dev/internal/models"
)

var utf8BOM = []byte("\ufeff")

// ProjectService fetches the portfolio document relative to a page
type ProjectService struct {
	client   *http.Client
	dataPath string
	log      zerolog.Logger
}

// NewProjectService creates a ProjectService fetching dataPath, relative to
// the page address, through client
func NewProjectService(client *http.Client, dataPath string) *ProjectService {
	if client == nil {
		client = http.DefaultClient
	}
	return &ProjectService{
		client:   client,
		dataPath: dataPath,
		log:      logger.GetLoaderLogger(),
	}
}

// NewFileClient returns a client that answers file:// requests from dir
func NewFileClient(dir string) *http.Client {
	t := &http.Transport{}
	t.RegisterProtocol("file", http.NewFileTransport(http.Dir(dir)))
	return &http.Client{Transport: t}
}

// Fetch retrieves and decodes the data document, bypassing caches
func (s *ProjectService) Fetch(ctx context.Context, page *dom.Location) (*models.Portfolio, error) {
	target, err := page.Resolve(s.dataPath)
	if err != nil {
		return nil, fmt.Errorf("invalid data path: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Cache-Control", "no-cache")
	req.Header.Set("Pragma", "no-cache")
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", target, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("failed to fetch %s: HTTP %d", target, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", target, err)
	}

	// The whole body must be a single JSON value
	var portfolio models.Portfolio
	if err := json.Unmarshal(bytes.TrimPrefix(body, utf8BOM), &portfolio); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", target, err)
	}

	return &portfolio, nil
}

// Load fetches the data document. Failures are logged and replaced by the
// fallback portfolio; ok reports whether the real document was used.
func (s *ProjectService) Load(ctx context.Context, page *dom.Location) (portfolio *models.Portfolio, ok bool) {
	portfolio, err := s.Fetch(ctx, page)
	if err != nil {
		s.log.Warn().Err(err).Msg("データの読み込みに失敗しました。サンプルデータを表示します。")
		return FallbackPortfolio(), false
	}
	s.log.Debug().Int("projects", len(portfolio.Projects)).Msg("Loaded portfolio")
	return portfolio, true
}
