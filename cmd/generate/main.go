package main

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/joho/godotenv/autoload"

	"folio.dev/internal/config"
	"folio.dev/internal/logger"
	"folio.dev/internal/models"
	"folio.dev/internal/services"
)

// pageVariants maps output files to the fragment they are rendered with
var pageVariants = []struct {
	File     string
	Fragment string
}{
	{File: "index.html", Fragment: ""},
	{File: "web.html", Fragment: string(models.FilterWeb)},
	{File: "mobile.html", Fragment: string(models.FilterMobile)},
	{File: "all.html", Fragment: string(models.FilterAll)},
}

func main() {
	if len(os.Args) < 3 {
		fmt.Println("Usage: generate <site-dir> <output-dir>")
		os.Exit(1)
	}

	siteDir, outputDir := os.Args[1], os.Args[2]

	cfg, err := config.Load(os.Getenv("PORTFOLIO_CONFIG"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	if err := logger.Initialize(&cfg.Log); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.CloseGlobal()

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create output directory: %v\n", err)
		os.Exit(1)
	}

	written, err := Generate(context.Background(), siteDir, outputDir, cfg.Site)
	for _, name := range written {
		fmt.Printf("  Created %s\n", name)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "  ERROR: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Done!")
}

// Generate renders one page per variant from siteDir into outputDir, copies
// the site assets next to them and returns the files written
func Generate(ctx context.Context, siteDir, outputDir string, site config.SiteConfig) ([]string, error) {
	src, err := os.ReadFile(filepath.Join(siteDir, site.Page))
	if err != nil {
		return nil, fmt.Errorf("failed to read page: %w", err)
	}

	projects := services.NewProjectService(services.NewFileClient(siteDir), site.DataPath)

	var written []string
	for _, v := range pageVariants {
		location := "file:///" + site.Page
		if v.Fragment != "" {
			location += "#" + v.Fragment
		}

		page, err := services.OpenPage(ctx, bytes.NewReader(src), location, projects,
			services.WithDefaultFilter(models.Filter(site.DefaultFilter)))
		if err != nil {
			return written, fmt.Errorf("failed to open %s: %w", v.File, err)
		}

		var buf bytes.Buffer
		if err := page.Render(&buf); err != nil {
			return written, fmt.Errorf("failed to render %s: %w", v.File, err)
		}

		if err := os.WriteFile(filepath.Join(outputDir, v.File), buf.Bytes(), 0644); err != nil {
			return written, fmt.Errorf("failed to write %s: %w", v.File, err)
		}
		written = append(written, v.File)
	}

	for _, asset := range site.Assets {
		name := filepath.Join("static", asset)
		if err := copyFile(filepath.Join(siteDir, asset), filepath.Join(outputDir, name)); err != nil {
			return written, fmt.Errorf("failed to copy %s: %w", asset, err)
		}
		written = append(written, name)
	}

	return written, nil
}

func copyFile(src, dst string) error {
	data, err := os.ReadFile(src)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return err
	}
	return os.WriteFile(dst, data, 0644)
}
