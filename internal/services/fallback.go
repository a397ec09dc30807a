package services

import "folio.dev/internal/models"

// FallbackPortfolio returns the sample shown when the data document cannot
// be loaded. It carries no owner so the page keeps its own header text.
func FallbackPortfolio() *models.Portfolio {
	return &models.Portfolio{
		Projects: []models.Project{
			{
				ID:          "sample-web",
				Type:        models.TypeWeb,
				Title:       "サンプルWebサイト",
				Description: "GitHub Pagesで公開する静的サイトのサンプルです。",
				URL:         "https://example.com",
				Tags:        []string{"HTML", "CSS", "Vanilla JS"},
			},
			{
				ID:           "sample-mobile",
				Type:         models.TypeMobile,
				Title:        "サンプルToDoアプリ",
				Description:  "Flutterで制作したシンプルなタスク管理アプリ。",
				PlayStoreURL: "https://play.google.com/store/apps/details?id=com.example.todo",
				AppStoreURL:  "https://apps.apple.com/jp/app/id0000000000",
				WebsiteURL:   "https://example.com/todo",
				Tags:         []string{"Flutter", "Dart"},
			},
		},
	}
}
