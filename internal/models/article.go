package models

import "time"

// ArticleRequest is the /fetch_article request body
type ArticleRequest struct {
	URL string `json:"url" validate:"required,url"`
}

// ArticleContent is the paragraph text extracted from a page
type ArticleContent struct {
	Content string `json:"content"`
}

// ArchivedArticle is what the archive keeps for a fetched page
type ArchivedArticle struct {
	ID        string    `json:"id"`
	URL       string    `json:"url"`
	Content   string    `json:"content"`
	Length    int       `json:"length"`
	FetchedAt time.Time `json:"fetched_at"`
	FilePath  string    `json:"file_path,omitempty"`
}

// NewsArticle is a single NewsAPI article
type NewsArticle struct {
	Title       string `json:"title"`
	URL         string `json:"url"`
	Source      string `json:"source"`
	Snippet     string `json:"snippet"`
	PublishedAt string `json:"published_at"`
	Image       string `json:"image,omitempty"`
}

// NewsGroup is the set of articles published by one source
type NewsGroup struct {
	Source   string        `json:"source"`
	Articles []NewsArticle `json:"articles"`
}

// NewsQuery selects NewsAPI articles
type NewsQuery struct {
	Keyword string `query:"keyword" validate:"required"`
}
