package models

// Response statuses
const (
	StatusOK    = "ok"
	StatusError = "error"
)

// TrendsResponse is the /generate success body
type TrendsResponse struct {
	Status  string               `json:"status"`
	Results []RelatedQueryResult `json:"results"`
}

// ArticleResponse is the /fetch_article success body
type ArticleResponse struct {
	Status  string `json:"status"`
	Content string `json:"content"`
}

// ErrorResponse reports any failure on the proxy endpoints
type ErrorResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// NewErrorResponse wraps err in the uniform error body
func NewErrorResponse(err error) ErrorResponse {
	msg := err.Error()
	if msg == "" {
		msg = "unknown error"
	}
	return ErrorResponse{Status: StatusError, Message: msg}
}

// SearchResponse is the combined /api/v1/search body. Failed parts are null.
type SearchResponse struct {
	Success  bool                 `json:"success"`
	Keyword  string               `json:"keyword"`
	Interest *InterestSummary     `json:"interest"`
	Related  []RelatedQueryResult `json:"related"`
	News     []NewsGroup          `json:"news"`
}
