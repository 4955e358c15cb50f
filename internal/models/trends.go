package models

import "strings"

// Default trend query values applied to omitted fields
const (
	DefaultKeyword   = "news"
	DefaultCountry   = "IN"
	DefaultCategory  = "0"
	DefaultTimeframe = "now 1-d"
)

const googleSearchURL = "https://www.google.com/search?q="

// TrendQueryParams is the caller-supplied related-queries lookup
type TrendQueryParams struct {
	Keyword   string `json:"keyword"`
	Country   string `json:"country"`
	Category  string `json:"category"`
	Timeframe string `json:"timeframe"`
}

// TrendQueryRequest is the /generate request body. Absent or null fields are nil.
type TrendQueryRequest struct {
	Keyword   *string `json:"keyword"`
	Country   *string `json:"country"`
	Category  *string `json:"category"`
	Timeframe *string `json:"timeframe"`
}

// Params resolves the request against the defaults. An explicit empty string is kept.
func (r TrendQueryRequest) Params() TrendQueryParams {
	return TrendQueryParams{
		Keyword:   valueOr(r.Keyword, DefaultKeyword),
		Country:   valueOr(r.Country, DefaultCountry),
		Category:  valueOr(r.Category, DefaultCategory),
		Timeframe: valueOr(r.Timeframe, DefaultTimeframe),
	}
}

func valueOr(v *string, def string) string {
	if v == nil {
		return def
	}
	return *v
}

// RelatedQueryResult is one related query with a web-search link
type RelatedQueryResult struct {
	Title string `json:"title"`
	Link  string `json:"link"`
}

// NewRelatedQueryResult builds a result whose link is a literal search URL with spaces as "+".
func NewRelatedQueryResult(title string) RelatedQueryResult {
	return RelatedQueryResult{
		Title: title,
		Link:  googleSearchURL + strings.ReplaceAll(title, " ", "+"),
	}
}

// NoDataResult is returned alone when the upstream produced no related queries
var NoDataResult = RelatedQueryResult{Title: "No data found", Link: "#"}

// InterestSummary condenses an interest-over-time series into its latest movement
type InterestSummary struct {
	Keyword string `json:"keyword"`
	Source  string `json:"source"`
	Traffic string `json:"traffic"`
	Volume  int    `json:"volume"`
	Change  string `json:"change"`
}

// Default interest-over-time query values
const (
	DefaultInterestGeo  = "US"
	DefaultInterestTime = "now 7-d"
)

// InterestQuery selects an interest-over-time series
type InterestQuery struct {
	Keyword  string `query:"keyword" validate:"required"`
	Geo      string `query:"geo"`
	Time     string `query:"time"`
	Category string `query:"category" validate:"omitempty,numeric"`
}

// WithDefaults fills empty optional fields
func (q InterestQuery) WithDefaults() InterestQuery {
	if q.Geo == "" {
		q.Geo = DefaultInterestGeo
	}
	if q.Time == "" {
		q.Time = DefaultInterestTime
	}
	if q.Category == "" {
		q.Category = DefaultCategory
	}
	return q
}

// RelatedParams maps the search query onto a related-queries lookup
func (q InterestQuery) RelatedParams() TrendQueryParams {
	return TrendQueryParams{
		Keyword:   q.Keyword,
		Country:   q.Geo,
		Category:  q.Category,
		Timeframe: q.Time,
	}
}
