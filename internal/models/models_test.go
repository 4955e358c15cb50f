package models

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewRelatedQueryResultLink(t *testing.T) {
	tests := []struct {
		title string
		want  string
	}{
		{title: "AI news", want: "https://www.google.com/search?q=AI+news"},
		{title: "single", want: "https://www.google.com/search?q=single"},
		{title: "a  b", want: "https://www.google.com/search?q=a++b"},
		{title: "c++ & go", want: "https://www.google.com/search?q=c+++&+go"},
		{title: "", want: "https://www.google.com/search?q="},
	}

	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			got := NewRelatedQueryResult(tt.title)
			require.Equal(t, tt.title, got.Title)
			require.Equal(t, tt.want, got.Link)
		})
	}
}

func TestTrendQueryRequestDefaults(t *testing.T) {
	var req TrendQueryRequest
	require.NoError(t, json.Unmarshal([]byte(`{"keyword":"AI","country":"US"}`), &req))

	require.Equal(t, TrendQueryParams{
		Keyword:   "AI",
		Country:   "US",
		Category:  "0",
		Timeframe: "now 1-d",
	}, req.Params())
}

func TestTrendQueryRequestAllDefaults(t *testing.T) {
	var req TrendQueryRequest
	require.NoError(t, json.Unmarshal([]byte(`{"keyword":null}`), &req))

	require.Equal(t, TrendQueryParams{
		Keyword:   DefaultKeyword,
		Country:   DefaultCountry,
		Category:  DefaultCategory,
		Timeframe: DefaultTimeframe,
	}, req.Params())
}

func TestTrendQueryRequestKeepsExplicitEmpty(t *testing.T) {
	var req TrendQueryRequest
	require.NoError(t, json.Unmarshal([]byte(`{"country":""}`), &req))
	require.Equal(t, "", req.Params().Country)
}

func TestArticleResponseKeepsEmptyContent(t *testing.T) {
	// The content field must be present even when nothing was extracted
	data, err := json.Marshal(ArticleResponse{Status: StatusOK})
	require.NoError(t, err)
	require.JSONEq(t, `{"status":"ok","content":""}`, string(data))
}

func TestNewErrorResponse(t *testing.T) {
	resp := NewErrorResponse(errors.New("boom"))
	require.Equal(t, ErrorResponse{Status: "error", Message: "boom"}, resp)

	resp = NewErrorResponse(errors.New(""))
	require.NotEmpty(t, resp.Message)
}
