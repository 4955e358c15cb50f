package trends

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/bilgisen/trendportal/internal/models"
)

type relatedQueries struct {
	results       []models.RelatedQueryResult
	upstreamError string
}

// parseRelatedQueries reads the related_queries field of a SerpApi body. It
// accepts a plain array of entries or the {"top": [...], "rising": [...]}
// object, in which case top entries come first. Entries without a "query"
// key are skipped; a "query" that is not a string is an error.
func parseRelatedQueries(body []byte) (relatedQueries, error) {
	var envelope struct {
		RelatedQueries json.RawMessage `json:"related_queries"`
		Error          string          `json:"error"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return relatedQueries{}, fmt.Errorf("failed to parse trends response: %w", err)
	}

	entries, err := relatedEntries(envelope.RelatedQueries)
	if err != nil {
		return relatedQueries{}, err
	}

	out := relatedQueries{upstreamError: envelope.Error}
	for i, entry := range entries {
		var fields map[string]json.RawMessage
		if err := json.Unmarshal(entry, &fields); err != nil {
			continue
		}

		raw, ok := fields["query"]
		if !ok {
			continue
		}

		title, err := decodeQuery(raw)
		if err != nil {
			return relatedQueries{}, fmt.Errorf("related query %d: %w", i, err)
		}
		out.results = append(out.results, models.NewRelatedQueryResult(title))
	}

	return out, nil
}

func relatedEntries(raw json.RawMessage) ([]json.RawMessage, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return nil, nil
	}

	switch raw[0] {
	case '[':
		var entries []json.RawMessage
		if err := json.Unmarshal(raw, &entries); err != nil {
			return nil, fmt.Errorf("failed to parse related_queries: %w", err)
		}
		return entries, nil
	case '{':
		var grouped struct {
			Top    []json.RawMessage `json:"top"`
			Rising []json.RawMessage `json:"rising"`
		}
		if err := json.Unmarshal(raw, &grouped); err != nil {
			return nil, fmt.Errorf("failed to parse related_queries: %w", err)
		}
		return append(grouped.Top, grouped.Rising...), nil
	default:
		return nil, nil
	}
}

func decodeQuery(raw json.RawMessage) (string, error) {
	if bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		return "", fmt.Errorf("query is null")
	}
	var title string
	if err := json.Unmarshal(raw, &title); err != nil {
		return "", fmt.Errorf("query is not a string: %w", err)
	}
	return title, nil
}
