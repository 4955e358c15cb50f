package trends

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/bilgisen/trendportal/internal/models"
)

// ErrNoInterestData is returned when the timeline holds no usable value
var ErrNoInterestData = errors.New("no interest data")

// Traffic levels
const (
	TrafficHigh   = "high"
	TrafficMedium = "medium"
	TrafficLow    = "low"
)

type timelinePoint struct {
	Date   string `json:"date"`
	Values []struct {
		Query          string `json:"query"`
		ExtractedValue int    `json:"extracted_value"`
	} `json:"values"`
}

func parseTimeline(body []byte) ([]timelinePoint, error) {
	var envelope struct {
		InterestOverTime struct {
			TimelineData []timelinePoint `json:"timeline_data"`
		} `json:"interest_over_time"`
		Error string `json:"error"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("failed to parse interest response: %w", err)
	}
	if envelope.Error != "" && len(envelope.InterestOverTime.TimelineData) == 0 {
		return nil, fmt.Errorf("serpapi error: %s", envelope.Error)
	}
	return envelope.InterestOverTime.TimelineData, nil
}

func summarize(keyword string, points []timelinePoint) (*models.InterestSummary, error) {
	if len(points) == 0 || len(points[len(points)-1].Values) == 0 {
		return nil, ErrNoInterestData
	}

	latest := points[len(points)-1].Values[0].ExtractedValue
	previous := latest
	if len(points) > 1 && len(points[len(points)-2].Values) > 0 {
		previous = points[len(points)-2].Values[0].ExtractedValue
	}

	return &models.InterestSummary{
		Keyword: keyword,
		Source:  "Google Trends",
		Traffic: CategorizeTraffic(latest),
		Volume:  latest,
		Change:  FormatChange(previous, latest),
	}, nil
}

// CategorizeTraffic buckets a 0-100 interest value
func CategorizeTraffic(value int) string {
	switch {
	case value > 75:
		return TrafficHigh
	case value > 40:
		return TrafficMedium
	default:
		return TrafficLow
	}
}

// FormatChange renders the relative change from previous to latest as a signed percentage.
func FormatChange(previous, latest int) string {
	if previous <= 0 {
		return "+0.0%"
	}
	change := float64(latest-previous) / float64(previous) * 100
	return fmt.Sprintf("%+.1f%%", change)
}
