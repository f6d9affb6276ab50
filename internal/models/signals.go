package models

import (
	"time"

	"github.com/google/uuid"
)

// NewsCategory controls the base impact of a news item on the news signal.
type NewsCategory string

const (
	NewsEmergency NewsCategory = "emergency"
	NewsAlert     NewsCategory = "alert"
	NewsSafety    NewsCategory = "safety"
	NewsOther     NewsCategory = "other"
)

// NewsItem is a safety-tagged news record. News carries no location in the
// source model, so only temporal decay applies to it.
type NewsItem struct {
	ID          uuid.UUID    `json:"id"`
	Title       string       `json:"title"`
	Category    NewsCategory `json:"category"`
	PublishedAt time.Time    `json:"published_at"`
}

// ResponderPost is a fixed police or emergency-responder station.
type ResponderPost struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
}

// Location returns the post coordinate as a GeoPoint.
func (p *ResponderPost) Location() GeoPoint {
	return GeoPoint{Latitude: p.Latitude, Longitude: p.Longitude}
}
