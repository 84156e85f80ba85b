package models

import "time"

// Spot is a surf spot on the Lake Superior shore.
type Spot struct {
	ID          string    `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	Latitude    float64   `json:"latitude" db:"latitude"`
	Longitude   float64   `json:"longitude" db:"longitude"`
	Geohash     string    `json:"geohash" db:"geohash"`
	Description string    `json:"description,omitempty" db:"description"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

// NearbySpot is a spot plus its distance from a query point.
type NearbySpot struct {
	Spot
	DistanceKm float64 `json:"distance_km"`
}
