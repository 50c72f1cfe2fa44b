package models

import (
	"fmt"
	"time"
)

// Feed-related structures
type Feed struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Description string       `json:"description,omitempty"`
	Tags        []string     `json:"tags,omitempty"`
	Visibility  string       `json:"visibility"`
	Status      string       `json:"status"`
	Key         string       `json:"key,omitempty"`
	Location    *Location    `json:"location,omitempty"`
	Datastreams []Datastream `json:"datastreams,omitempty"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}

type Location struct {
	Name        string     `json:"name,omitempty"`
	Latitude    float64    `json:"lat"`
	Longitude   float64    `json:"lon"`
	Elevation   string     `json:"ele,omitempty"`
	Domain      string     `json:"domain,omitempty"`
	Exposure    string     `json:"exposure,omitempty"`
	Disposition string     `json:"disposition,omitempty"`
	Waypoints   []Waypoint `json:"waypoints,omitempty"`
}

type Waypoint struct {
	At        time.Time `json:"at"`
	Latitude  float64   `json:"lat"`
	Longitude float64   `json:"lon"`
}

// Datastream-related structures
type Datastream struct {
	Name         string      `json:"name"`
	Unit         *Unit       `json:"unit,omitempty"`
	Tags         []string    `json:"tags,omitempty"`
	CurrentValue string      `json:"current_value,omitempty"`
	At           time.Time   `json:"at"`
	MinValue     string      `json:"min_value,omitempty"`
	MaxValue     string      `json:"max_value,omitempty"`
	Datapoints   []Datapoint `json:"datapoints,omitempty"`
}

type Unit struct {
	Label  string `json:"label"`
	Symbol string `json:"symbol,omitempty"`
	Type   string `json:"type,omitempty"`
}

type Datapoint struct {
	At    time.Time `json:"at"`
	Value string    `json:"value"`
}

// Trigger-related structures
type Trigger struct {
	ID         string    `json:"id"`
	FeedID     string    `json:"feed_id"`
	StreamName string    `json:"stream_name"`
	Type       string    `json:"type"`
	Threshold  float64   `json:"threshold_value,omitempty"`
	NotifyURL  string    `json:"notify_url"`
	CreatedAt  time.Time `json:"created_at"`
}

// Key-related structures
type Key struct {
	Token         string       `json:"key"`
	Label         string       `json:"label"`
	PrivateAccess bool         `json:"private_access"`
	ExpiresAt     *time.Time   `json:"expires_at,omitempty"`
	Permissions   []Permission `json:"permissions,omitempty"`
}

type Permission struct {
	Label         string     `json:"label,omitempty"`
	AccessMethods []string   `json:"access_methods"`
	Resources     []Resource `json:"resources,omitempty"`
}

type Resource struct {
	FeedID     string `json:"feed_id,omitempty"`
	StreamName string `json:"stream_name,omitempty"`
}

// Access-log structures
type AccessLogEntry struct {
	At         time.Time `json:"at"`
	Method     string    `json:"method"`
	Path       string    `json:"path"`
	Status     int       `json:"status"`
	APIKey     string    `json:"api_key,omitempty"`
	RemoteAddr string    `json:"remote_addr,omitempty"`
}

// Platform status
type Status struct {
	Status  string    `json:"status"`
	Version string    `json:"version"`
	Time    time.Time `json:"time"`
}

// Helper methods
func (d Datapoint) FormatAt() string {
	return fmt.Sprintf("%s (%s ago)", d.At.Format(time.RFC3339), time.Since(d.At).Round(time.Second))
}

func (k Key) FormatExpiresAt() string {
	if k.ExpiresAt == nil {
		return "never"
	}
	return k.ExpiresAt.Format(time.RFC3339)
}
