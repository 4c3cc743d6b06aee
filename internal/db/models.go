// Package db provides read-only SQLite access to captured session descriptions.
package db

import "time"

// Description is one captured session description. List leaves SDP empty.
type Description struct {
	ID         string    `json:"id" yaml:"id"`
	Label      string    `json:"label,omitempty" yaml:"label,omitempty"`
	Kind       string    `json:"kind,omitempty" yaml:"kind,omitempty"`
	SDP        string    `json:"sdp,omitempty" yaml:"sdp,omitempty"`
	CapturedAt time.Time `json:"capturedAt" yaml:"capturedAt"`
}
