package domain

import "time"

// ManifestEntry records one exported artifact for downstream packaging.
type ManifestEntry struct {
	Target        string        `json:"target"`
	Configuration Configuration `json:"configuration"`
	Path          string        `json:"path"`
	Checksum      string        `json:"checksum"`
	Timestamp     time.Time     `json:"timestamp"`
}
