package models

import "time"

// DownloadOutcome is the result of a successful download.
type DownloadOutcome struct {
	SavedPath string
}

// DownloadRecord is one entry of the local download history.
type DownloadRecord struct {
	ID           string
	BookID       ExternalID
	Title        string
	Author       string
	Extension    string
	SavedPath    string
	DownloadedAt time.Time
}

// TableName returns the name of the database table
// associated with the DownloadRecord model.
func (d DownloadRecord) TableName() string {
	return "downloads"
}
