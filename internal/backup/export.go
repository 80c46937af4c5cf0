package backup

import "time"

// Export is the full-backup JSON payload, a Backup plus manifest
// fields.
type Export struct {
	Backup
	ExportDate string `json:"exportDate"`
	Version    string `json:"version"`
}

func NewExport(b Backup) Export {
	return Export{
		Backup:     b,
		ExportDate: time.Now().UTC().Format(time.RFC3339),
		Version:    archiveVersion,
	}
}
