package models

import "time"

// SourceFile is a candidate input document in the data directory.
type SourceFile struct {
	Name    string    `json:"name"`
	Path    string    `json:"path"`
	Size    int64     `json:"size"`
	ModTime time.Time `json:"mod_time"`
}
