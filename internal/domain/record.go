package domain

import "time"

// Record is one uploaded document with its audience and lifecycle metadata.
// FileContent is an opaque locator (a public URL), never the bytes.
type Record struct {
	ID          int64      `json:"id"`
	Title       string     `json:"title"`
	Type        RecordType `json:"type"`
	Description string     `json:"description"`
	FileName    string     `json:"fileName"`
	FileContent string     `json:"fileContent"`
	Visibility  Visibility `json:"visibility"`
	UploadDate  time.Time  `json:"uploadDate"`
	Archived    bool       `json:"archived"`
}

// DeletedRecord is what remains observable after a hard delete.
type DeletedRecord struct {
	ID          int64  `json:"id"`
	FileContent string `json:"fileContent"`
}

// BlobInfo describes one object found in the object store.
type BlobInfo struct {
	Key     string
	Created time.Time
}

// SyncReport summarizes one reconciliation pass.
type SyncReport struct {
	Listed     int `json:"listed"`
	Added      int `json:"added"`
	Tombstoned int `json:"tombstoned"`
	Known      int `json:"known"`
	Malformed  int `json:"malformed"`
	Failed     int `json:"failed"`
	Seeded     int `json:"seeded"`
}
