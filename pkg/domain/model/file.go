package model

import (
	"time"

	"github.com/maham-hq/maham/pkg/domain/types"
)

// FileAttachment represents metadata of a file uploaded against a task.
// The payload itself lives in the object storage boundary under ObjectPath.
type FileAttachment struct {
	ID           types.FileID
	Name         string
	MimeCategory types.MimeCategory
	SizeBytes    int64
	UploadedBy   string // uploader display name
	UploadedAt   time.Time
	TaskID       types.TaskID
	TaskTitle    string
	ObjectPath   string
}
