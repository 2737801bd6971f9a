// internal/models/attachment.go
package models

// Attachment limits.
const (
	MaxAttachmentsPerTask = 5
	MaxFileSizeBytes      = 5242880 // 5 MiB inclusive
)

// AllowedFileType reports whether the file type is on the allow-list.
func AllowedFileType(fileType string) bool {
	switch fileType {
	case "pdf", "doc", "docx", "jpg", "png":
		return true
	default:
		return false
	}
}
