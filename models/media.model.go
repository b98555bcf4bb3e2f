package models

import "gorm.io/gorm"

type MediaType string

const (
	MediaImage    MediaType = "IMAGE"
	MediaVideo    MediaType = "VIDEO"
	MediaAudio    MediaType = "AUDIO"
	MediaDocument MediaType = "DOCUMENT"
	MediaOther    MediaType = "OTHER"
)

// MediaFile is the registry entry for an uploaded or externally hosted file.
type MediaFile struct {
	gorm.Model
	Filename         string    `json:"filename" gorm:"not null"`
	OriginalFilename string    `json:"original_filename"`
	FileType         string    `json:"file_type"` // MIME type
	FileSize         int64     `json:"file_size"`
	FileURL          string    `json:"file_url"`
	MediaType        MediaType `json:"media_type" gorm:"default:'OTHER'"`
	UploadedByID     uint      `json:"uploaded_by_id" gorm:"index"`
	CourseID         uint      `json:"course_id" gorm:"index"`
}

// MediaTypeFromMIME buckets a MIME type into the coarse media categories.
func MediaTypeFromMIME(mime string) MediaType {
	switch {
	case len(mime) >= 6 && mime[:6] == "image/":
		return MediaImage
	case len(mime) >= 6 && mime[:6] == "video/":
		return MediaVideo
	case len(mime) >= 6 && mime[:6] == "audio/":
		return MediaAudio
	case mime == "application/pdf" || mime == "text/plain":
		return MediaDocument
	default:
		return MediaOther
	}
}
