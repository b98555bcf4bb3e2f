package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMediaTypeFromMIME(t *testing.T) {
	tests := []struct {
		mime string
		want MediaType
	}{
		{"image/png", MediaImage},
		{"image/jpeg", MediaImage},
		{"video/mp4", MediaVideo},
		{"audio/mpeg", MediaAudio},
		{"application/pdf", MediaDocument},
		{"text/plain", MediaDocument},
		{"application/octet-stream", MediaOther},
		{"", MediaOther},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, MediaTypeFromMIME(tt.mime), tt.mime)
	}
}
