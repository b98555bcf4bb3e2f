package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEmailTemplate_EmbedsTitleAndBody(t *testing.T) {
	html := EmailTemplate("Weekly Digest", "<p>5 new enrollments</p>")

	assert.True(t, strings.Contains(html, "<h1>Weekly Digest</h1>"))
	assert.True(t, strings.Contains(html, "<p>5 new enrollments</p>"))
	assert.True(t, strings.Contains(html, "Dharma Academy"))
}
