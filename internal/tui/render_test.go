package tui

import (
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-book-fetcher/models"
	"github.com/stretchr/testify/assert"
)

func TestRenderResults(t *testing.T) {
	out := RenderResults([]models.Book{
		{Title: "Dune", Author: "Frank Herbert", Extension: "epub", SizeDescription: "1.2 MB", Language: "english"},
		{Title: models.NoTitle, Author: models.Unknown, Extension: models.Unknown, SizeDescription: models.UnknownSize, Language: models.Unknown},
	})

	assert.Contains(t, out, "Found books:")
	assert.Contains(t, out, "1.")
	assert.Contains(t, out, "Dune")
	assert.Contains(t, out, "Frank Herbert")
	assert.Contains(t, out, "epub (1.2 MB)")
	assert.Contains(t, out, "english")
	assert.Contains(t, out, "2.")
	assert.Contains(t, out, "Unknown (Unknown size)")
	assert.Less(t, strings.Index(out, "Dune"), strings.Index(out, "No title"))
	assert.NotContains(t, out, "3.")
}

func TestRenderHistory(t *testing.T) {
	assert.Equal(t, "No downloads recorded yet.", RenderHistory(nil))

	out := RenderHistory([]models.DownloadRecord{
		{Title: "Dune", Author: "Frank Herbert", Extension: "epub", SavedPath: "/books/dune.epub", DownloadedAt: time.Now()},
	})

	assert.Contains(t, out, "Recent downloads:")
	assert.Contains(t, out, "Dune")
	assert.Contains(t, out, "/books/dune.epub")
	assert.Contains(t, out, "Saved to")
}

func TestRenderBuildInfo(t *testing.T) {
	out := RenderBuildInfo(models.NewAppBuildInfo("v1.0.0", "", "abc123"))

	assert.Contains(t, out, "go-book-fetcher")
	assert.Contains(t, out, "v1.0.0")
	assert.Contains(t, out, "N/A")
	assert.Contains(t, out, "abc123")
}
