package adapter

import "github.com/MKhiriev/go-book-fetcher/models"

// statusResponse is the envelope shared by every eAPI response.
type statusResponse struct {
	Success *int   `json:"success"`
	Error   string `json:"error"`
}

type loginResponse struct {
	statusResponse
	User models.Profile `json:"user"`
}

type profileResponse struct {
	statusResponse
	User models.Profile `json:"user"`
}

type searchResponse struct {
	statusResponse
	Books []models.RawBook `json:"books"`
}

type fileInfo struct {
	DownloadLink string `json:"downloadLink"`
	Description  string `json:"description"`
	Author       string `json:"author"`
	Extension    string `json:"extension"`
}

type fileResponse struct {
	statusResponse
	File fileInfo `json:"file"`
}
