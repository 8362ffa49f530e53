package models

// Placeholders substituted for fields the book service leaves out.
const (
	NoTitle     = "No title"
	Unknown     = "Unknown"
	UnknownSize = "Unknown size"
)

// RawBook is a search entry exactly as the book service returns it.
// Any field may be empty.
type RawBook struct {
	ID             ExternalID `json:"id"`
	Hash           string     `json:"hash"`
	Title          string     `json:"title"`
	Author         string     `json:"author"`
	Extension      string     `json:"extension"`
	FilesizeString string     `json:"filesizeString"`
	Language       string     `json:"language"`
	Year           string     `json:"year"`
	Publisher      string     `json:"publisher"`
}

// Book is a normalized, read-only search result. ID and Hash together form
// the opaque handle used to request the book's file.
type Book struct {
	ID              ExternalID
	Hash            string
	Title           string
	Author          string
	Extension       string
	SizeDescription string
	Language        string
}

// BookFile is the content of a downloaded book together with the file name
// suggested by the service.
type BookFile struct {
	Name    string
	Content []byte
}
