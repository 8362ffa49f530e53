package models

// Profile is the account view returned by the book service once a session
// has been accepted.
type Profile struct {
	ID             ExternalID `json:"id"`
	Email          string     `json:"email"`
	Name           string     `json:"name"`
	UserKey        string     `json:"remix_userkey"`
	DownloadsToday int        `json:"downloads_today"`
	DownloadsLimit int        `json:"downloads_limit"`
}

// Credentials projects the profile onto the token pair that is cached
// locally for future runs.
func (p Profile) Credentials() Credentials {
	return Credentials{UserID: p.ID, UserKey: p.UserKey}
}
