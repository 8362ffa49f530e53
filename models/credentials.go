// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// ExternalID is an opaque identifier issued by the book service.
//
// The service encodes identifiers as JSON numbers, while older cache files and
// some endpoints carry them as strings. ExternalID accepts both forms and
// writes values that form a valid JSON integer back as a number so that files
// stay readable by other tools sharing the same credential cache. Everything
// else, including digits with a leading zero, is written as a string.
type ExternalID string

// String returns the identifier as plain text.
func (id ExternalID) String() string {
	return string(id)
}

// IsZero reports whether the identifier is empty.
func (id ExternalID) IsZero() bool {
	return strings.TrimSpace(string(id)) == ""
}

// UnmarshalJSON implements [json.Unmarshaler].
func (id *ExternalID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*id = ""
		return nil
	}

	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*id = ExternalID(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("external id must be a string or a number: %w", err)
	}
	*id = ExternalID(n.String())
	return nil
}

// MarshalJSON implements [json.Marshaler].
func (id ExternalID) MarshalJSON() ([]byte, error) {
	if isJSONInteger(string(id)) {
		return []byte(id), nil
	}
	return json.Marshal(string(id))
}

func isJSONInteger(s string) bool {
	if s == "0" {
		return true
	}
	return s != "" && s[0] != '0' && isDigits(s)
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// Credentials is the reusable session token pair issued by the book service.
// It is persisted as a single record in the local credential cache.
type Credentials struct {
	// UserID is the stable account identifier (remix_userid cookie).
	UserID ExternalID `json:"remix_userid"`

	// UserKey is the session key bound to UserID (remix_userkey cookie).
	UserKey string `json:"remix_userkey"`
}

// Complete reports whether both halves of the pair are present.
// Incomplete credentials must never be trusted.
func (c Credentials) Complete() bool {
	return !c.UserID.IsZero() && strings.TrimSpace(c.UserKey) != ""
}
