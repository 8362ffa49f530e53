// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"
)

// ErrUserQuit is returned by prompts when the user interrupts input.
var ErrUserQuit = errors.New("user quit")

// NetworkUnavailableMessage replaces low-level transport errors in output.
const NetworkUnavailableMessage = "Network is unavailable or the service cannot be reached"

// Humanize turns err into a message fit for the terminal. Dial, DNS and
// timeout failures collapse into [NetworkUnavailableMessage].
func Humanize(err error) string {
	if err == nil {
		return ""
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") ||
		strings.Contains(s, "connection reset") {
		return NetworkUnavailableMessage
	}

	return err.Error()
}
