// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the prompts and messages shown to the user by the
// session service and the interactive controller.
//
// Prompt* constants are passed to the terminal as input prompts; Msg*
// constants are printed as they are. Constants ending in "Prefix" are
// followed by a value (a title, a path, an error description).
package app

// Login prompts and messages.
const (
	// PromptEmail asks for the account email.
	PromptEmail = "Enter your email: "

	// PromptPassword asks for the account password; it is read without echo.
	PromptPassword = "Enter your password: "

	// PromptRetryLogin is shown after a failed login attempt. Only "y" and
	// "yes" continue.
	PromptRetryLogin = "Would you like to try again? (y/n): "

	// MsgCachedLogin is printed when the credential cache produced a live
	// session.
	MsgCachedLogin = "Successfully logged in using saved credentials!"

	// MsgCachedInvalid is printed when cached credentials were rejected.
	MsgCachedInvalid = "Saved credentials are invalid. Please log in again."

	// MsgLoginSaved is printed after an interactive login whose credentials
	// were written to the cache.
	MsgLoginSaved = "Login successful! Credentials saved for future use."

	// MsgLoginNotSaved replaces MsgLoginSaved when the cache write failed.
	MsgLoginNotSaved = "Warning: credentials could not be saved, you will be asked to log in next time."

	// MsgLoginErrorPrefix precedes the description of a failed attempt.
	MsgLoginErrorPrefix = "Login error: "

	// MsgUnableToLogin is printed before the process exits on an abandoned
	// or failed login.
	MsgUnableToLogin = "Unable to log in. Exiting..."
)

// Search and download prompts and messages.
const (
	// PromptQuery asks for the next search. QuitCommand ends the loop.
	PromptQuery = "Enter book title to search (or 'quit' to exit): "

	// QuitCommand is the case-insensitive input that ends interactive mode.
	QuitCommand = "quit"

	// PromptSelection asks for a 1-based result number; "0" goes back to
	// PromptQuery.
	PromptSelection = "Enter the number of the book to download (or 0 to search again): "

	// MsgNoBooksPrefix precedes the query that matched nothing.
	MsgNoBooksPrefix = "No books found for query: "

	// MsgSearchFailedPrefix precedes the reason a search failed; it is
	// followed by MsgTryAgainSuffix.
	MsgSearchFailedPrefix = "Search failed: "
	MsgTryAgainSuffix     = ". Please try again."

	// MsgNotANumber is printed for a selection that is not an integer.
	MsgNotANumber = "Please enter a valid number."

	// MsgInvalidSelection is printed for a selection outside the menu.
	MsgInvalidSelection = "Invalid selection. Please try again."

	// MsgFoundBookPrefix precedes the title picked in auto mode.
	MsgFoundBookPrefix = "Found book: "

	// MsgDownloadingPrefix precedes the title of the book being fetched.
	MsgDownloadingPrefix = "Downloading: "

	// MsgDownloadedPrefix precedes the path a book was saved to.
	MsgDownloadedPrefix = "Successfully downloaded to: "

	// MsgDownloadFailedPrefix precedes the reason a download failed.
	MsgDownloadFailedPrefix = "Error downloading book: "
)
