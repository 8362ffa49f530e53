// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the book fetcher's process lifecycle.
//
// [App] picks the run mode from configuration (version, history, auto
// download or the interactive loop), establishes the session where one is
// needed and hands control to the [Controller], which drives the terminal
// prompts on top of the search and download services.
package client
