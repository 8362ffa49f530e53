// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-book-fetcher/models"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

const historyTimeLayout = "2006-01-02 15:04"

// RenderResults renders the numbered result menu. Numbering starts at 1 and
// follows the order of books.
func RenderResults(books []models.Book) string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(headerStyle.Render("Found books:"))
	b.WriteString("\n")

	for i, book := range books {
		b.WriteString("\n")
		b.WriteString(indexStyle.Render(strconv.Itoa(i+1) + "."))
		b.WriteString(" ")
		b.WriteString(titleStyle.Render(book.Title))
		b.WriteString("\n")
		writeField(&b, "Author:", book.Author)
		writeField(&b, "Format:", fmt.Sprintf("%s (%s)", book.Extension, book.SizeDescription))
		writeField(&b, "Language:", book.Language)
	}

	return strings.TrimRight(b.String(), "\n")
}

func writeField(b *strings.Builder, label, value string) {
	b.WriteString("   ")
	b.WriteString(labelStyle.Render(label))
	b.WriteString(" ")
	b.WriteString(value)
	b.WriteString("\n")
}

// RenderHistory renders download records as a table, in the given order.
func RenderHistory(records []models.DownloadRecord) string {
	if len(records) == 0 {
		return "No downloads recorded yet."
	}

	rows := make([][]string, 0, len(records))
	for i, rec := range records {
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			rec.DownloadedAt.Local().Format(historyTimeLayout),
			rec.Title,
			rec.Author,
			rec.Extension,
			rec.SavedPath,
		})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		Headers("#", "Downloaded", "Title", "Author", "Format", "Saved to").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return titleStyle.Padding(0, 1)
			}
			return lipgloss.NewStyle().Padding(0, 1)
		})

	return headerStyle.Render("Recent downloads:") + "\n" + t.String()
}

// RenderBuildInfo renders the -version output.
func RenderBuildInfo(info models.AppBuildInfo) string {
	return boxStyle.Render("go-book-fetcher\n" + info.String())
}
