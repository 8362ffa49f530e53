package client

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-book-fetcher/internal/app"
	"github.com/MKhiriev/go-book-fetcher/internal/logger"
	"github.com/MKhiriev/go-book-fetcher/internal/service"
	"github.com/MKhiriev/go-book-fetcher/internal/tui"
	"github.com/MKhiriev/go-book-fetcher/models"
)

// Controller drives the search-select-download conversation. Search and
// download failures are reported to the user and never end a loop.
type Controller struct {
	search   service.SearchService
	download service.DownloadService
	term     tui.Terminal
	logger   *logger.Logger
}

// NewController returns a controller using the given services and terminal.
func NewController(
	search service.SearchService,
	download service.DownloadService,
	term tui.Terminal,
	logger *logger.Logger,
) *Controller {
	return &Controller{
		search:   search,
		download: download,
		term:     term,
		logger:   logger,
	}
}

// AutoDownload searches for a single result and downloads it without
// prompting.
func (c *Controller) AutoDownload(ctx context.Context, query string) {
	books, ok := c.runSearch(ctx, models.SearchQuery{Text: query, Limit: 1})
	if !ok {
		return
	}

	book := books[0]
	c.term.Print(app.MsgFoundBookPrefix + book.Title)
	c.fetch(ctx, book)
}

// Interactive runs the query loop until the user types the quit command or
// input ends. It returns an error only when the terminal itself fails.
func (c *Controller) Interactive(ctx context.Context) error {
	for {
		query, err := c.term.ReadLine(ctx, app.PromptQuery)
		if err != nil {
			return endOfInput(err)
		}

		query = strings.TrimSpace(query)
		if strings.EqualFold(query, app.QuitCommand) {
			return nil
		}
		if query == "" {
			continue
		}

		books, ok := c.runSearch(ctx, models.SearchQuery{Text: query})
		if !ok {
			continue
		}

		c.term.Print(tui.RenderResults(books))
		if err = c.selectAndFetch(ctx, books); err != nil {
			return endOfInput(err)
		}
	}
}

// ShowHistory prints up to limit recorded downloads.
func (c *Controller) ShowHistory(ctx context.Context, limit int) error {
	records, err := c.download.History(ctx, limit)
	if err != nil {
		c.logger.Err(err).Str("func", "Controller.ShowHistory").Msg("failed to list downloads")
		return fmt.Errorf("show history: %w", err)
	}

	c.term.Print(tui.RenderHistory(records))
	return nil
}

// selectAndFetch prompts until the user picks a book or goes back with "0".
// At most one download happens per call.
func (c *Controller) selectAndFetch(ctx context.Context, books []models.Book) error {
	for {
		choice, err := c.term.ReadLine(ctx, app.PromptSelection)
		if err != nil {
			return err
		}

		choice = strings.TrimSpace(choice)
		if choice == "0" {
			return nil
		}

		n, err := strconv.Atoi(choice)
		if err != nil {
			c.term.Print(app.MsgNotANumber)
			continue
		}
		if n < 1 || n > len(books) {
			c.term.Print(app.MsgInvalidSelection)
			continue
		}

		c.fetch(ctx, books[n-1])
		return nil
	}
}

// runSearch reports failures and empty results itself; ok is true only when
// books is non-empty.
func (c *Controller) runSearch(ctx context.Context, query models.SearchQuery) (books []models.Book, ok bool) {
	books, err := c.search.Search(ctx, query)
	if err != nil {
		c.logger.Err(err).Str("func", "Controller.runSearch").Str("query", query.Text).Msg("search failed")
		c.term.Print(app.MsgSearchFailedPrefix + describe(err, service.ErrSearch) + app.MsgTryAgainSuffix)
		return nil, false
	}
	if len(books) == 0 {
		c.term.Print(app.MsgNoBooksPrefix + strings.TrimSpace(query.Text))
		return nil, false
	}

	return books, true
}

func (c *Controller) fetch(ctx context.Context, book models.Book) {
	c.term.Print(app.MsgDownloadingPrefix + book.Title)

	outcome, err := c.download.Download(ctx, book, "")
	if err != nil {
		c.logger.Err(err).Str("func", "Controller.fetch").Str("book_id", book.ID.String()).Msg("download failed")
		c.term.Print(app.MsgDownloadFailedPrefix + describe(err, service.ErrDownload))
		return
	}

	c.term.Print(app.MsgDownloadedPrefix + outcome.SavedPath)
}

// describe renders err for the terminal without repeating the operation
// named by sentinel, which the surrounding message already states.
func describe(err, sentinel error) string {
	msg := tui.Humanize(err)
	if trimmed := strings.TrimPrefix(msg, sentinel.Error()+": "); trimmed != "" {
		return trimmed
	}
	return msg
}

// endOfInput turns a user quit into a clean exit.
func endOfInput(err error) error {
	if errors.Is(err, tui.ErrUserQuit) {
		return nil
	}
	return fmt.Errorf("read input: %w", err)
}
