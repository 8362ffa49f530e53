package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-book-fetcher/internal/adapter"
	"github.com/MKhiriev/go-book-fetcher/internal/app"
	"github.com/MKhiriev/go-book-fetcher/internal/client"
	"github.com/MKhiriev/go-book-fetcher/internal/config"
	"github.com/MKhiriev/go-book-fetcher/internal/logger"
	"github.com/MKhiriev/go-book-fetcher/internal/service"
	"github.com/MKhiriev/go-book-fetcher/internal/store"
	"github.com/MKhiriev/go-book-fetcher/internal/tui"
	"github.com/MKhiriev/go-book-fetcher/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.GetClientConfig(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	log, closeLog := logger.NewClientLogger("book-fetcher", cfg.App.LogFile)
	defer closeLog()

	bookAdapter, err := adapter.NewHTTPBookServiceAdapter(cfg.Adapter, log)
	if err != nil {
		log.Err(err).Msg("create book service adapter")
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	storages := store.NewClientStorages(ctx, cfg.Storage, log)
	defer storages.Close()

	term := tui.NewTerminal(os.Stdin, os.Stdout)
	services := service.NewClientServices(bookAdapter, storages, term, cfg, log)

	bookFetcher, err := client.NewApp(services, term, cfg, models.NewAppBuildInfo(buildVersion, buildDate, buildCommit), log)
	if err != nil {
		log.Err(err).Msg("init client app")
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	if err = bookFetcher.Run(ctx); err != nil {
		if errors.Is(err, service.ErrAuth) {
			term.Print(app.MsgUnableToLogin)
		} else {
			fmt.Fprintln(os.Stderr, err)
		}
		return 1
	}

	return 0
}
