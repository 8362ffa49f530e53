package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-book-fetcher/internal/adapter"
	"github.com/MKhiriev/go-book-fetcher/internal/app"
	"github.com/MKhiriev/go-book-fetcher/internal/logger"
	"github.com/MKhiriev/go-book-fetcher/internal/store"
	"github.com/MKhiriev/go-book-fetcher/internal/tui"
	"github.com/MKhiriev/go-book-fetcher/models"
)

type sessionService struct {
	adapter adapter.BookServiceAdapter
	creds   store.CredentialStore
	term    tui.Terminal
	logger  *logger.Logger

	now func() time.Time
}

// NewSessionService wires the cached-then-interactive login flow.
func NewSessionService(
	bookAdapter adapter.BookServiceAdapter,
	creds store.CredentialStore,
	term tui.Terminal,
	logger *logger.Logger,
) SessionService {
	return &sessionService{
		adapter: bookAdapter,
		creds:   creds,
		term:    term,
		logger:  logger,
		now:     time.Now,
	}
}

func (s *sessionService) Establish(ctx context.Context) (models.Session, error) {
	if session, ok := s.restore(ctx); ok {
		return session, nil
	}

	for {
		session, err := s.login(ctx)
		if err == nil {
			return session, nil
		}
		if errors.Is(err, tui.ErrUserQuit) {
			return models.Session{}, fmt.Errorf("%w: %w", ErrAuthAbandoned, err)
		}

		s.logger.Warn().Err(err).Str("func", "sessionService.Establish").Msg("interactive login failed")
		s.term.Print(app.MsgLoginErrorPrefix + tui.Humanize(err))

		answer, err := s.term.ReadLine(ctx, app.PromptRetryLogin)
		if err != nil || !isYes(answer) {
			return models.Session{}, ErrAuthAbandoned
		}
	}
}

// restore tries the cached pair. Every failure is reported as ok=false so
// the caller falls through to the prompt.
func (s *sessionService) restore(ctx context.Context) (models.Session, bool) {
	creds, err := s.creds.Load(ctx)
	if err != nil {
		s.logger.Debug().Err(err).Str("func", "sessionService.restore").Msg("no usable cached credentials")
		return models.Session{}, false
	}

	s.adapter.SetCredentials(creds)

	ok, err := s.adapter.IsLoggedIn(ctx)
	if err != nil || !ok {
		s.logger.Warn().Err(err).
			Str("func", "sessionService.restore").
			Str("user_id", creds.UserID.String()).
			Bool("accepted", ok).
			Msg("cached credentials rejected")
		s.adapter.SetCredentials(models.Credentials{})
		s.term.Print(app.MsgCachedInvalid)
		return models.Session{}, false
	}

	profile, err := s.adapter.Profile(ctx)
	if err != nil {
		s.logger.Warn().Err(err).Str("func", "sessionService.restore").Msg("profile unavailable, continuing with cached pair")
		profile = models.Profile{ID: creds.UserID, UserKey: creds.UserKey}
	}

	s.term.Print(app.MsgCachedLogin)
	return models.Session{
		Credentials:   creds,
		Profile:       profile,
		Source:        models.SessionSourceCached,
		EstablishedAt: s.now(),
	}, true
}

// login runs one prompt-and-authenticate attempt.
func (s *sessionService) login(ctx context.Context) (models.Session, error) {
	email, err := s.term.ReadLine(ctx, app.PromptEmail)
	if err != nil {
		return models.Session{}, err
	}
	password, err := s.term.ReadSecret(ctx, app.PromptPassword)
	if err != nil {
		return models.Session{}, err
	}
	if email == "" {
		return models.Session{}, ErrEmptyEmail
	}

	if err = s.adapter.Login(ctx, email, password); err != nil {
		return models.Session{}, mapAdapterError(err)
	}

	ok, err := s.adapter.IsLoggedIn(ctx)
	if err != nil {
		return models.Session{}, mapAdapterError(err)
	}
	if !ok {
		return models.Session{}, ErrSessionNotAccepted
	}

	profile, err := s.adapter.Profile(ctx)
	if err != nil {
		return models.Session{}, mapAdapterError(err)
	}

	creds := profile.Credentials()
	if !creds.Complete() {
		creds = s.adapter.Credentials()
	}

	if err = s.creds.Save(ctx, creds); err != nil {
		s.logger.Err(err).Str("func", "sessionService.login").Msg("failed to save credentials")
		s.term.Print(app.MsgLoginNotSaved)
	} else {
		s.term.Print(app.MsgLoginSaved)
	}

	s.logger.Info().Str("func", "sessionService.login").Str("user_id", creds.UserID.String()).Msg("logged in")
	return models.Session{
		Credentials:   creds,
		Profile:       profile,
		Source:        models.SessionSourceInteractive,
		EstablishedAt: s.now(),
	}, nil
}

func isYes(answer string) bool {
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true
	}
	return false
}
