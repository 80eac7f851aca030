package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/alexanderramin/folio/internal/domain"
	"github.com/alexanderramin/folio/internal/repository"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// AccountConfig configures the mock authentication gate.
type AccountConfig struct {
	AdminUsername string
	AdminPassword string
	// Delay simulates a remote round-trip before each sign-in or sign-up.
	Delay time.Duration
	// HashCost is the bcrypt cost for new accounts. Zero uses bcrypt.DefaultCost.
	HashCost int
}

type accountService struct {
	store    repository.KVStore
	tx       repository.Transactor
	cfg      AccountConfig
	logger   *slog.Logger
	observer UseCaseObserver
	now      func() time.Time
}

// NewAccountService creates an AccountService. store is used for reads and tx
// for the session writes, which must land together. A nil logger discards
// load warnings.
func NewAccountService(store repository.KVStore, tx repository.Transactor, cfg AccountConfig, logger *slog.Logger, observers ...UseCaseObserver) AccountService {
	if cfg.HashCost == 0 {
		cfg.HashCost = bcrypt.DefaultCost
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &accountService{
		store:    store,
		tx:       tx,
		cfg:      cfg,
		logger:   logger,
		observer: useCaseObserverOrNoop(observers),
		now:      time.Now,
	}
}

func (s *accountService) wait(ctx context.Context) error {
	if s.cfg.Delay <= 0 {
		return nil
	}
	t := time.NewTimer(s.cfg.Delay)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// users reads the stored accounts. Malformed data is logged and read as an
// empty list, so sign-up can replace it.
func (s *accountService) users(ctx context.Context, store repository.KVStore) ([]domain.User, error) {
	var users []domain.User
	if _, err := repository.GetJSON(ctx, store, repository.KeyUsers, &users); err != nil {
		if !errors.Is(err, repository.ErrMalformed) {
			return nil, fmt.Errorf("loading users: %w", err)
		}
		s.logger.WarnContext(ctx, "discarding malformed user data", "key", repository.KeyUsers, "error", err)
		return nil, nil
	}
	return users, nil
}

func (s *accountService) SignIn(ctx context.Context, username, password string) (sess domain.Session, err error) {
	startedAt := time.Now()
	defer observe(ctx, s.observer, "account.sign_in", startedAt, map[string]any{"username": username}, &err)

	if err = s.wait(ctx); err != nil {
		return domain.Session{}, err
	}

	if s.cfg.AdminUsername != "" && username == s.cfg.AdminUsername && password == s.cfg.AdminPassword {
		sess = s.newSession(username, "", true)
		return sess, s.storeSession(ctx, sess)
	}

	err = s.tx.WithinTx(ctx, func(ctx context.Context, store repository.KVStore) error {
		users, err := s.users(ctx, store)
		if err != nil {
			return err
		}
		i := slices.IndexFunc(users, func(u domain.User) bool { return u.Username == username })
		if i < 0 {
			return ErrInvalidCredentials
		}
		u := users[i]
		if u.PasswordHash == "" {
			// Accounts stored before hashing keep a plain password; upgrade
			// them on the first successful sign-in.
			if u.LegacyPassword == "" || u.LegacyPassword != password {
				return ErrInvalidCredentials
			}
			hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cfg.HashCost)
			if err != nil {
				return fmt.Errorf("hashing password: %w", err)
			}
			users[i].PasswordHash = string(hash)
			users[i].LegacyPassword = ""
			if err := repository.SetJSON(ctx, store, repository.KeyUsers, users); err != nil {
				return err
			}
		} else if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
			return ErrInvalidCredentials
		}
		sess = s.newSession(u.Username, u.Email, false)
		return writeSession(ctx, store, sess)
	})
	if err != nil {
		return domain.Session{}, err
	}
	return sess, nil
}

func (s *accountService) SignUp(ctx context.Context, in domain.SignUpInput) (sess domain.Session, err error) {
	startedAt := time.Now()
	defer observe(ctx, s.observer, "account.sign_up", startedAt, map[string]any{"username": in.Username}, &err)

	if err = s.wait(ctx); err != nil {
		return domain.Session{}, err
	}
	if err = in.Validate(); err != nil {
		return domain.Session{}, err
	}
	username := strings.TrimSpace(in.Username)
	email := strings.TrimSpace(in.Email)

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), s.cfg.HashCost)
	if err != nil {
		return domain.Session{}, fmt.Errorf("hashing password: %w", err)
	}

	sess = s.newSession(username, email, false)
	err = s.tx.WithinTx(ctx, func(ctx context.Context, store repository.KVStore) error {
		users, err := s.users(ctx, store)
		if err != nil {
			return err
		}
		if username == s.cfg.AdminUsername {
			return &domain.ValidationError{Field: "username", Message: "username already exists"}
		}
		for _, u := range users {
			if u.Username == username {
				return &domain.ValidationError{Field: "username", Message: "username already exists"}
			}
			if strings.EqualFold(strings.TrimSpace(u.Email), email) {
				return &domain.ValidationError{Field: "email", Message: "email already registered"}
			}
		}

		users = append(users, domain.User{
			Username:     username,
			Email:        email,
			PasswordHash: string(hash),
			CreatedAt:    s.now().UTC(),
		})
		if err := repository.SetJSON(ctx, store, repository.KeyUsers, users); err != nil {
			return err
		}
		return writeSession(ctx, store, sess)
	})
	if err != nil {
		return domain.Session{}, err
	}
	return sess, nil
}

func (s *accountService) SignOut(ctx context.Context) (err error) {
	startedAt := time.Now()
	defer observe(ctx, s.observer, "account.sign_out", startedAt, nil, &err)

	return s.tx.WithinTx(ctx, func(ctx context.Context, store repository.KVStore) error {
		if err := store.Delete(ctx, repository.KeyCurrentUser); err != nil {
			return err
		}
		return store.Delete(ctx, repository.KeyLoggedIn)
	})
}

// Current returns the stored session. A session is only trusted when both
// the flag and the user record are present.
func (s *accountService) Current(ctx context.Context) (domain.Session, error) {
	var loggedIn bool
	found, err := repository.GetJSON(ctx, s.store, repository.KeyLoggedIn, &loggedIn)
	if err != nil && !errors.Is(err, repository.ErrMalformed) {
		return domain.Session{}, err
	}
	if !found || !loggedIn {
		return domain.Session{}, ErrNotSignedIn
	}

	var sess domain.Session
	found, err = repository.GetJSON(ctx, s.store, repository.KeyCurrentUser, &sess)
	if err != nil && !errors.Is(err, repository.ErrMalformed) {
		return domain.Session{}, err
	}
	if !found || err != nil || sess.Username == "" {
		return domain.Session{}, ErrNotSignedIn
	}
	return sess, nil
}

func (s *accountService) newSession(username, email string, admin bool) domain.Session {
	return domain.Session{
		ID:         uuid.NewString(),
		Username:   username,
		Email:      email,
		IsAdmin:    admin,
		SignedInAt: s.now().UTC(),
	}
}

func (s *accountService) storeSession(ctx context.Context, sess domain.Session) error {
	return s.tx.WithinTx(ctx, func(ctx context.Context, store repository.KVStore) error {
		return writeSession(ctx, store, sess)
	})
}

func writeSession(ctx context.Context, store repository.KVStore, sess domain.Session) error {
	if err := repository.SetJSON(ctx, store, repository.KeyCurrentUser, sess); err != nil {
		return err
	}
	return repository.SetJSON(ctx, store, repository.KeyLoggedIn, true)
}
