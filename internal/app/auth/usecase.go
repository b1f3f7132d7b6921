package auth

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"wumpusworld/internal/app/ports"
	"wumpusworld/internal/domain/game"
	"wumpusworld/internal/domain/world"
)

const (
	CredentialStatusActive = "active"
)

var (
	ErrInvalidRequest     = errors.New("invalid auth request")
	ErrInvalidCredentials = errors.New("invalid session credentials")
)

type RegisterRequest struct {
	Size int
}

type RegisterResponse struct {
	SessionID  string        `json:"session_id"`
	SessionKey string        `json:"session_key"`
	IssuedAt   string        `json:"issued_at"`
	Snapshot   game.Snapshot `json:"snapshot"`
}

type VerifyRequest struct {
	SessionID  string
	SessionKey string
}

// RegisterUseCase opens a new game session on a blank grid and issues the key
// that authenticates every later call against it.
type RegisterUseCase struct {
	Credentials ports.CredentialRepository
	Sessions    ports.SessionRepository
	TxManager   ports.TxManager
	Rules       game.Rules
	DefaultSize int
	Now         func() time.Time
	NewID       func() string
}

type VerifyUseCase struct {
	Credentials ports.CredentialRepository
}

func (u RegisterUseCase) Execute(ctx context.Context, req RegisterRequest) (RegisterResponse, error) {
	if u.Credentials == nil || u.Sessions == nil || u.TxManager == nil {
		return RegisterResponse{}, ErrInvalidRequest
	}
	nowFn := u.Now
	if nowFn == nil {
		nowFn = time.Now
	}
	newID := u.NewID
	if newID == nil {
		newID = uuid.NewString
	}
	size := req.Size
	if size == 0 {
		size = u.DefaultSize
	}
	if size == 0 {
		size = world.DefaultSize
	}
	rules := u.Rules
	if rules == (game.Rules{}) {
		rules = game.DefaultRules()
	}
	now := nowFn().UTC()

	for i := 0; i < 3; i++ {
		sessionID := newID()
		sessionKey, err := randomToken(32)
		if err != nil {
			return RegisterResponse{}, err
		}
		salt, err := randomBytes(16)
		if err != nil {
			return RegisterResponse{}, err
		}
		hash := credentialHash(salt, sessionKey)

		session, err := game.NewSession(sessionID, size, rules, now)
		if err != nil {
			return RegisterResponse{}, err
		}
		session.Version = 1

		err = u.TxManager.RunInTx(ctx, func(txCtx context.Context) error {
			if err := u.Credentials.Create(txCtx, ports.CredentialRecord{
				SessionID: sessionID,
				KeySalt:   salt,
				KeyHash:   hash,
				Status:    CredentialStatusActive,
				CreatedAt: now,
			}); err != nil {
				return err
			}
			return u.Sessions.SaveWithVersion(txCtx, session, 0)
		})
		if errors.Is(err, ports.ErrConflict) {
			continue
		}
		if err != nil {
			return RegisterResponse{}, err
		}
		return RegisterResponse{
			SessionID:  sessionID,
			SessionKey: sessionKey,
			IssuedAt:   now.Format(time.RFC3339),
			Snapshot:   session.Snapshot(game.ViewPlayer),
		}, nil
	}

	return RegisterResponse{}, ports.ErrConflict
}

func (u VerifyUseCase) Execute(ctx context.Context, req VerifyRequest) error {
	req.SessionID = strings.TrimSpace(req.SessionID)
	req.SessionKey = strings.TrimSpace(req.SessionKey)
	if req.SessionID == "" || req.SessionKey == "" || u.Credentials == nil {
		return ErrInvalidRequest
	}

	cred, err := u.Credentials.GetBySessionID(ctx, req.SessionID)
	if err != nil {
		if errors.Is(err, ports.ErrNotFound) {
			return ErrInvalidCredentials
		}
		return err
	}
	if cred.Status != CredentialStatusActive {
		return ErrInvalidCredentials
	}

	got := credentialHash(cred.KeySalt, req.SessionKey)
	if subtle.ConstantTimeCompare(got, cred.KeyHash) != 1 {
		return ErrInvalidCredentials
	}
	return nil
}

func credentialHash(salt []byte, key string) []byte {
	b := make([]byte, 0, len(salt)+len(key))
	b = append(b, salt...)
	b = append(b, key...)
	sum := sha256.Sum256(b)
	return sum[:]
}

func randomToken(n int) (string, error) {
	b, err := randomBytes(n)
	if err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}

func randomBytes(n int) ([]byte, error) {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return nil, err
	}
	return b, nil
}
