package services

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	apperrors "github.com/wiliafri0-dotcom/sayursegar02/common/errors"
	"github.com/wiliafri0-dotcom/sayursegar02/common/logger"
	"github.com/wiliafri0-dotcom/sayursegar02/models"
	"github.com/wiliafri0-dotcom/sayursegar02/repository"
)

// SessionService resolves and establishes the identity of a session.
type SessionService interface {
	// Restore loads the persisted identity of sessionID. A session with no
	// identity, or with one that cannot be decoded, is returned unresolved.
	Restore(ctx context.Context, sessionID string) (*models.Session, error)
	IdentifyBuyer(ctx context.Context, session *models.Session, form models.BuyerForm) (models.Identity, error)
	IdentifyAdmin(ctx context.Context, session *models.Session, form models.AdminForm) (models.Identity, error)
}

type sessionServiceImpl struct {
	store    repository.SessionStore
	verifier CredentialVerifier
	logger   *zap.Logger
}

func NewSessionService(store repository.SessionStore, verifier CredentialVerifier, logger *zap.Logger) SessionService {
	return &sessionServiceImpl{store: store, verifier: verifier, logger: logger}
}

func (s *sessionServiceImpl) Restore(ctx context.Context, sessionID string) (*models.Session, error) {
	session := &models.Session{ID: sessionID}

	data, err := s.store.LoadIdentity(ctx, sessionID)
	if err != nil {
		logger.WithRequest(ctx, s.logger).Error("Failed to load session identity", zap.String("session_id", sessionID), zap.Error(err))
		return nil, apperrors.Wrap(apperrors.ErrSessionStorage, err)
	}
	if data == nil {
		return session, nil
	}

	identity, err := models.DecodeIdentity(data)
	if err != nil {
		logger.WithRequest(ctx, s.logger).Warn("Ignoring malformed session identity", zap.String("session_id", sessionID), zap.Error(err))
		return session, nil
	}

	session.Identity = identity
	return session, nil
}

func (s *sessionServiceImpl) IdentifyBuyer(ctx context.Context, session *models.Session, form models.BuyerForm) (models.Identity, error) {
	if session.Identified() {
		return nil, apperrors.ErrAlreadyIdentified
	}

	name := strings.TrimSpace(form.Name)
	address := strings.TrimSpace(form.Address)

	fields := apperrors.FieldErrors{}
	if name == "" {
		fields["name"] = "Name is required"
	}
	if address == "" {
		fields["address"] = "Address is required"
	}
	if len(fields) > 0 {
		return nil, fields
	}

	release, err := s.acquire(ctx, session.ID)
	if err != nil {
		return nil, err
	}
	defer release()

	return s.persist(ctx, session, models.Buyer{Name: name, Address: address})
}

func (s *sessionServiceImpl) IdentifyAdmin(ctx context.Context, session *models.Session, form models.AdminForm) (models.Identity, error) {
	if session.Identified() {
		return nil, apperrors.ErrAlreadyIdentified
	}

	fields := apperrors.FieldErrors{}
	// Credentials are matched verbatim, so only empty fields are rejected.
	if form.Username == "" {
		fields["username"] = "Username is required"
	}
	if form.Password == "" {
		fields["password"] = "Password is required"
	}
	if len(fields) > 0 {
		return nil, fields
	}

	release, err := s.acquire(ctx, session.ID)
	if err != nil {
		return nil, err
	}
	defer release()

	ok, err := s.verifier.Verify(ctx, form.Username, form.Password)
	if err != nil {
		logger.WithRequest(ctx, s.logger).Error("Admin credential lookup failed", zap.Error(err))
		return nil, apperrors.Wrap(apperrors.ErrCredentialLookup, err)
	}
	if !ok {
		logger.WithRequest(ctx, s.logger).Info("Admin authentication failed", zap.String("session_id", session.ID))
		return nil, apperrors.ErrAuthenticationFailed
	}

	return s.persist(ctx, session, models.NewAdmin())
}

// acquire takes the per-session submission lock so a second form submission
// cannot run while a credential check is in flight.
func (s *sessionServiceImpl) acquire(ctx context.Context, sessionID string) (func(), error) {
	ok, err := s.store.AcquireSubmission(ctx, sessionID)
	if err != nil {
		logger.WithRequest(ctx, s.logger).Error("Failed to acquire submission lock", zap.Error(err))
		return nil, apperrors.Wrap(apperrors.ErrSessionStorage, err)
	}
	if !ok {
		return nil, apperrors.ErrSubmissionInFlight
	}
	return func() {
		if err := s.store.ReleaseSubmission(context.WithoutCancel(ctx), sessionID); err != nil {
			s.logger.Warn("Failed to release submission lock", zap.String("session_id", sessionID), zap.Error(err))
		}
	}, nil
}

func (s *sessionServiceImpl) persist(ctx context.Context, session *models.Session, identity models.Identity) (models.Identity, error) {
	data, err := models.EncodeIdentity(identity)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	if err := s.store.SaveIdentity(ctx, session.ID, data); err != nil {
		if errors.Is(err, repository.ErrIdentityExists) {
			return nil, apperrors.ErrAlreadyIdentified
		}
		logger.WithRequest(ctx, s.logger).Error("Failed to persist session identity", zap.Error(err))
		return nil, apperrors.Wrap(apperrors.ErrSessionStorage, err)
	}

	session.Identity = identity
	logger.WithRequest(ctx, s.logger).Info("Session identified",
		zap.String("session_id", session.ID),
		zap.String("role", string(identity.Role())),
	)
	return identity, nil
}
