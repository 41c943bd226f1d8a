// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"authgate/config"
	deliverycontext "authgate/internal/delivery/context"
	"authgate/internal/domain/constants"
	"authgate/internal/domain/entity"
	domainerrors "authgate/internal/domain/errors"
	"authgate/internal/domain/repository"
	"authgate/internal/domain/service"
	"authgate/internal/usecase"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const defaultSyncTimeout = 5 * time.Second

// sessionService implements the SessionUsecase interface.
type sessionService struct {
	backend   service.BackendGateway
	tokens    repository.TokenRepository
	inspector service.TokenInspector
	syncer    service.EntitlementSyncer
	validate  *validator.Validate
	logger    *slog.Logger

	syncTimeout time.Duration
	syncWG      sync.WaitGroup

	mu       sync.RWMutex
	sessions map[string]*entity.AuthSession
}

// SessionServiceParams holds dependencies for SessionService, injected by Fx.
type SessionServiceParams struct {
	fx.In

	Lc        fx.Lifecycle `optional:"true"`
	Backend   service.BackendGateway
	Tokens    repository.TokenRepository
	Inspector service.TokenInspector
	Syncer    service.EntitlementSyncer
	Config    *config.Config
	Logger    *slog.Logger
}

// NewSessionService is the constructor for sessionService.
func NewSessionService(params SessionServiceParams) usecase.SessionUsecase {
	srv := newSessionService(params)
	// Registered after the syncer's hook, so it stops first and the syncer closes
	// only once pending syncs are done.
	if params.Lc != nil {
		params.Lc.Append(fx.Hook{OnStop: srv.drain})
	}

	return srv
}

func newSessionService(params SessionServiceParams) *sessionService {
	syncTimeout := defaultSyncTimeout
	if params.Config != nil && params.Config.Callback != nil && params.Config.Callback.SyncTimeout > 0 {
		syncTimeout = params.Config.Callback.SyncTimeout
	}

	return &sessionService{
		backend:     params.Backend,
		tokens:      params.Tokens,
		inspector:   params.Inspector,
		syncer:      params.Syncer,
		validate:    validator.New(),
		logger:      params.Logger,
		syncTimeout: syncTimeout,
		sessions:    make(map[string]*entity.AuthSession),
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *sessionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Login exchanges email credentials for a session.
func (srv *sessionService) Login(ctx context.Context, input usecase.LoginInput) (*entity.AuthSession, error) {
	if err := srv.validate.Struct(input); err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	session, err := srv.backend.Login(ctx, input.Email, input.Password)
	if err != nil {
		var apiErr *service.BackendError
		if errors.As(err, &apiErr) && apiErr.IsClientError() {
			srv.log(ctx).Info("Email login rejected", slog.Int("status", apiErr.StatusCode))

			return nil, domainerrors.ErrInvalidCredentials.WithDetails(apiErr.Message)
		}

		return nil, errors.Wrap(domainerrors.ErrBackendRejected, err.Error())
	}

	if err := srv.install(ctx, input.ClientID, session, constants.SyncReasonLogin); err != nil {
		return nil, err
	}

	return session.Clone(), nil
}

// Register creates an email account and signs it in.
func (srv *sessionService) Register(ctx context.Context, input usecase.RegisterInput) (*entity.AuthSession, error) {
	if err := srv.validate.Struct(input); err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	session, err := srv.backend.Register(ctx, &service.RegisterRequest{
		Email:       input.Email,
		Password:    input.Password,
		DisplayName: input.DisplayName,
	})
	if err != nil {
		var apiErr *service.BackendError
		if errors.As(err, &apiErr) && apiErr.IsClientError() {
			return nil, domainerrors.ErrValidationFailed.WithDetails(apiErr.Message)
		}

		return nil, errors.Wrap(domainerrors.ErrBackendRejected, err.Error())
	}

	if err := srv.install(ctx, input.ClientID, session, constants.SyncReasonLogin); err != nil {
		return nil, err
	}

	return session.Clone(), nil
}

// LoginWithProvider posts the grant and installs the resulting session unless the
// backend asks for additional profile data.
func (srv *sessionService) LoginWithProvider(ctx context.Context, clientID string, grant *service.ProviderGrant) (*usecase.ProviderLoginOutput, error) {
	if grant == nil {
		return nil, errors.Wrap(domainerrors.ErrInternalError, "provider grant is nil")
	}

	result, err := srv.backend.ProviderLogin(ctx, grant)
	if err != nil {
		details := err.Error()
		var apiErr *service.BackendError
		if errors.As(err, &apiErr) {
			details = apiErr.Message
		}
		srv.log(ctx).Warn("Backend rejected provider login",
			slog.String("provider", grant.Provider.String()),
			slog.String("error", details),
		)

		return nil, domainerrors.ErrBackendRejected.WithDetails(details)
	}

	if result.RequiresAdditionalInfo {
		return &usecase.ProviderLoginOutput{
			RequiresAdditionalInfo: true,
			Profile:                result.Profile,
		}, nil
	}

	if err := srv.install(ctx, clientID, result.Session, constants.SyncReasonLogin); err != nil {
		return nil, err
	}

	return &usecase.ProviderLoginOutput{Session: result.Session.Clone()}, nil
}

// InstallSession stores a complete session for the client.
func (srv *sessionService) InstallSession(ctx context.Context, clientID string, session *entity.AuthSession) error {
	return srv.install(ctx, clientID, session, constants.SyncReasonLogin)
}

func (srv *sessionService) install(ctx context.Context, clientID string, session *entity.AuthSession, reason string) error {
	if !session.IsAuthenticated() {
		return errors.WithStack(entity.ErrIncompleteSession)
	}
	// The client went away; nothing is written for it.
	if err := ctx.Err(); err != nil {
		return errors.WithStack(err)
	}

	if err := srv.tokens.SaveToken(ctx, clientID, session.Token); err != nil {
		return errors.Wrap(err, "failed to persist client token")
	}

	srv.mu.Lock()
	srv.sessions[clientID] = session.Clone()
	srv.mu.Unlock()

	srv.log(ctx).Info("Session installed",
		slog.String("user_id", session.User.ID),
		slog.String("reason", reason),
	)

	srv.dispatchSync(ctx, session.User.ID, reason)

	return nil
}

// Logout clears the in-memory session and the durable token.
func (srv *sessionService) Logout(ctx context.Context, clientID string) error {
	srv.mu.Lock()
	delete(srv.sessions, clientID)
	srv.mu.Unlock()

	if err := srv.tokens.DeleteToken(ctx, clientID); err != nil {
		return errors.Wrap(err, "failed to delete client token")
	}

	srv.log(ctx).Debug("Session cleared")

	return nil
}

// UpdateProfile saves the editable fields and refreshes the in-memory user.
func (srv *sessionService) UpdateProfile(ctx context.Context, input usecase.UpdateProfileInput) (*entity.User, error) {
	current := srv.Current(ctx, input.ClientID)
	if !current.IsAuthenticated() {
		return nil, domainerrors.ErrUnauthenticated
	}

	if err := srv.validate.Struct(input); err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	user, err := srv.backend.UpdateProfile(ctx, current.Token, &service.ProfileUpdate{
		Email:       input.Email,
		DisplayName: input.DisplayName,
	})
	if err != nil {
		details := err.Error()
		var apiErr *service.BackendError
		if errors.As(err, &apiErr) {
			details = apiErr.Message
		}

		return nil, domainerrors.ErrBackendRejected.WithDetails(details)
	}

	srv.mu.Lock()
	if s, ok := srv.sessions[input.ClientID]; ok && s.Token == current.Token {
		u := *user
		s.User = &u
	}
	srv.mu.Unlock()

	return user, nil
}

// Rehydrate validates the persisted token against the backend.
func (srv *sessionService) Rehydrate(ctx context.Context, clientID string) *entity.AuthSession {
	token, err := srv.tokens.FindToken(ctx, clientID)
	if err != nil {
		if !errors.Is(err, repository.ErrTokenNotFound) {
			srv.log(ctx).Warn("Failed to read client token", slog.Any("error", err))
		}

		return &entity.AuthSession{}
	}

	if srv.inspector != nil && srv.inspector.IsExpired(token) {
		srv.log(ctx).Info("Persisted token expired, clearing")
		srv.clear(ctx, clientID)

		return &entity.AuthSession{}
	}

	user, err := srv.backend.FetchProfile(ctx, token)
	if err != nil {
		srv.log(ctx).Info("Rehydration failed, clearing persisted token", slog.Any("error", err))
		srv.clear(ctx, clientID)

		return &entity.AuthSession{}
	}

	session, err := entity.NewAuthSession(user, token)
	if err != nil || ctx.Err() != nil {
		return &entity.AuthSession{}
	}

	srv.mu.Lock()
	srv.sessions[clientID] = session.Clone()
	srv.mu.Unlock()

	srv.dispatchSync(ctx, user.ID, constants.SyncReasonRehydrate)

	return session
}

func (srv *sessionService) clear(ctx context.Context, clientID string) {
	srv.mu.Lock()
	delete(srv.sessions, clientID)
	srv.mu.Unlock()

	if err := srv.tokens.DeleteToken(context.WithoutCancel(ctx), clientID); err != nil {
		srv.log(ctx).Warn("Failed to clear client token", slog.Any("error", err))
	}
}

// Current returns a copy of the client's session.
func (srv *sessionService) Current(_ context.Context, clientID string) *entity.AuthSession {
	srv.mu.RLock()
	defer srv.mu.RUnlock()

	return srv.sessions[clientID].Clone()
}

// HasSession checks memory first, then the durable token left by an earlier process.
func (srv *sessionService) HasSession(ctx context.Context, clientID string) bool {
	if srv.Current(ctx, clientID).IsAuthenticated() {
		return true
	}

	token, err := srv.tokens.FindToken(ctx, clientID)
	if err != nil {
		if !errors.Is(err, repository.ErrTokenNotFound) {
			srv.log(ctx).Warn("Failed to read client token", slog.Any("error", err))
		}

		return false
	}

	return token != "" && (srv.inspector == nil || !srv.inspector.IsExpired(token))
}

// drain waits for background syncs until ctx ends.
func (srv *sessionService) drain(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		srv.syncWG.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return errors.Wrap(ctx.Err(), "entitlement syncs still running at shutdown")
	}
}

// dispatchSync requests an entitlement refresh in the background. Failures are logged only.
func (srv *sessionService) dispatchSync(ctx context.Context, userID, reason string) {
	if srv.syncer == nil {
		return
	}

	event := &service.EntitlementSyncEvent{
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		UserID:     userID,
		Reason:     reason,
		OccurredAt: time.Now().UTC(),
	}
	if event.RequestID == "" {
		event.RequestID = uuid.NewString()
	}
	logger := srv.log(ctx)
	syncCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), srv.syncTimeout)

	srv.syncWG.Add(1)
	go func() {
		defer srv.syncWG.Done()
		defer cancel()

		if err := srv.syncer.SyncEntitlements(syncCtx, event); err != nil {
			logger.Warn("Entitlement sync failed",
				slog.String("user_id", userID),
				slog.String("reason", reason),
				slog.Any("error", err),
			)
		}
	}()
}
