package impl

import (
	"context"
	"crypto/subtle"
	"log/slog"
	"time"

	"authgate/config"
	deliverycontext "authgate/internal/delivery/context"
	"authgate/internal/domain/entity"
	domainerrors "authgate/internal/domain/errors"
	"authgate/internal/domain/repository"
	"authgate/internal/domain/service"
	"authgate/internal/usecase"
	"authgate/internal/util"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// callbackService implements the CallbackUsecase interface.
type callbackService struct {
	registry service.ProviderRegistry
	sessions usecase.SessionUsecase
	backend  service.BackendGateway
	state    repository.ClientStateRepository
	frontend *config.FrontendConfig
	logger   *slog.Logger

	guard       *inflightGuard
	validate    *validator.Validate
	nicknameMin int
	newNonce    func() (string, error)
	now         func() time.Time
}

// CallbackServiceParams holds dependencies for CallbackService, injected by Fx.
type CallbackServiceParams struct {
	fx.In

	Registry    service.ProviderRegistry
	Sessions    usecase.SessionUsecase
	Backend     service.BackendGateway
	ClientState repository.ClientStateRepository
	Config      *config.Config
	Logger      *slog.Logger
}

// NewCallbackService is the constructor for callbackService.
func NewCallbackService(params CallbackServiceParams) usecase.CallbackUsecase {
	return newCallbackService(params)
}

func newCallbackService(params CallbackServiceParams) *callbackService {
	frontend := &config.FrontendConfig{HomePath: "/"}
	nicknameMin := usecase.DefaultNicknameMinLength
	if params.Config != nil {
		if params.Config.Frontend != nil {
			frontend = params.Config.Frontend
		}
		if params.Config.Callback != nil && params.Config.Callback.NicknameMinLength > 0 {
			nicknameMin = params.Config.Callback.NicknameMinLength
		}
	}

	return &callbackService{
		registry:    params.Registry,
		sessions:    params.Sessions,
		backend:     params.Backend,
		state:       params.ClientState,
		frontend:    frontend,
		logger:      params.Logger,
		guard:       newInflightGuard(),
		validate:    validator.New(),
		nicknameMin: nicknameMin,
		newNonce:    util.NewStateNonce,
		now:         time.Now,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *callbackService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// BeginLogin stores a fresh state nonce and returns the authorization URL. The popup flows
// use the same value as their id_token nonce.
func (srv *callbackService) BeginLogin(ctx context.Context, clientID string, providerType entity.ProviderType) (*usecase.LoginRedirect, error) {
	provider, err := srv.registry.Provider(providerType)
	if err != nil {
		return nil, err
	}

	nonce, err := srv.newNonce()
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrInternalError, err.Error())
	}
	if err := srv.state.SaveStateNonce(ctx, clientID, providerType, nonce); err != nil {
		return nil, errors.Wrap(err, "failed to save state nonce")
	}

	return &usecase.LoginRedirect{AuthURL: provider.AuthURL(nonce), State: nonce}, nil
}

// HandleCallback reconciles one redirect from the provider.
func (srv *callbackService) HandleCallback(ctx context.Context, input usecase.HandleCallbackInput) *entity.CallbackOutcome {
	out := &entity.CallbackOutcome{Provider: input.Provider, State: entity.CallbackStateValidating}
	logger := srv.log(ctx).With(slog.String("provider", input.Provider.String()))

	provider, err := srv.registry.Provider(input.Provider)
	if err != nil {
		return srv.fail(ctx, out, err)
	}

	if input.Error != "" {
		return srv.fail(ctx, out, domainerrors.ProviderFailure(input.Error))
	}

	if srv.isDuplicate(ctx, input.ClientID, input.Provider, input.Code) {
		return srv.duplicate(ctx, input.ClientID, out)
	}

	if input.Code == "" {
		return srv.fail(ctx, out, domainerrors.ErrMissingCode)
	}

	release, ok := srv.guard.acquire(input.ClientID, input.Provider)
	if !ok {
		logger.Debug("Callback already in flight, suppressing", slog.String("code", util.Redact(input.Code)))
		out.Suppressed = true

		return out
	}
	defer release()

	// A run that held the guard may have finished between the first check and acquire.
	if srv.isDuplicate(ctx, input.ClientID, input.Provider, input.Code) {
		return srv.duplicate(ctx, input.ClientID, out)
	}

	if err := srv.checkState(ctx, provider, input); err != nil {
		return srv.fail(ctx, out, err)
	}

	out.State = entity.CallbackStateExchangingCode
	logger.Info("Exchanging authorization code", slog.String("code", util.Redact(input.Code)))

	grant, err := provider.Exchange(ctx, input.Code)
	if err != nil {
		if !errors.Is(err, domainerrors.ErrExchangeFailed) {
			err = errors.Wrap(domainerrors.ErrExchangeFailed, err.Error())
		}

		return srv.fail(ctx, out, err)
	}
	grant.FillName(input.GivenName, input.FamilyName)

	if err := srv.state.MarkCodeProcessed(ctx, input.ClientID, input.Provider, input.Code); err != nil {
		logger.Warn("Failed to mark code processed", slog.Any("error", err))
	}

	return srv.finish(ctx, input.ClientID, grant, out)
}

// SignInWithCredential handles the popup/SDK path, skipping the code exchange.
func (srv *callbackService) SignInWithCredential(ctx context.Context, input usecase.SignInWithCredentialInput) *entity.CallbackOutcome {
	out := &entity.CallbackOutcome{Provider: input.Provider, State: entity.CallbackStateValidating}

	provider, err := srv.registry.Provider(input.Provider)
	if err != nil {
		return srv.fail(ctx, out, err)
	}

	if srv.sessions.HasSession(ctx, input.ClientID) {
		return srv.duplicate(ctx, input.ClientID, out)
	}

	release, ok := srv.guard.acquire(input.ClientID, input.Provider)
	if !ok {
		out.Suppressed = true

		return out
	}
	defer release()

	credential := input.Credential
	if credential != nil {
		nonce, err := srv.state.ConsumeStateNonce(ctx, input.ClientID, input.Provider)
		if err != nil {
			return srv.fail(ctx, out, errors.Wrap(err, "failed to read state nonce"))
		}
		scoped := *credential
		scoped.Nonce = nonce
		credential = &scoped
	}

	grant, err := provider.Adapt(ctx, credential)
	if err != nil {
		return srv.fail(ctx, out, err)
	}

	return srv.finish(ctx, input.ClientID, grant, out)
}

// PendingForm returns the additional-info form for the client's pending login.
func (srv *callbackService) PendingForm(ctx context.Context, clientID string, providerType entity.ProviderType) (*usecase.AdditionalInfoForm, error) {
	pending, err := srv.findPending(ctx, clientID, providerType)
	if err != nil {
		return nil, err
	}

	return usecase.NewAdditionalInfoForm(pending.Profile), nil
}

// CompleteAdditionalInfo submits the form with the temporary provider token.
func (srv *callbackService) CompleteAdditionalInfo(ctx context.Context, input usecase.CompleteAdditionalInfoInput) *entity.CallbackOutcome {
	out := &entity.CallbackOutcome{Provider: input.Provider, State: entity.CallbackStateAwaitingAdditionalInfo}
	logger := srv.log(ctx).With(slog.String("provider", input.Provider.String()))

	pending, err := srv.findPending(ctx, input.ClientID, input.Provider)
	if err != nil {
		return srv.fail(ctx, out, err)
	}
	out.Pending = pending

	form := input.Form
	form.Normalize()
	if err := form.Validate(srv.validate, srv.nicknameMin); err != nil {
		out.Err = err

		return out
	}

	release, ok := srv.guard.acquire(input.ClientID, input.Provider)
	if !ok {
		out.Suppressed = true

		return out
	}
	defer release()

	session, err := srv.backend.CompleteProviderLogin(ctx, input.Provider, pending.TemporaryToken, form.Apply(pending.Profile))
	if err != nil {
		details := err.Error()
		var apiErr *service.BackendError
		if errors.As(err, &apiErr) {
			details = apiErr.Message
		}
		logger.Warn("Backend rejected additional info", slog.String("error", details))
		out.Err = domainerrors.ErrBackendRejected.WithDetails(details)

		return out
	}

	if err := srv.sessions.InstallSession(ctx, input.ClientID, session); err != nil {
		return srv.fail(ctx, out, err)
	}

	if err := srv.state.DeletePendingProfile(ctx, input.ClientID, input.Provider); err != nil {
		logger.Warn("Failed to delete pending profile", slog.Any("error", err))
	}

	out.State = entity.CallbackStateResolvedSuccess
	out.Session = session.Clone()
	out.Pending = nil
	out.RedirectTo = srv.frontend.HomeURL()

	return out
}

// CancelAdditionalInfo discards the pending login and its temporary token.
func (srv *callbackService) CancelAdditionalInfo(ctx context.Context, clientID string, providerType entity.ProviderType) *entity.CallbackOutcome {
	out := &entity.CallbackOutcome{Provider: providerType, State: entity.CallbackStateAwaitingAdditionalInfo}

	if err := srv.state.DeletePendingProfile(ctx, clientID, providerType); err != nil {
		return srv.fail(ctx, out, errors.Wrap(err, "failed to delete pending profile"))
	}

	return srv.fail(ctx, out, domainerrors.ErrUserCancelled)
}

func (srv *callbackService) isDuplicate(ctx context.Context, clientID string, providerType entity.ProviderType, code string) bool {
	if srv.sessions.HasSession(ctx, clientID) {
		return true
	}
	if code == "" {
		return false
	}

	processed, err := srv.state.ProcessedCode(ctx, clientID, providerType)
	if err != nil {
		srv.log(ctx).Warn("Failed to read processed code marker", slog.Any("error", err))

		return false
	}

	return processed == code
}

// checkState consumes the stored nonce. Providers that require state reject a missing one;
// the others compare only when both sides are present.
func (srv *callbackService) checkState(ctx context.Context, provider service.OAuthProvider, input usecase.HandleCallbackInput) error {
	expected, err := srv.state.ConsumeStateNonce(ctx, input.ClientID, input.Provider)
	if err != nil {
		return errors.Wrap(err, "failed to read state nonce")
	}

	if expected == "" || input.State == "" {
		if provider.RequiresState() {
			return domainerrors.ErrCsrfMismatch.WithDetails("state missing")
		}

		return nil
	}

	if subtle.ConstantTimeCompare([]byte(expected), []byte(input.State)) != 1 {
		return domainerrors.ErrCsrfMismatch
	}

	return nil
}

// finish hands the grant to the session owner and resolves the outcome.
func (srv *callbackService) finish(ctx context.Context, clientID string, grant *service.ProviderGrant, out *entity.CallbackOutcome) *entity.CallbackOutcome {
	result, err := srv.sessions.LoginWithProvider(ctx, clientID, grant)
	if err != nil {
		return srv.fail(ctx, out, err)
	}

	if !result.RequiresAdditionalInfo {
		out.State = entity.CallbackStateResolvedSuccess
		out.Session = result.Session
		out.RedirectTo = srv.frontend.HomeURL()

		return out
	}

	if err := ctx.Err(); err != nil {
		return srv.fail(ctx, out, errors.WithStack(err))
	}

	pending := &entity.PendingProfile{
		Provider:       grant.Provider,
		Profile:        result.Profile,
		TemporaryToken: grant.Credential(),
		CreatedAt:      srv.now().UTC(),
	}
	if err := srv.state.SavePendingProfile(ctx, clientID, pending); err != nil {
		return srv.fail(ctx, out, errors.Wrap(err, "failed to save pending profile"))
	}

	srv.log(ctx).Info("Backend requires additional info", slog.String("provider", grant.Provider.String()))

	out.State = entity.CallbackStateAwaitingAdditionalInfo
	out.Pending = pending
	out.RedirectTo = srv.frontend.AdditionalInfoURL(grant.Provider.String())

	return out
}

func (srv *callbackService) duplicate(ctx context.Context, clientID string, out *entity.CallbackOutcome) *entity.CallbackOutcome {
	out.State = entity.CallbackStateResolvedDuplicate
	out.RedirectTo = srv.frontend.HomeURL()
	if current := srv.sessions.Current(ctx, clientID); current.IsAuthenticated() {
		out.Session = current
	}

	return out
}

func (srv *callbackService) fail(ctx context.Context, out *entity.CallbackOutcome, err error) *entity.CallbackOutcome {
	out.State = entity.CallbackStateResolvedFailure
	out.Err = err
	out.RedirectTo = srv.frontend.HomeURL()

	level := slog.LevelWarn
	if errors.Is(err, domainerrors.ErrUserCancelled) || errors.Is(err, context.Canceled) {
		level = slog.LevelInfo
	}
	srv.log(ctx).Log(ctx, level, "Callback resolved with failure",
		slog.String("provider", out.Provider.String()),
		slog.Any("error", err),
	)

	return out
}

func (srv *callbackService) findPending(ctx context.Context, clientID string, providerType entity.ProviderType) (*entity.PendingProfile, error) {
	pending, err := srv.state.FindPendingProfile(ctx, clientID, providerType)
	if err != nil {
		if errors.Is(err, repository.ErrPendingProfileNotFound) {
			return nil, domainerrors.ErrPendingProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to load pending profile")
	}

	return pending, nil
}
