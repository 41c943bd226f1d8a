package backend

import (
	"context"
	"encoding/json"
	"strings"

	"authgate/internal/domain/entity"
	"authgate/internal/domain/service"

	"github.com/pkg/errors"
)

// backendGateway implements service.BackendGateway on top of Client.
type backendGateway struct {
	client *Client
}

// NewGateway is the constructor for backendGateway.
func NewGateway(client *Client) service.BackendGateway {
	return &backendGateway{client: client}
}

// flexibleID accepts string or numeric ids.
type flexibleID string

func (id *flexibleID) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*id = flexibleID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return errors.Wrap(err, "id is neither string nor number")
	}
	*id = flexibleID(n.String())

	return nil
}

type userPayload struct {
	ID          flexibleID `json:"id"`
	Email       string     `json:"email"`
	DisplayName string     `json:"displayName"`
}

func (u *userPayload) toDomain() *entity.User {
	return &entity.User{
		ID:          string(u.ID),
		Email:       u.Email,
		DisplayName: u.DisplayName,
	}
}

type authResponse struct {
	User        *userPayload `json:"user"`
	AccessToken string       `json:"access_token"`

	RequiresAdditionalInfo bool            `json:"requiresAdditionalInfo"`
	Profile                *profilePayload `json:"profile"`
}

func (r *authResponse) session() (*entity.AuthSession, error) {
	if r.User == nil {
		return nil, errors.WithStack(entity.ErrIncompleteSession)
	}

	session, err := entity.NewAuthSession(r.User.toDomain(), r.AccessToken)
	if err != nil {
		return nil, errors.Wrap(err, "backend returned an incomplete session")
	}

	return session, nil
}

// profilePayload covers both the Kakao (profileImage) and Naver (profile_image) spellings.
type profilePayload struct {
	ID                flexibleID `json:"id"`
	Nickname          string     `json:"nickname"`
	Email             string     `json:"email"`
	ProfileImage      string     `json:"profileImage,omitempty"`
	ProfileImageSnake string     `json:"profile_image,omitempty"`
}

func (p *profilePayload) toDomain() entity.ProviderProfile {
	avatar := p.ProfileImage
	if avatar == "" {
		avatar = p.ProfileImageSnake
	}

	return entity.ProviderProfile{
		ID:        string(p.ID),
		Nickname:  p.Nickname,
		Email:     p.Email,
		AvatarURL: avatar,
	}
}

func profileFor(provider entity.ProviderType, profile entity.ProviderProfile) *profilePayload {
	payload := &profilePayload{
		ID:       flexibleID(profile.ID),
		Nickname: profile.Nickname,
		Email:    profile.Email,
	}
	if provider == entity.ProviderTypeNaver {
		payload.ProfileImageSnake = profile.AvatarURL
	} else {
		payload.ProfileImage = profile.AvatarURL
	}

	return payload
}

type appleUserPayload struct {
	Email string `json:"email,omitempty"`
	Name  *struct {
		FirstName string `json:"firstName,omitempty"`
		LastName  string `json:"lastName,omitempty"`
	} `json:"name,omitempty"`
}

type providerLoginRequest struct {
	AccessToken string            `json:"accessToken,omitempty"`
	IDToken     string            `json:"idToken,omitempty"`
	Profile     *profilePayload   `json:"profile,omitempty"`
	User        *appleUserPayload `json:"user,omitempty"`
}

func providerPath(provider entity.ProviderType) string {
	return "/auth/" + provider.String()
}

// Login posts email credentials to /auth/login.
func (g *backendGateway) Login(ctx context.Context, email, password string) (*entity.AuthSession, error) {
	var resp authResponse
	if err := g.client.Post(ctx, "/auth/login", "", map[string]string{
		"email":    email,
		"password": password,
	}, &resp); err != nil {
		return nil, err
	}

	return resp.session()
}

// Register posts a new account to /auth/register.
func (g *backendGateway) Register(ctx context.Context, req *service.RegisterRequest) (*entity.AuthSession, error) {
	body := map[string]string{
		"email":    req.Email,
		"password": req.Password,
	}
	if req.DisplayName != "" {
		body["displayName"] = req.DisplayName
	}

	var resp authResponse
	if err := g.client.Post(ctx, "/auth/register", "", body, &resp); err != nil {
		return nil, err
	}

	return resp.session()
}

// ProviderLogin posts the provider grant in the shape each provider endpoint expects.
func (g *backendGateway) ProviderLogin(ctx context.Context, grant *service.ProviderGrant) (*service.ProviderLoginResult, error) {
	req := providerLoginRequest{}
	switch grant.Provider {
	case entity.ProviderTypeApple:
		req.IDToken = grant.IDToken
		user := &appleUserPayload{Email: grant.Profile.Email}
		if grant.GivenName != "" || grant.FamilyName != "" {
			user.Name = &struct {
				FirstName string `json:"firstName,omitempty"`
				LastName  string `json:"lastName,omitempty"`
			}{FirstName: grant.GivenName, LastName: grant.FamilyName}
		}
		req.User = user
	default:
		req.AccessToken = grant.AccessToken
		req.Profile = profileFor(grant.Provider, grant.Profile)
	}

	var resp authResponse
	if err := g.client.Post(ctx, providerPath(grant.Provider), "", req, &resp); err != nil {
		return nil, err
	}

	if resp.RequiresAdditionalInfo {
		profile := grant.Profile
		if resp.Profile != nil {
			profile = mergeProfile(grant.Profile, resp.Profile.toDomain())
		}

		return &service.ProviderLoginResult{
			RequiresAdditionalInfo: true,
			Profile:                profile,
		}, nil
	}

	session, err := resp.session()
	if err != nil {
		return nil, err
	}

	return &service.ProviderLoginResult{Session: session}, nil
}

// CompleteProviderLogin posts the completed profile to /auth/{provider}/complete.
func (g *backendGateway) CompleteProviderLogin(ctx context.Context, provider entity.ProviderType, temporaryToken string, profile entity.ProviderProfile) (*entity.AuthSession, error) {
	req := providerLoginRequest{Profile: profileFor(provider, profile)}
	if provider == entity.ProviderTypeApple {
		req.IDToken = temporaryToken
	} else {
		req.AccessToken = temporaryToken
	}

	var resp authResponse
	if err := g.client.Post(ctx, providerPath(provider)+"/complete", "", req, &resp); err != nil {
		return nil, err
	}

	return resp.session()
}

// FetchProfile reads the current user with the bearer token.
func (g *backendGateway) FetchProfile(ctx context.Context, token string) (*entity.User, error) {
	var user userPayload
	if err := g.client.Get(ctx, "/auth/profile", token, &user); err != nil {
		return nil, err
	}
	if user.ID == "" {
		return nil, errors.New("backend profile response has no user id")
	}

	return user.toDomain(), nil
}

// UpdateProfile posts the editable fields and returns the stored user.
func (g *backendGateway) UpdateProfile(ctx context.Context, token string, update *service.ProfileUpdate) (*entity.User, error) {
	var user userPayload
	if err := g.client.Post(ctx, "/auth/profile", token, map[string]string{
		"email":       update.Email,
		"displayName": update.DisplayName,
	}, &user); err != nil {
		return nil, err
	}

	return user.toDomain(), nil
}

// mergeProfile prefers what the backend reports and falls back to the provider profile.
func mergeProfile(provider, backend entity.ProviderProfile) entity.ProviderProfile {
	out := provider
	if strings.TrimSpace(backend.ID) != "" {
		out.ID = backend.ID
	}
	if backend.Nickname != "" {
		out.Nickname = backend.Nickname
	}
	if backend.Email != "" {
		out.Email = backend.Email
	}
	if backend.AvatarURL != "" {
		out.AvatarURL = backend.AvatarURL
	}

	return out
}
