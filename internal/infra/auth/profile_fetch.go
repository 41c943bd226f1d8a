package auth

import (
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/pkg/errors"
	"golang.org/x/oauth2"
)

const maxProfileBodyBytes = 1 << 20

// FetchProfile GETs a provider profile endpoint with the access token and decodes the JSON body.
// The request goes through an oauth2 transport so the bearer header is set the same way for every provider.
func FetchProfile(ctx context.Context, httpClient *http.Client, profileURL, accessToken string, out any) error {
	if httpClient != nil {
		ctx = context.WithValue(ctx, oauth2.HTTPClient, httpClient)
	}
	client := oauth2.NewClient(ctx, oauth2.StaticTokenSource(&oauth2.Token{
		AccessToken: accessToken,
		TokenType:   "Bearer",
	}))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, profileURL, nil)
	if err != nil {
		return errors.Wrap(err, "failed to create profile request")
	}

	resp, err := client.Do(req)
	if err != nil {
		return errors.Wrap(err, "failed to get profile")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxProfileBodyBytes))
	if err != nil {
		return errors.Wrap(err, "failed to read profile response")
	}

	if resp.StatusCode != http.StatusOK {
		return errors.Errorf("profile request failed with status %d: %s", resp.StatusCode, string(body))
	}

	if err := json.Unmarshal(body, out); err != nil {
		return errors.Wrap(err, "failed to decode profile response")
	}

	return nil
}
