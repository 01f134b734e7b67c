package discord

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"golang.org/x/oauth2"

	"saypal-backend/pkg/config"
)

const identityURL = "https://discord.com/api/users/@me"

// Identity is the subset of the Discord /users/@me payload the backend needs.
type Identity struct {
	ID       int64
	Username string
	Email    string
}

// Client exchanges OAuth2 authorization codes for Discord identities.
type Client struct {
	oauth *oauth2.Config
}

func NewClient(cfg *config.Config) *Client {
	return &Client{
		oauth: &oauth2.Config{
			ClientID:     cfg.DiscordClientID,
			ClientSecret: cfg.DiscordClientSecret,
			RedirectURL:  cfg.DiscordRedirectURI,
			Scopes:       []string{"identify", "email"},
			Endpoint: oauth2.Endpoint{
				AuthURL:  "https://discord.com/oauth2/authorize",
				TokenURL: "https://discord.com/api/oauth2/token",
			},
		},
	}
}

// AuthURL returns the URL the frontend redirects the user to.
func (c *Client) AuthURL(state string) string {
	return c.oauth.AuthCodeURL(state)
}

// ExchangeCode trades an authorization code for the user's Discord identity.
func (c *Client) ExchangeCode(ctx context.Context, code string) (*Identity, error) {
	token, err := c.oauth.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("discord code exchange: %w", err)
	}

	resp, err := c.oauth.Client(ctx, token).Get(identityURL)
	if err != nil {
		return nil, fmt.Errorf("discord identity fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("discord identity fetch: status %d", resp.StatusCode)
	}

	var payload struct {
		ID       string `json:"id"`
		Username string `json:"username"`
		Email    string `json:"email"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("discord identity decode: %w", err)
	}

	// Discord snowflakes are decimal strings.
	id, err := strconv.ParseInt(payload.ID, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("discord identity decode: bad id %q", payload.ID)
	}

	return &Identity{ID: id, Username: payload.Username, Email: payload.Email}, nil
}
