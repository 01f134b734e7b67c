package usecase

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	authdomain "saypal-backend/internal/auth/domain"
	authdto "saypal-backend/internal/auth/dto"
	"saypal-backend/pkg/config"
	"saypal-backend/pkg/discord"
	"saypal-backend/pkg/password"
)

// fakeUserRepo is an in-memory UserRepository for orchestrator tests.
type fakeUserRepo struct {
	mu    sync.Mutex
	seq   int
	users map[string]*authdomain.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*authdomain.User)}
}

func (r *fakeUserRepo) Create(user *authdomain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if user.ID == "" {
		r.seq++
		user.ID = fmt.Sprintf("user-%d", r.seq)
	}
	cp := *user
	r.users[user.ID] = &cp
	return nil
}

func (r *fakeUserRepo) FindByID(id string) (*authdomain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if u, ok := r.users[id]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, nil
}

func (r *fakeUserRepo) FindByEmail(email string) (*authdomain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email != nil && *u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) FindByDiscordID(discordID int64) (*authdomain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.DiscordID != nil && *u.DiscordID == discordID {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) List(limit, offset int) ([]*authdomain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*authdomain.User
	for _, u := range r.users {
		cp := *u
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeUserRepo) Update(user *authdomain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *user
	r.users[user.ID] = &cp
	return nil
}

func (r *fakeUserRepo) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.users, id)
	return nil
}

func (r *fakeUserRepo) TouchLastLogin(id string, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if u, ok := r.users[id]; ok {
		u.LastLogin = &at
	}
	return nil
}

// fakeTokenRepo is an in-memory TokenRepository whose Rotate has the same
// exactly-one-winner semantics as the transactional postgres implementation.
type fakeTokenRepo struct {
	mu   sync.Mutex
	rows map[[2]string]struct{} // (token, userID)
}

func newFakeTokenRepo() *fakeTokenRepo {
	return &fakeTokenRepo{rows: make(map[[2]string]struct{})}
}

func (r *fakeTokenRepo) Create(token *authdomain.RefreshToken) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := [2]string{token.Token, token.UserID}
	if _, ok := r.rows[key]; ok {
		return authdomain.ErrTokenExists
	}
	r.rows[key] = struct{}{}
	return nil
}

func (r *fakeTokenRepo) Find(token, userID string) (*authdomain.RefreshToken, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.rows[[2]string{token, userID}]; ok {
		return &authdomain.RefreshToken{Token: token, UserID: userID}, nil
	}
	return nil, nil
}

func (r *fakeTokenRepo) Delete(token, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.rows, [2]string{token, userID})
	return nil
}

func (r *fakeTokenRepo) DeleteByUser(userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for key := range r.rows {
		if key[1] == userID {
			delete(r.rows, key)
		}
	}
	return nil
}

func (r *fakeTokenRepo) Rotate(userID, oldToken string, newToken *authdomain.RefreshToken) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	oldKey := [2]string{oldToken, userID}
	if _, ok := r.rows[oldKey]; !ok {
		return authdomain.ErrInvalidToken
	}
	delete(r.rows, oldKey)
	r.rows[[2]string{newToken.Token, newToken.UserID}] = struct{}{}
	return nil
}

func (r *fakeTokenRepo) count(userID string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for key := range r.rows {
		if key[1] == userID {
			n++
		}
	}
	return n
}

type fakeDiscordVerifier struct {
	identity *discord.Identity
	err      error
}

func (f *fakeDiscordVerifier) ExchangeCode(ctx context.Context, code string) (*discord.Identity, error) {
	return f.identity, f.err
}

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret:          "test-secret",
		JWTAlgorithm:       "HS512",
		AccessTokenExpiry:  8 * time.Hour,
		RefreshTokenExpiry: 30 * 24 * time.Hour,
	}
}

func newTestUsecase(t *testing.T) (AuthUsecase, *fakeUserRepo, *fakeTokenRepo, *fakeDiscordVerifier) {
	t.Helper()
	users := newFakeUserRepo()
	tokens := newFakeTokenRepo()
	dc := &fakeDiscordVerifier{}
	uc, err := NewAuthUsecase(users, tokens, dc, testConfig())
	require.NoError(t, err)
	return uc, users, tokens, dc
}

func decodeClaims(t *testing.T, tokenString string) *tokenClaims {
	t.Helper()
	codec, err := newTokenCodec("test-secret", "HS512")
	require.NoError(t, err)
	claims, err := codec.decode(tokenString)
	require.NoError(t, err)
	return claims
}

func TestSignupThenLogin_Scenario(t *testing.T) {
	t.Parallel()

	uc, _, tokens, _ := newTestUsecase(t)

	created, err := uc.Signup(&authdto.SignupRequest{Email: "u@x.com", Password: "secret123"})
	require.NoError(t, err)
	require.NotNil(t, created.User)

	got, err := uc.Login(&authdto.LoginRequest{Email: "u@x.com", Password: "secret123"})
	require.NoError(t, err)

	claims := decodeClaims(t, got.AccessToken)
	assert.Equal(t, created.User.ID, claims.Subject)
	assert.False(t, claims.Refresh)
	assert.False(t, claims.ForceTOTP)

	stored, err := tokens.Find(got.RefreshToken, created.User.ID)
	require.NoError(t, err)
	assert.NotNil(t, stored, "refresh token must be persisted under the user")
	assert.Equal(t, "u", created.User.Name, "name defaults to the email local part")
}

func TestSignup_EmailTaken(t *testing.T) {
	t.Parallel()

	uc, users, _, _ := newTestUsecase(t)

	first, err := uc.Signup(&authdto.SignupRequest{Email: "a@x.com", Password: "password1"})
	require.NoError(t, err)

	_, err = uc.Signup(&authdto.SignupRequest{Email: "a@x.com", Password: "password2"})
	assert.ErrorIs(t, err, authdomain.ErrEmailTaken)

	// First user's password is untouched by the failed signup.
	u, err := users.FindByID(first.User.ID)
	require.NoError(t, err)
	assert.True(t, password.Verify("password1", u.HashedPassword))
}

func TestLogin_InvalidCredentials(t *testing.T) {
	t.Parallel()

	uc, users, _, _ := newTestUsecase(t)

	created, err := uc.Signup(&authdto.SignupRequest{Email: "u@x.com", Password: "secret123"})
	require.NoError(t, err)

	_, err = uc.Login(&authdto.LoginRequest{Email: "nobody@x.com", Password: "secret123"})
	assert.ErrorIs(t, err, authdomain.ErrInvalidCredentials)

	_, err = uc.Login(&authdto.LoginRequest{Email: "u@x.com", Password: "wrong"})
	assert.ErrorIs(t, err, authdomain.ErrInvalidCredentials)

	// A disabled account fails identically to a bad password.
	u, _ := users.FindByID(created.User.ID)
	u.IsActive = false
	require.NoError(t, users.Update(u))

	_, err = uc.Login(&authdto.LoginRequest{Email: "u@x.com", Password: "secret123"})
	assert.ErrorIs(t, err, authdomain.ErrInvalidCredentials)
}

func TestLogin_SecondFactorGate(t *testing.T) {
	t.Parallel()

	uc, users, tokens, _ := newTestUsecase(t)

	created, err := uc.Signup(&authdto.SignupRequest{Email: "totp@x.com", Password: "secret123"})
	require.NoError(t, err)

	u, _ := users.FindByID(created.User.ID)
	u.TOTPSecret = "JBSWY3DPEHPK3PXP"
	require.NoError(t, users.Update(u))
	require.NoError(t, tokens.DeleteByUser(u.ID))

	got, err := uc.Login(&authdto.LoginRequest{Email: "totp@x.com", Password: "secret123"})
	require.NoError(t, err)

	assert.Empty(t, got.RefreshToken, "no refresh token before the second factor")
	assert.Zero(t, tokens.count(u.ID), "nothing persisted either")

	claims := decodeClaims(t, got.AccessToken)
	assert.True(t, claims.ForceTOTP)

	// The gated access token does not authenticate requests.
	_, err = uc.Authenticate(got.AccessToken)
	assert.ErrorIs(t, err, authdomain.ErrInvalidToken)
}

func TestRefresh_RotatesToken(t *testing.T) {
	t.Parallel()

	uc, _, _, _ := newTestUsecase(t)

	login, err := uc.Signup(&authdto.SignupRequest{Email: "u@x.com", Password: "secret123"})
	require.NoError(t, err)

	rotated, err := uc.Refresh(login.RefreshToken)
	require.NoError(t, err)
	assert.NotEqual(t, login.RefreshToken, rotated.RefreshToken)

	// The old token was consumed by the rotation.
	_, err = uc.Refresh(login.RefreshToken)
	assert.ErrorIs(t, err, authdomain.ErrInvalidToken)

	// The replacement works.
	_, err = uc.Refresh(rotated.RefreshToken)
	require.NoError(t, err)
}

func TestRefresh_RejectsAccessToken(t *testing.T) {
	t.Parallel()

	uc, _, _, _ := newTestUsecase(t)

	login, err := uc.Signup(&authdto.SignupRequest{Email: "u@x.com", Password: "secret123"})
	require.NoError(t, err)

	_, err = uc.Refresh(login.AccessToken)
	assert.ErrorIs(t, err, authdomain.ErrInvalidToken)
}

func TestRefresh_ConcurrentSingleUse(t *testing.T) {
	t.Parallel()

	uc, _, _, _ := newTestUsecase(t)

	login, err := uc.Signup(&authdto.SignupRequest{Email: "u@x.com", Password: "secret123"})
	require.NoError(t, err)

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i := range errs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = uc.Refresh(login.RefreshToken)
		}(i)
	}
	wg.Wait()

	// Exactly one attempt wins; the other observes the revoked row.
	if errs[0] == nil {
		assert.ErrorIs(t, errs[1], authdomain.ErrInvalidToken)
	} else {
		assert.ErrorIs(t, errs[0], authdomain.ErrInvalidToken)
		assert.NoError(t, errs[1])
	}
}

func TestRefresh_InactiveUser(t *testing.T) {
	t.Parallel()

	uc, users, _, _ := newTestUsecase(t)

	login, err := uc.Signup(&authdto.SignupRequest{Email: "u@x.com", Password: "secret123"})
	require.NoError(t, err)

	u, _ := users.FindByID(login.User.ID)
	u.IsActive = false
	require.NoError(t, users.Update(u))

	_, err = uc.Refresh(login.RefreshToken)
	assert.ErrorIs(t, err, authdomain.ErrInactiveUser)
}

func TestLogout_RevokesToken(t *testing.T) {
	t.Parallel()

	uc, _, tokens, _ := newTestUsecase(t)

	login, err := uc.Signup(&authdto.SignupRequest{Email: "u@x.com", Password: "secret123"})
	require.NoError(t, err)

	require.NoError(t, uc.Logout(login.User.ID, login.RefreshToken))
	assert.Zero(t, tokens.count(login.User.ID))

	_, err = uc.Refresh(login.RefreshToken)
	assert.ErrorIs(t, err, authdomain.ErrInvalidToken)
}

func TestAuthenticate(t *testing.T) {
	t.Parallel()

	uc, _, _, _ := newTestUsecase(t)

	login, err := uc.Signup(&authdto.SignupRequest{Email: "u@x.com", Password: "secret123"})
	require.NoError(t, err)

	user, err := uc.Authenticate(login.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, login.User.ID, user.ID)

	// A refresh token is not a valid access token.
	_, err = uc.Authenticate(login.RefreshToken)
	assert.ErrorIs(t, err, authdomain.ErrInvalidToken)

	_, err = uc.Authenticate("garbage")
	assert.ErrorIs(t, err, authdomain.ErrInvalidToken)
}

func TestDiscordSignIn_CreatesUserOnFirstLogin(t *testing.T) {
	t.Parallel()

	uc, users, tokens, dc := newTestUsecase(t)
	dc.identity = &discord.Identity{ID: 4242, Username: "palfriend", Email: "pf@x.com"}

	got, err := uc.DiscordSignIn(context.Background(), "oauth-code")
	require.NoError(t, err)
	require.NotNil(t, got.User)
	assert.Equal(t, "palfriend", got.User.Name)
	require.NotNil(t, got.User.DiscordID)
	assert.Equal(t, int64(4242), *got.User.DiscordID)
	assert.Equal(t, 1, tokens.count(got.User.ID))

	// Second sign-in resolves to the same account.
	again, err := uc.DiscordSignIn(context.Background(), "oauth-code")
	require.NoError(t, err)
	assert.Equal(t, got.User.ID, again.User.ID)

	all, _ := users.List(10, 0)
	assert.Len(t, all, 1)
}

func TestLinkDiscord_ConflictAndSuccess(t *testing.T) {
	t.Parallel()

	uc, _, _, dc := newTestUsecase(t)
	dc.identity = &discord.Identity{ID: 4242, Username: "palfriend"}

	owner, err := uc.DiscordSignIn(context.Background(), "oauth-code")
	require.NoError(t, err)

	other, err := uc.Signup(&authdto.SignupRequest{Email: "u@x.com", Password: "secret123"})
	require.NoError(t, err)

	_, err = uc.LinkDiscord(context.Background(), other.User.ID, "oauth-code")
	assert.ErrorIs(t, err, authdomain.ErrDiscordTaken)

	// Linking a fresh discord account to the second user works.
	dc.identity = &discord.Identity{ID: 9999, Username: "palfriend2"}
	linked, err := uc.LinkDiscord(context.Background(), other.User.ID, "oauth-code")
	require.NoError(t, err)
	require.NotNil(t, linked.DiscordID)
	assert.Equal(t, int64(9999), *linked.DiscordID)

	// Re-linking the same account to its owner is a no-op conflict-wise.
	dc.identity = &discord.Identity{ID: 4242, Username: "palfriend"}
	_, err = uc.LinkDiscord(context.Background(), owner.User.ID, "oauth-code")
	require.NoError(t, err)
}
