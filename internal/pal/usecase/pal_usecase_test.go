package usecase

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	authdomain "saypal-backend/internal/auth/domain"
	paldomain "saypal-backend/internal/pal/domain"
	paldto "saypal-backend/internal/pal/dto"
)

type fakePalRepo struct {
	pals map[string]*paldomain.Pal // keyed by user id
}

func newFakePalRepo() *fakePalRepo {
	return &fakePalRepo{pals: make(map[string]*paldomain.Pal)}
}

func (r *fakePalRepo) Create(pal *paldomain.Pal) error {
	pal.ID = "pal-" + pal.UserID
	cp := *pal
	r.pals[pal.UserID] = &cp
	return nil
}

func (r *fakePalRepo) FindByUserID(userID string) (*paldomain.Pal, error) {
	if p, ok := r.pals[userID]; ok {
		cp := *p
		return &cp, nil
	}
	return nil, nil
}

func (r *fakePalRepo) FindByDiscordID(discordID int64) (*paldomain.Pal, error) {
	for _, p := range r.pals {
		if p.DiscordID != nil && *p.DiscordID == discordID {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakePalRepo) Update(pal *paldomain.Pal) error {
	cp := *pal
	r.pals[pal.UserID] = &cp
	return nil
}

func (r *fakePalRepo) DeleteByUserID(userID string) error {
	delete(r.pals, userID)
	return nil
}

type fakeUserRepo struct {
	users map[string]*authdomain.User
}

func (r *fakeUserRepo) Create(user *authdomain.User) error   { r.users[user.ID] = user; return nil }
func (r *fakeUserRepo) Update(user *authdomain.User) error   { r.users[user.ID] = user; return nil }
func (r *fakeUserRepo) Delete(id string) error               { delete(r.users, id); return nil }
func (r *fakeUserRepo) TouchLastLogin(string, time.Time) error { return nil }

func (r *fakeUserRepo) FindByID(id string) (*authdomain.User, error) {
	return r.users[id], nil
}

func (r *fakeUserRepo) FindByEmail(email string) (*authdomain.User, error) { return nil, nil }

func (r *fakeUserRepo) FindByDiscordID(discordID int64) (*authdomain.User, error) {
	return nil, nil
}

func (r *fakeUserRepo) List(limit, offset int) ([]*authdomain.User, error) { return nil, nil }

func newTestUsecase() (PalUsecase, *fakePalRepo, *fakeUserRepo) {
	pals := newFakePalRepo()
	discordID := int64(4242)
	users := &fakeUserRepo{users: map[string]*authdomain.User{
		"user-1": {ID: "user-1", Name: "james", DiscordID: &discordID},
	}}
	return NewPalUsecase(pals, users), pals, users
}

func TestCreate_OnePalPerUser(t *testing.T) {
	t.Parallel()

	uc, _, _ := newTestUsecase()

	pal, err := uc.Create("user-1", &paldto.CreatePalRequest{
		Name:        "Nova",
		Personality: map[string]any{"tone": "warm"},
	})
	require.NoError(t, err)
	assert.Equal(t, paldomain.DefaultRelationshipStatus, pal.RelationshipStatus)
	require.NotNil(t, pal.DiscordID, "pal inherits the owner's discord id")
	assert.Equal(t, int64(4242), *pal.DiscordID)

	_, err = uc.Create("user-1", &paldto.CreatePalRequest{
		Name:        "Second",
		Personality: map[string]any{},
	})
	assert.ErrorIs(t, err, paldomain.ErrPalExists)
}

func TestUpdate_ExplicitFieldMerge(t *testing.T) {
	t.Parallel()

	uc, _, _ := newTestUsecase()

	_, err := uc.Create("user-1", &paldto.CreatePalRequest{
		Name:        "Nova",
		Personality: map[string]any{"tone": "warm"},
	})
	require.NoError(t, err)

	bio := "likes stargazing"
	updated, err := uc.Update("user-1", &paldto.UpdatePalRequest{Bio: &bio})
	require.NoError(t, err)

	assert.Equal(t, "Nova", updated.Name)
	assert.Equal(t, map[string]any{"tone": "warm"}, updated.Personality)
	require.NotNil(t, updated.Bio)
	assert.Equal(t, "likes stargazing", *updated.Bio)

	status := "Close friends"
	updated, err = uc.Update("user-1", &paldto.UpdatePalRequest{RelationshipStatus: &status})
	require.NoError(t, err)
	assert.Equal(t, "Close friends", updated.RelationshipStatus)
	require.NotNil(t, updated.Bio, "earlier update survives")
}

func TestGetAndDelete(t *testing.T) {
	t.Parallel()

	uc, _, _ := newTestUsecase()

	_, err := uc.GetByUserID("user-1")
	assert.ErrorIs(t, err, paldomain.ErrPalNotFound)

	_, err = uc.Create("user-1", &paldto.CreatePalRequest{
		Name:        "Nova",
		Personality: map[string]any{},
	})
	require.NoError(t, err)

	byDiscord, err := uc.GetByDiscordID(4242)
	require.NoError(t, err)
	assert.Equal(t, "Nova", byDiscord.Name)

	require.NoError(t, uc.Delete("user-1"))
	_, err = uc.GetByUserID("user-1")
	assert.ErrorIs(t, err, paldomain.ErrPalNotFound)
	assert.ErrorIs(t, uc.Delete("user-1"), paldomain.ErrPalNotFound)
}
