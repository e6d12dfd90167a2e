package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/RifatHossaiN47/cuet-foodexpress-backend/app/models"
	"github.com/RifatHossaiN47/cuet-foodexpress-backend/app/services"
)

type fakeUserStore struct {
	byEmail map[string]models.User
}

func newFakeUserStore(users ...models.User) *fakeUserStore {
	s := &fakeUserStore{byEmail: map[string]models.User{}}
	for _, u := range users {
		s.byEmail[u.Email] = u
	}
	return s
}

func (s *fakeUserStore) FindByEmail(_ context.Context, email string) (models.User, error) {
	u, ok := s.byEmail[email]
	if !ok {
		return models.User{}, mongo.ErrNoDocuments
	}
	return u, nil
}

func (s *fakeUserStore) Insert(_ context.Context, user *models.User) (primitive.ObjectID, error) {
	user.ID = primitive.NewObjectID()
	s.byEmail[user.Email] = *user
	return user.ID, nil
}

func (s *fakeUserStore) All(_ context.Context) ([]models.User, error) {
	out := []models.User{}
	for _, u := range s.byEmail {
		out = append(out, u)
	}
	return out, nil
}

func (s *fakeUserStore) DeleteByID(_ context.Context, id primitive.ObjectID) (int64, error) {
	for email, u := range s.byEmail {
		if u.ID == id {
			delete(s.byEmail, email)
			return 1, nil
		}
	}
	return 0, nil
}

func (s *fakeUserStore) PromoteToAdmin(_ context.Context, id primitive.ObjectID) (int64, error) {
	for email, u := range s.byEmail {
		if u.ID == id {
			u.Role = models.RoleAdmin
			s.byEmail[email] = u
			return 1, nil
		}
	}
	return 0, nil
}

func TestRegisterNewUser(t *testing.T) {
	svc := services.NewUserService(newFakeUserStore())

	res, err := svc.Register(context.Background(), "Alice", "alice@example.com")
	require.NoError(t, err)
	assert.False(t, res.Existed)
	require.NotNil(t, res.InsertedID)
	assert.False(t, res.InsertedID.IsZero())
}

func TestRegisterExistingUserIsIdempotent(t *testing.T) {
	store := newFakeUserStore(models.User{
		ID:    primitive.NewObjectID(),
		Name:  "Alice",
		Email: "alice@example.com",
		Role:  models.RoleUser,
	})
	svc := services.NewUserService(store)

	res, err := svc.Register(context.Background(), "Alice", "alice@example.com")
	require.NoError(t, err)
	assert.True(t, res.Existed)
	assert.Nil(t, res.InsertedID)
}

func TestIsAdmin(t *testing.T) {
	store := newFakeUserStore(
		models.User{ID: primitive.NewObjectID(), Email: "admin@example.com", Role: models.RoleAdmin},
		models.User{ID: primitive.NewObjectID(), Email: "user@example.com", Role: models.RoleUser},
	)
	svc := services.NewUserService(store)

	admin, err := svc.IsAdmin(context.Background(), "admin@example.com")
	require.NoError(t, err)
	assert.True(t, admin)

	admin, err = svc.IsAdmin(context.Background(), "user@example.com")
	require.NoError(t, err)
	assert.False(t, admin)
}

func TestIsAdminUnknownEmail(t *testing.T) {
	svc := services.NewUserService(newFakeUserStore())

	admin, err := svc.IsAdmin(context.Background(), "nobody@example.com")
	require.NoError(t, err)
	assert.False(t, admin)
}

func TestPromoteAndDeleteRejectMalformedID(t *testing.T) {
	svc := services.NewUserService(newFakeUserStore())

	_, err := svc.Promote(context.Background(), "not-an-object-id")
	assert.ErrorIs(t, err, services.ErrInvalidID)

	_, err = svc.Delete(context.Background(), "123")
	assert.ErrorIs(t, err, services.ErrInvalidID)
}

func TestPromoteSetsAdminRole(t *testing.T) {
	id := primitive.NewObjectID()
	store := newFakeUserStore(models.User{ID: id, Email: "user@example.com", Role: models.RoleUser})
	svc := services.NewUserService(store)

	modified, err := svc.Promote(context.Background(), id.Hex())
	require.NoError(t, err)
	assert.Equal(t, int64(1), modified)

	admin, err := svc.IsAdmin(context.Background(), "user@example.com")
	require.NoError(t, err)
	assert.True(t, admin)
}
