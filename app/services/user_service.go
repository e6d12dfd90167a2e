package services

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/RifatHossaiN47/cuet-foodexpress-backend/app/models"
)

// UserStore is the persistence surface UserService needs.
type UserStore interface {
	FindByEmail(ctx context.Context, email string) (models.User, error)
	Insert(ctx context.Context, user *models.User) (primitive.ObjectID, error)
	All(ctx context.Context) ([]models.User, error)
	DeleteByID(ctx context.Context, id primitive.ObjectID) (int64, error)
	PromoteToAdmin(ctx context.Context, id primitive.ObjectID) (int64, error)
}

// UserService manages accounts and role checks.
type UserService struct {
	users UserStore
}

func NewUserService(users UserStore) *UserService {
	return &UserService{users: users}
}

// RegisterResult reports whether a registration inserted a new document.
// InsertedID is nil when the email was already registered.
type RegisterResult struct {
	InsertedID *primitive.ObjectID
	Existed    bool
}

// Register stores a new account, or reports that the email already exists.
// Registration is idempotent so a social login can call it on every sign-in.
func (s *UserService) Register(ctx context.Context, name, email string) (RegisterResult, error) {
	_, err := s.users.FindByEmail(ctx, email)
	if err == nil {
		return RegisterResult{Existed: true}, nil
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return RegisterResult{}, fmt.Errorf("register: lookup %s: %w", email, err)
	}

	id, err := s.users.Insert(ctx, &models.User{Name: name, Email: email, Role: models.RoleUser})
	if err != nil {
		return RegisterResult{}, fmt.Errorf("register: insert %s: %w", email, err)
	}
	return RegisterResult{InsertedID: &id}, nil
}

// IsAdmin reports whether the account with this email holds the admin role.
// Unknown emails are simply not admins.
func (s *UserService) IsAdmin(ctx context.Context, email string) (bool, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("admin check %s: %w", email, err)
	}
	return user.Role.IsAdmin(), nil
}

// All lists every account.
func (s *UserService) All(ctx context.Context) ([]models.User, error) {
	return s.users.All(ctx)
}

// Delete removes an account by hex id.
func (s *UserService) Delete(ctx context.Context, hexID string) (int64, error) {
	id, err := primitive.ObjectIDFromHex(hexID)
	if err != nil {
		return 0, ErrInvalidID
	}
	return s.users.DeleteByID(ctx, id)
}

// Promote grants the admin role to an account by hex id.
func (s *UserService) Promote(ctx context.Context, hexID string) (int64, error) {
	id, err := primitive.ObjectIDFromHex(hexID)
	if err != nil {
		return 0, ErrInvalidID
	}
	return s.users.PromoteToAdmin(ctx, id)
}
