package auth_test

import (
	"context"
	"testing"

	"go-skills/internal/auth"
	autherrors "go-skills/internal/auth/errors"
	"go-skills/internal/rbac"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type fakeAuthRepo struct {
	CreateFn     func(ctx context.Context, user *auth.User) error
	GetByEmailFn func(ctx context.Context, email string) (*auth.User, error)
	GetByIDFn    func(ctx context.Context, id uuid.UUID) (*auth.User, error)
}

func (f *fakeAuthRepo) Create(ctx context.Context, user *auth.User) error {
	return f.CreateFn(ctx, user)
}
func (f *fakeAuthRepo) GetByEmail(ctx context.Context, email string) (*auth.User, error) {
	return f.GetByEmailFn(ctx, email)
}
func (f *fakeAuthRepo) GetByID(ctx context.Context, id uuid.UUID) (*auth.User, error) {
	return f.GetByIDFn(ctx, id)
}

func TestAuthService_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("hashes password and defaults role", func(t *testing.T) {
		repo := &fakeAuthRepo{
			CreateFn: func(ctx context.Context, user *auth.User) error {
				assert.NotEqual(t, "s3cret", user.Password)
				assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("s3cret")))
				assert.Equal(t, rbac.RoleEmployee, user.Role)
				return nil
			},
		}
		svc := auth.NewService(repo)

		resp, err := svc.Register(ctx, auth.RegisterRequest{
			Email:    "ada@example.com",
			Password: "s3cret",
		})

		assert.NoError(t, err)
		assert.Equal(t, "ada@example.com", resp.Email)
		assert.Equal(t, rbac.RoleEmployee, resp.Role)
	})
}

func TestAuthService_Login(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	ctx := context.Background()

	hash, _ := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.DefaultCost)
	stored := &auth.User{
		ID:       uuid.New(),
		Email:    "ada@example.com",
		Password: string(hash),
		Role:     rbac.RoleManager,
	}

	t.Run("success issues both tokens", func(t *testing.T) {
		repo := &fakeAuthRepo{
			GetByEmailFn: func(ctx context.Context, email string) (*auth.User, error) {
				assert.Equal(t, "ada@example.com", email)
				return stored, nil
			},
		}
		svc := auth.NewService(repo)

		access, refresh, resp, err := svc.Login(ctx, "ada@example.com", "s3cret")

		assert.NoError(t, err)
		assert.NotEmpty(t, access)
		assert.NotEmpty(t, refresh)
		assert.Equal(t, stored.ID.String(), resp.ID)
	})

	t.Run("wrong password", func(t *testing.T) {
		repo := &fakeAuthRepo{
			GetByEmailFn: func(ctx context.Context, email string) (*auth.User, error) {
				return stored, nil
			},
		}
		svc := auth.NewService(repo)

		_, _, _, err := svc.Login(ctx, "ada@example.com", "wrong")

		assert.ErrorIs(t, err, autherrors.ErrInvalidCredentials)
	})

	t.Run("unknown email", func(t *testing.T) {
		repo := &fakeAuthRepo{
			GetByEmailFn: func(ctx context.Context, email string) (*auth.User, error) {
				return nil, gorm.ErrRecordNotFound
			},
		}
		svc := auth.NewService(repo)

		_, _, _, err := svc.Login(ctx, "nobody@example.com", "s3cret")

		assert.ErrorIs(t, err, autherrors.ErrInvalidCredentials)
	})
}

func TestAuthService_RefreshToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	ctx := context.Background()

	hash, _ := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.DefaultCost)
	stored := &auth.User{
		ID:       uuid.New(),
		Email:    "ada@example.com",
		Password: string(hash),
		Role:     rbac.RoleEmployee,
	}

	t.Run("rotates tokens for a valid refresh token", func(t *testing.T) {
		repo := &fakeAuthRepo{
			GetByEmailFn: func(ctx context.Context, email string) (*auth.User, error) {
				return stored, nil
			},
			GetByIDFn: func(ctx context.Context, id uuid.UUID) (*auth.User, error) {
				assert.Equal(t, stored.ID, id)
				return stored, nil
			},
		}
		svc := auth.NewService(repo)

		_, refresh, _, err := svc.Login(ctx, "ada@example.com", "s3cret")
		assert.NoError(t, err)

		newAccess, newRefresh, resp, err := svc.RefreshToken(ctx, refresh)

		assert.NoError(t, err)
		assert.NotEmpty(t, newAccess)
		assert.NotEmpty(t, newRefresh)
		assert.Equal(t, stored.Email, resp.Email)
	})

	t.Run("garbage token rejected", func(t *testing.T) {
		svc := auth.NewService(&fakeAuthRepo{})

		_, _, _, err := svc.RefreshToken(ctx, "not-a-token")

		assert.ErrorIs(t, err, autherrors.ErrInvalidRefreshToken)
	})
}

func TestAuthService_GetMe(t *testing.T) {
	ctx := context.Background()

	t.Run("invalid id", func(t *testing.T) {
		svc := auth.NewService(&fakeAuthRepo{})

		_, err := svc.GetMe(ctx, "not-a-uuid")

		assert.ErrorIs(t, err, autherrors.ErrInvalidUserID)
	})

	t.Run("found", func(t *testing.T) {
		userID := uuid.New()
		repo := &fakeAuthRepo{
			GetByIDFn: func(ctx context.Context, id uuid.UUID) (*auth.User, error) {
				return &auth.User{ID: userID, Email: "ada@example.com", Role: rbac.RoleAdmin}, nil
			},
		}
		svc := auth.NewService(repo)

		resp, err := svc.GetMe(ctx, userID.String())

		assert.NoError(t, err)
		assert.Equal(t, "ada@example.com", resp.Email)
		assert.Equal(t, rbac.RoleAdmin, resp.Role)
	})
}
