package skill_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"go-skills/internal/skill"
	skillerrors "go-skills/internal/skill/errors"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakeSkillRepo struct {
	CreateFn           func(ctx context.Context, sk *skill.Skill) error
	FindAllFn          func(ctx context.Context) ([]skill.Skill, error)
	FindByIDFn         func(ctx context.Context, id string) (*skill.Skill, error)
	UpdateFn           func(ctx context.Context, sk *skill.Skill) error
	DeleteFn           func(ctx context.Context, id string) error
	DeleteDependentsFn func(ctx context.Context, id string) error
}

func (f *fakeSkillRepo) WithTx(tx *sql.Tx) skill.Repository { return f }
func (f *fakeSkillRepo) Create(ctx context.Context, sk *skill.Skill) error {
	return f.CreateFn(ctx, sk)
}
func (f *fakeSkillRepo) FindAll(ctx context.Context) ([]skill.Skill, error) {
	return f.FindAllFn(ctx)
}
func (f *fakeSkillRepo) FindByID(ctx context.Context, id string) (*skill.Skill, error) {
	return f.FindByIDFn(ctx, id)
}
func (f *fakeSkillRepo) Update(ctx context.Context, sk *skill.Skill) error {
	return f.UpdateFn(ctx, sk)
}
func (f *fakeSkillRepo) Delete(ctx context.Context, id string) error {
	return f.DeleteFn(ctx, id)
}
func (f *fakeSkillRepo) DeleteDependents(ctx context.Context, id string) error {
	return f.DeleteDependentsFn(ctx, id)
}

type skillServiceDeps struct {
	db      *sql.DB
	sqlMock sqlmock.Sqlmock
	repo    *fakeSkillRepo
	service skill.Service
}

func setupSkillService(t *testing.T) *skillServiceDeps {
	t.Helper()
	db, sqlMock, err := sqlmock.New()
	assert.NoError(t, err)

	repo := &fakeSkillRepo{}
	svc := skill.NewService(db, repo)

	return &skillServiceDeps{db: db, sqlMock: sqlMock, repo: repo, service: svc}
}

func expectTx(t *testing.T, mock sqlmock.Sqlmock, commit bool) {
	t.Helper()
	mock.ExpectBegin()
	if commit {
		mock.ExpectCommit()
	} else {
		mock.ExpectRollback()
	}
}

func TestSkillService_Create(t *testing.T) {
	deps := setupSkillService(t)
	defer deps.db.Close()

	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		req := skill.CreateSkillRequest{
			Name:        "Go",
			Category:    skill.CategoryTechnical,
			Description: "Backend development",
		}

		deps.repo.CreateFn = func(ctx context.Context, sk *skill.Skill) error {
			assert.Equal(t, req.Name, sk.Name)
			assert.Equal(t, req.Category, sk.Category)
			assert.NotEqual(t, uuid.Nil, sk.ID)
			return nil
		}

		resp, err := deps.service.Create(ctx, req)

		assert.NoError(t, err)
		assert.NotEmpty(t, resp.ID)
		assert.Equal(t, "Go", resp.Name)
		assert.Equal(t, skill.CategoryTechnical, resp.Category)
	})

	t.Run("duplicate name", func(t *testing.T) {
		req := skill.CreateSkillRequest{Name: "Go", Category: skill.CategoryTechnical}

		deps.repo.CreateFn = func(ctx context.Context, sk *skill.Skill) error {
			return errors.New(`pq: duplicate key value violates unique constraint "skills_name_key"`)
		}

		_, err := deps.service.Create(ctx, req)

		assert.ErrorIs(t, err, skillerrors.ErrSkillAlreadyExists)
	})
}

func TestSkillService_GetByID(t *testing.T) {
	deps := setupSkillService(t)
	defer deps.db.Close()

	ctx := context.Background()
	targetID := uuid.New()

	t.Run("success", func(t *testing.T) {
		deps.repo.FindByIDFn = func(ctx context.Context, id string) (*skill.Skill, error) {
			assert.Equal(t, targetID.String(), id)
			return &skill.Skill{ID: targetID, Name: "Go", Category: skill.CategoryTechnical}, nil
		}

		resp, err := deps.service.GetByID(ctx, targetID.String())

		assert.NoError(t, err)
		assert.Equal(t, targetID.String(), resp.ID)
		assert.Equal(t, "Go", resp.Name)
	})

	t.Run("not found", func(t *testing.T) {
		deps.repo.FindByIDFn = func(ctx context.Context, id string) (*skill.Skill, error) {
			return nil, gorm.ErrRecordNotFound
		}

		_, err := deps.service.GetByID(ctx, targetID.String())

		assert.ErrorIs(t, err, skillerrors.ErrSkillNotFound)
	})
}

func TestSkillService_Update(t *testing.T) {
	deps := setupSkillService(t)
	defer deps.db.Close()

	ctx := context.Background()
	targetID := uuid.New()

	t.Run("merges only provided fields", func(t *testing.T) {
		expectTx(t, deps.sqlMock, true)

		stored := &skill.Skill{
			ID:          targetID,
			Name:        "Go",
			Category:    skill.CategoryTechnical,
			Description: "Backend development",
		}
		deps.repo.FindByIDFn = func(ctx context.Context, id string) (*skill.Skill, error) {
			return stored, nil
		}

		newName := "Golang"
		deps.repo.UpdateFn = func(ctx context.Context, sk *skill.Skill) error {
			assert.Equal(t, "Golang", sk.Name)
			assert.Equal(t, skill.CategoryTechnical, sk.Category)
			assert.Equal(t, "Backend development", sk.Description)
			return nil
		}

		resp, err := deps.service.Update(ctx, targetID.String(), skill.UpdateSkillRequest{Name: &newName})

		assert.NoError(t, err)
		assert.Equal(t, "Golang", resp.Name)
		assert.Equal(t, "Backend development", resp.Description)
	})

	t.Run("not found -> rollback", func(t *testing.T) {
		expectTx(t, deps.sqlMock, false)

		deps.repo.FindByIDFn = func(ctx context.Context, id string) (*skill.Skill, error) {
			return nil, gorm.ErrRecordNotFound
		}

		newName := "Golang"
		_, err := deps.service.Update(ctx, targetID.String(), skill.UpdateSkillRequest{Name: &newName})

		assert.ErrorIs(t, err, skillerrors.ErrSkillNotFound)
	})
}

func TestSkillService_Delete(t *testing.T) {
	deps := setupSkillService(t)
	defer deps.db.Close()

	ctx := context.Background()
	targetID := uuid.New().String()

	t.Run("removes dependents before the skill", func(t *testing.T) {
		expectTx(t, deps.sqlMock, true)

		var order []string
		deps.repo.DeleteDependentsFn = func(ctx context.Context, id string) error {
			order = append(order, "dependents")
			return nil
		}
		deps.repo.DeleteFn = func(ctx context.Context, id string) error {
			order = append(order, "skill")
			assert.Equal(t, targetID, id)
			return nil
		}

		err := deps.service.Delete(ctx, targetID)

		assert.NoError(t, err)
		assert.Equal(t, []string{"dependents", "skill"}, order)
	})

	t.Run("dependents failure -> rollback", func(t *testing.T) {
		expectTx(t, deps.sqlMock, false)

		deps.repo.DeleteDependentsFn = func(ctx context.Context, id string) error {
			return errors.New("db error")
		}

		err := deps.service.Delete(ctx, targetID)

		assert.Error(t, err)
	})
}
