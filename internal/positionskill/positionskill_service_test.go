package positionskill_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"go-skills/internal/positionskill"
	positionskillerrors "go-skills/internal/positionskill/errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

type fakePositionSkillRepo struct {
	CreateFn         func(ctx context.Context, ps *positionskill.PositionSkill) error
	FindByPositionFn func(ctx context.Context, positionID string) ([]positionskill.PositionSkill, error)
	DeleteByPairFn   func(ctx context.Context, positionID, skillID string) error
	PositionExistsFn func(ctx context.Context, positionID string) (bool, error)
	SkillExistsFn    func(ctx context.Context, skillID string) (bool, error)
}

func (f *fakePositionSkillRepo) WithTx(tx *sql.Tx) positionskill.Repository { return f }
func (f *fakePositionSkillRepo) Create(ctx context.Context, ps *positionskill.PositionSkill) error {
	return f.CreateFn(ctx, ps)
}
func (f *fakePositionSkillRepo) FindByPosition(ctx context.Context, positionID string) ([]positionskill.PositionSkill, error) {
	return f.FindByPositionFn(ctx, positionID)
}
func (f *fakePositionSkillRepo) DeleteByPair(ctx context.Context, positionID, skillID string) error {
	return f.DeleteByPairFn(ctx, positionID, skillID)
}
func (f *fakePositionSkillRepo) PositionExists(ctx context.Context, positionID string) (bool, error) {
	return f.PositionExistsFn(ctx, positionID)
}
func (f *fakePositionSkillRepo) SkillExists(ctx context.Context, skillID string) (bool, error) {
	return f.SkillExistsFn(ctx, skillID)
}

func TestPositionSkillService_Create(t *testing.T) {
	ctx := context.Background()
	positionID := uuid.New().String()
	skillID := uuid.New().String()

	t.Run("success", func(t *testing.T) {
		repo := &fakePositionSkillRepo{
			PositionExistsFn: func(ctx context.Context, pid string) (bool, error) { return true, nil },
			SkillExistsFn:    func(ctx context.Context, sid string) (bool, error) { return true, nil },
			CreateFn: func(ctx context.Context, ps *positionskill.PositionSkill) error {
				assert.Equal(t, positionID, ps.PositionID.String())
				assert.Equal(t, skillID, ps.SkillID.String())
				assert.Equal(t, 4, ps.RequiredLevel)
				return nil
			},
		}
		svc := positionskill.NewService(nil, repo)

		resp, err := svc.Create(ctx, positionID, positionskill.CreatePositionSkillRequest{
			SkillID:       skillID,
			RequiredLevel: 4,
		})

		assert.NoError(t, err)
		assert.Equal(t, 4, resp.RequiredLevel)
		assert.Equal(t, positionID, resp.PositionID)
	})

	t.Run("unknown position", func(t *testing.T) {
		repo := &fakePositionSkillRepo{
			PositionExistsFn: func(ctx context.Context, pid string) (bool, error) { return false, nil },
		}
		svc := positionskill.NewService(nil, repo)

		_, err := svc.Create(ctx, positionID, positionskill.CreatePositionSkillRequest{
			SkillID:       skillID,
			RequiredLevel: 3,
		})

		assert.ErrorIs(t, err, positionskillerrors.ErrPositionNotFound)
	})

	t.Run("unknown skill", func(t *testing.T) {
		repo := &fakePositionSkillRepo{
			PositionExistsFn: func(ctx context.Context, pid string) (bool, error) { return true, nil },
			SkillExistsFn:    func(ctx context.Context, sid string) (bool, error) { return false, nil },
		}
		svc := positionskill.NewService(nil, repo)

		_, err := svc.Create(ctx, positionID, positionskill.CreatePositionSkillRequest{
			SkillID:       skillID,
			RequiredLevel: 3,
		})

		assert.ErrorIs(t, err, positionskillerrors.ErrSkillNotFound)
	})

	t.Run("duplicate pair", func(t *testing.T) {
		repo := &fakePositionSkillRepo{
			PositionExistsFn: func(ctx context.Context, pid string) (bool, error) { return true, nil },
			SkillExistsFn:    func(ctx context.Context, sid string) (bool, error) { return true, nil },
			CreateFn: func(ctx context.Context, ps *positionskill.PositionSkill) error {
				return &pgconn.PgError{Code: "23505", ConstraintName: "uq_position_skill"}
			},
		}
		svc := positionskill.NewService(nil, repo)

		_, err := svc.Create(ctx, positionID, positionskill.CreatePositionSkillRequest{
			SkillID:       skillID,
			RequiredLevel: 3,
		})

		assert.ErrorIs(t, err, positionskillerrors.ErrRequirementAlreadyExists)
	})
}

func TestPositionSkillService_GetByPosition(t *testing.T) {
	ctx := context.Background()
	positionID := uuid.New().String()

	t.Run("includes skill projection", func(t *testing.T) {
		skillID := uuid.New()
		repo := &fakePositionSkillRepo{
			PositionExistsFn: func(ctx context.Context, pid string) (bool, error) { return true, nil },
			FindByPositionFn: func(ctx context.Context, pid string) ([]positionskill.PositionSkill, error) {
				return []positionskill.PositionSkill{{
					ID:            uuid.New(),
					PositionID:    uuid.MustParse(positionID),
					SkillID:       skillID,
					RequiredLevel: 5,
					Skill: &positionskill.RequiredSkill{
						ID:       skillID,
						Name:     "Kubernetes",
						Category: "technical",
					},
				}}, nil
			},
		}
		svc := positionskill.NewService(nil, repo)

		resp, err := svc.GetByPosition(ctx, positionID)

		assert.NoError(t, err)
		assert.Len(t, resp, 1)
		assert.Equal(t, "Kubernetes", resp[0].SkillName)
		assert.Equal(t, "technical", resp[0].SkillCategory)
	})

	t.Run("unknown position", func(t *testing.T) {
		repo := &fakePositionSkillRepo{
			PositionExistsFn: func(ctx context.Context, pid string) (bool, error) { return false, nil },
		}
		svc := positionskill.NewService(nil, repo)

		_, err := svc.GetByPosition(ctx, positionID)

		assert.ErrorIs(t, err, positionskillerrors.ErrPositionNotFound)
	})
}

func TestPositionSkillService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("idempotent on absent pair", func(t *testing.T) {
		repo := &fakePositionSkillRepo{
			DeleteByPairFn: func(ctx context.Context, pid, sid string) error { return nil },
		}
		svc := positionskill.NewService(nil, repo)

		err := svc.Delete(ctx, uuid.New().String(), uuid.New().String())

		assert.NoError(t, err)
	})

	t.Run("repo failure surfaces", func(t *testing.T) {
		repo := &fakePositionSkillRepo{
			DeleteByPairFn: func(ctx context.Context, pid, sid string) error {
				return errors.New("db error")
			},
		}
		svc := positionskill.NewService(nil, repo)

		err := svc.Delete(ctx, uuid.New().String(), uuid.New().String())

		assert.Error(t, err)
	})
}
