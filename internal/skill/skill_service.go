package skill

import (
	"context"
	"database/sql"
	"time"

	"go-skills/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

//go:generate mockgen -source=skill_service.go -destination=mock/skill_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateSkillRequest) (SkillResponse, error)
	GetAll(ctx context.Context) ([]SkillResponse, error)
	GetByID(ctx context.Context, id string) (SkillResponse, error)
	Update(ctx context.Context, id string, req UpdateSkillRequest) (SkillResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	db     *sql.DB
	repo   Repository
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("skill.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("skill.service")
	}
	return &service{db: db, repo: repo, logger: l}
}

func (s *service) Create(ctx context.Context, req CreateSkillRequest) (SkillResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create skill requested",
		zap.String("request_id", rid),
		zap.String("name", req.Name),
		zap.String("category", req.Category),
	)

	sk := &Skill{
		ID:          uuid.New(),
		Name:        req.Name,
		Category:    req.Category,
		Description: req.Description,
	}

	if err := s.repo.Create(ctx, sk); err != nil {
		s.logger.Error("create skill persist failed", zap.String("request_id", rid), zap.Error(err))
		return SkillResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("create skill success",
		zap.String("request_id", rid),
		zap.String("skill_id", sk.ID.String()),
	)
	return mapToResponse(*sk), nil
}

func (s *service) GetAll(ctx context.Context) ([]SkillResponse, error) {
	skills, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("get all skills failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}
	return mapToListResponse(skills), nil
}

func (s *service) GetByID(ctx context.Context, id string) (SkillResponse, error) {
	sk, err := s.repo.FindByID(ctx, id)
	if err != nil {
		s.logger.Error("get skill by id failed", zap.String("skill_id", id), zap.Error(err))
		return SkillResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*sk), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateSkillRequest) (SkillResponse, error) {
	s.logger.Debug("update skill requested", zap.String("skill_id", id))

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("update skill begin tx failed", zap.Error(err))
		return SkillResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	sk, err := qtx.FindByID(ctx, id)
	if err != nil {
		return SkillResponse{}, mapRepositoryError(err)
	}

	if req.Name != nil {
		sk.Name = *req.Name
	}
	if req.Category != nil {
		sk.Category = *req.Category
	}
	if req.Description != nil {
		sk.Description = *req.Description
	}

	if err := qtx.Update(ctx, sk); err != nil {
		s.logger.Error("update skill persist failed", zap.String("skill_id", id), zap.Error(err))
		return SkillResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("update skill commit failed", zap.Error(err))
		return SkillResponse{}, err
	}

	s.logger.Info("update skill success", zap.String("skill_id", id))
	return mapToResponse(*sk), nil
}

// Delete removes the skill together with its requirement links and
// evaluations. Deleting an absent id is a no-op.
func (s *service) Delete(ctx context.Context, id string) error {
	s.logger.Debug("delete skill requested", zap.String("skill_id", id))

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("delete skill begin tx failed", zap.Error(err))
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	if err := qtx.DeleteDependents(ctx, id); err != nil {
		s.logger.Error("delete skill dependents failed", zap.String("skill_id", id), zap.Error(err))
		return mapRepositoryError(err)
	}

	if err := qtx.Delete(ctx, id); err != nil {
		s.logger.Error("delete skill failed", zap.String("skill_id", id), zap.Error(err))
		return mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("delete skill commit failed", zap.Error(err))
		return err
	}

	s.logger.Info("delete skill success", zap.String("skill_id", id))
	return nil
}

func mapToResponse(sk Skill) SkillResponse {
	resp := SkillResponse{
		ID:          sk.ID.String(),
		Name:        sk.Name,
		Category:    sk.Category,
		Description: sk.Description,
	}
	if !sk.CreatedAt.IsZero() {
		resp.CreatedAt = sk.CreatedAt.Format(time.RFC3339)
	}
	if !sk.UpdatedAt.IsZero() {
		resp.UpdatedAt = sk.UpdatedAt.Format(time.RFC3339)
	}
	return resp
}

func mapToListResponse(skills []Skill) []SkillResponse {
	res := make([]SkillResponse, len(skills))
	for i, sk := range skills {
		res[i] = mapToResponse(sk)
	}
	return res
}
