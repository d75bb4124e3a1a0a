package positionskill

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	positionskillerrors "go-skills/internal/positionskill/errors"
	"go-skills/internal/shared/contextutil"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

//go:generate mockgen -source=positionskill_service.go -destination=mock/positionskill_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, positionID string, req CreatePositionSkillRequest) (PositionSkillResponse, error)
	GetByPosition(ctx context.Context, positionID string) ([]PositionSkillResponse, error)
	Delete(ctx context.Context, positionID, skillID string) error
}

type service struct {
	db     *sql.DB
	repo   Repository
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("positionskill.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("positionskill.service")
	}
	return &service{db: db, repo: repo, logger: l}
}

func (s *service) Create(ctx context.Context, positionID string, req CreatePositionSkillRequest) (PositionSkillResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create position skill requested",
		zap.String("request_id", rid),
		zap.String("position_id", positionID),
		zap.String("skill_id", req.SkillID),
		zap.Int("required_level", req.RequiredLevel),
	)

	posUUID, err := uuid.Parse(positionID)
	if err != nil {
		return PositionSkillResponse{}, positionskillerrors.ErrPositionNotFound
	}

	exists, err := s.repo.PositionExists(ctx, positionID)
	if err != nil {
		return PositionSkillResponse{}, err
	}
	if !exists {
		return PositionSkillResponse{}, positionskillerrors.ErrPositionNotFound
	}

	skillExists, err := s.repo.SkillExists(ctx, req.SkillID)
	if err != nil {
		return PositionSkillResponse{}, err
	}
	if !skillExists {
		return PositionSkillResponse{}, positionskillerrors.ErrSkillNotFound
	}

	ps := &PositionSkill{
		ID:            uuid.New(),
		PositionID:    posUUID,
		SkillID:       uuid.MustParse(req.SkillID),
		RequiredLevel: req.RequiredLevel,
	}

	if err := s.repo.Create(ctx, ps); err != nil {
		s.logger.Error("create position skill persist failed", zap.String("request_id", rid), zap.Error(err))
		return PositionSkillResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("create position skill success",
		zap.String("request_id", rid),
		zap.String("position_skill_id", ps.ID.String()),
	)
	return mapToResponse(*ps), nil
}

func (s *service) GetByPosition(ctx context.Context, positionID string) ([]PositionSkillResponse, error) {
	exists, err := s.repo.PositionExists(ctx, positionID)
	if err != nil {
		s.logger.Error("position skill position lookup failed", zap.Error(err))
		return nil, err
	}
	if !exists {
		return nil, positionskillerrors.ErrPositionNotFound
	}

	links, err := s.repo.FindByPosition(ctx, positionID)
	if err != nil {
		s.logger.Error("get position skills failed", zap.String("position_id", positionID), zap.Error(err))
		return nil, mapRepositoryError(err)
	}
	return mapToListResponse(links), nil
}

// Delete removes the (position, skill) requirement pair; absent pairs are a
// no-op.
func (s *service) Delete(ctx context.Context, positionID, skillID string) error {
	s.logger.Debug("delete position skill requested",
		zap.String("position_id", positionID),
		zap.String("skill_id", skillID),
	)

	if err := s.repo.DeleteByPair(ctx, positionID, skillID); err != nil {
		s.logger.Error("delete position skill failed", zap.Error(err))
		return mapRepositoryError(err)
	}

	s.logger.Info("delete position skill success",
		zap.String("position_id", positionID),
		zap.String("skill_id", skillID),
	)
	return nil
}

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505":
			return positionskillerrors.ErrRequirementAlreadyExists
		case "23503":
			return positionskillerrors.ErrSkillNotFound
		}
	}

	if strings.Contains(strings.ToLower(err.Error()), "duplicate key value") {
		return positionskillerrors.ErrRequirementAlreadyExists
	}

	return err
}

func mapToResponse(ps PositionSkill) PositionSkillResponse {
	resp := PositionSkillResponse{
		ID:            ps.ID.String(),
		PositionID:    ps.PositionID.String(),
		SkillID:       ps.SkillID.String(),
		RequiredLevel: ps.RequiredLevel,
	}
	if ps.Skill != nil {
		resp.SkillName = ps.Skill.Name
		resp.SkillCategory = ps.Skill.Category
	}
	if !ps.CreatedAt.IsZero() {
		resp.CreatedAt = ps.CreatedAt.Format(time.RFC3339)
	}
	return resp
}

func mapToListResponse(links []PositionSkill) []PositionSkillResponse {
	res := make([]PositionSkillResponse, len(links))
	for i, ps := range links {
		res[i] = mapToResponse(ps)
	}
	return res
}
