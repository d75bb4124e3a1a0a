package position

import (
	"context"
	"database/sql"
	"errors"
	"time"

	positionerrors "go-skills/internal/position/errors"
	"go-skills/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=position_service.go -destination=mock/position_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreatePositionRequest) (PositionResponse, error)
	GetAll(ctx context.Context) ([]PositionResponse, error)
	GetByID(ctx context.Context, id string) (PositionResponse, error)
	Update(ctx context.Context, id string, req UpdatePositionRequest) (PositionResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	db     *sql.DB
	repo   Repository
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("position.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("position.service")
	}
	return &service{db: db, repo: repo, logger: l}
}

func (s *service) Create(ctx context.Context, req CreatePositionRequest) (PositionResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create position requested",
		zap.String("request_id", rid),
		zap.String("title", req.Title),
	)

	pos := &Position{
		ID:          uuid.New(),
		Title:       req.Title,
		Description: req.Description,
		Department:  req.Department,
		Level:       req.Level,
	}

	if err := s.repo.Create(ctx, pos); err != nil {
		s.logger.Error("create position persist failed", zap.String("request_id", rid), zap.Error(err))
		return PositionResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("create position success",
		zap.String("request_id", rid),
		zap.String("position_id", pos.ID.String()),
	)
	return mapToResponse(*pos), nil
}

func (s *service) GetAll(ctx context.Context) ([]PositionResponse, error) {
	positions, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("get all positions failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}
	return mapToListResponse(positions), nil
}

func (s *service) GetByID(ctx context.Context, id string) (PositionResponse, error) {
	pos, err := s.repo.FindByID(ctx, id)
	if err != nil {
		s.logger.Error("get position by id failed", zap.String("position_id", id), zap.Error(err))
		return PositionResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*pos), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdatePositionRequest) (PositionResponse, error) {
	s.logger.Debug("update position requested", zap.String("position_id", id))

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("update position begin tx failed", zap.Error(err))
		return PositionResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	pos, err := qtx.FindByID(ctx, id)
	if err != nil {
		return PositionResponse{}, mapRepositoryError(err)
	}

	if req.Title != nil {
		pos.Title = *req.Title
	}
	if req.Description != nil {
		pos.Description = *req.Description
	}
	if req.Department != nil {
		pos.Department = *req.Department
	}
	if req.Level != nil {
		pos.Level = *req.Level
	}

	if err := qtx.Update(ctx, pos); err != nil {
		s.logger.Error("update position persist failed", zap.String("position_id", id), zap.Error(err))
		return PositionResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("update position commit failed", zap.Error(err))
		return PositionResponse{}, err
	}

	s.logger.Info("update position success", zap.String("position_id", id))
	return mapToResponse(*pos), nil
}

// Delete removes the position, its requirement rows, and unassigns employees
// still holding it. Deleting an absent id is a no-op.
func (s *service) Delete(ctx context.Context, id string) error {
	s.logger.Debug("delete position requested", zap.String("position_id", id))

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("delete position begin tx failed", zap.Error(err))
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	if err := qtx.DetachDependents(ctx, id); err != nil {
		s.logger.Error("delete position detach dependents failed", zap.String("position_id", id), zap.Error(err))
		return mapRepositoryError(err)
	}

	if err := qtx.Delete(ctx, id); err != nil {
		s.logger.Error("delete position failed", zap.String("position_id", id), zap.Error(err))
		return mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("delete position commit failed", zap.Error(err))
		return err
	}

	s.logger.Info("delete position success", zap.String("position_id", id))
	return nil
}

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return positionerrors.ErrPositionNotFound
	}
	return err
}

func mapToResponse(pos Position) PositionResponse {
	resp := PositionResponse{
		ID:          pos.ID.String(),
		Title:       pos.Title,
		Description: pos.Description,
		Department:  pos.Department,
		Level:       pos.Level,
	}
	if !pos.CreatedAt.IsZero() {
		resp.CreatedAt = pos.CreatedAt.Format(time.RFC3339)
	}
	if !pos.UpdatedAt.IsZero() {
		resp.UpdatedAt = pos.UpdatedAt.Format(time.RFC3339)
	}
	return resp
}

func mapToListResponse(positions []Position) []PositionResponse {
	res := make([]PositionResponse, len(positions))
	for i, p := range positions {
		res[i] = mapToResponse(p)
	}
	return res
}
