package employeeskill

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	employeeskillerrors "go-skills/internal/employeeskill/errors"
	"go-skills/internal/events"
	"go-skills/internal/messaging/kafka"
	"go-skills/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

//go:generate mockgen -source=employeeskill_service.go -destination=mock/employeeskill_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, employeeID string, req CreateEmployeeSkillRequest) (EmployeeSkillResponse, error)
	GetByEmployee(ctx context.Context, employeeID string) ([]EmployeeSkillResponse, error)
	Update(ctx context.Context, id string, req UpdateEmployeeSkillRequest) (EmployeeSkillResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	db     *sql.DB
	repo   Repository
	outbox kafka.OutboxRepository
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, logger ...*zap.Logger) Service {
	return NewServiceWithOutbox(db, repo, nil, logger...)
}

func NewServiceWithOutbox(
	db *sql.DB,
	repo Repository,
	outboxRepo kafka.OutboxRepository,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("employeeskill.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employeeskill.service")
	}
	return &service{db: db, repo: repo, outbox: outboxRepo, logger: l}
}

func (s *service) Create(ctx context.Context, employeeID string, req CreateEmployeeSkillRequest) (EmployeeSkillResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create evaluation requested",
		zap.String("request_id", rid),
		zap.String("employee_id", employeeID),
		zap.String("skill_id", req.SkillID),
		zap.Int("current_level", req.CurrentLevel),
	)

	emplUUID, err := uuid.Parse(employeeID)
	if err != nil {
		return EmployeeSkillResponse{}, employeeskillerrors.ErrEmployeeNotFound
	}

	exists, err := s.repo.EmployeeExists(ctx, employeeID)
	if err != nil {
		return EmployeeSkillResponse{}, err
	}
	if !exists {
		return EmployeeSkillResponse{}, employeeskillerrors.ErrEmployeeNotFound
	}

	skillExists, err := s.repo.SkillExists(ctx, req.SkillID)
	if err != nil {
		return EmployeeSkillResponse{}, err
	}
	if !skillExists {
		return EmployeeSkillResponse{}, employeeskillerrors.ErrSkillNotFound
	}

	evalDate := time.Now().UTC()
	if req.EvaluationDate != "" {
		evalDate, _ = time.Parse("2006-01-02", req.EvaluationDate)
	}

	es := &EmployeeSkill{
		ID:             uuid.New(),
		EmployeeID:     emplUUID,
		SkillID:        uuid.MustParse(req.SkillID),
		CurrentLevel:   req.CurrentLevel,
		EvaluatedBy:    evaluatorFromContext(ctx),
		EvaluationDate: evalDate,
		Notes:          req.Notes,
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("create evaluation begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return EmployeeSkillResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	if err := qtx.Create(ctx, es); err != nil {
		s.logger.Error("create evaluation persist failed", zap.String("request_id", rid), zap.Error(err))
		return EmployeeSkillResponse{}, mapRepositoryError(err)
	}

	if err := s.queueEvent(ctx, tx, events.EvaluationRecorded, es); err != nil {
		return EmployeeSkillResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("create evaluation commit failed", zap.String("request_id", rid), zap.Error(err))
		return EmployeeSkillResponse{}, err
	}

	s.logger.Info("create evaluation success",
		zap.String("request_id", rid),
		zap.String("evaluation_id", es.ID.String()),
	)
	return mapToResponse(*es), nil
}

func (s *service) GetByEmployee(ctx context.Context, employeeID string) ([]EmployeeSkillResponse, error) {
	exists, err := s.repo.EmployeeExists(ctx, employeeID)
	if err != nil {
		s.logger.Error("evaluation employee lookup failed", zap.Error(err))
		return nil, err
	}
	if !exists {
		return nil, employeeskillerrors.ErrEmployeeNotFound
	}

	evals, err := s.repo.FindByEmployee(ctx, employeeID)
	if err != nil {
		s.logger.Error("get evaluations failed", zap.String("employee_id", employeeID), zap.Error(err))
		return nil, mapRepositoryError(err)
	}
	return mapToListResponse(evals), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateEmployeeSkillRequest) (EmployeeSkillResponse, error) {
	rid := contextutil.GetRequestID(ctx)

	es, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return EmployeeSkillResponse{}, mapRepositoryError(err)
	}

	if req.CurrentLevel != nil {
		es.CurrentLevel = *req.CurrentLevel
	}
	if req.EvaluationDate != nil {
		if parsed, err := time.Parse("2006-01-02", *req.EvaluationDate); err == nil {
			es.EvaluationDate = parsed
		}
	}
	if req.Notes != nil {
		es.Notes = *req.Notes
	}
	es.EvaluatedBy = evaluatorFromContext(ctx)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("update evaluation begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return EmployeeSkillResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	if err := qtx.Update(ctx, es); err != nil {
		s.logger.Error("update evaluation persist failed", zap.String("request_id", rid), zap.Error(err))
		return EmployeeSkillResponse{}, mapRepositoryError(err)
	}

	if err := s.queueEvent(ctx, tx, events.EvaluationUpdated, es); err != nil {
		return EmployeeSkillResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("update evaluation commit failed", zap.String("request_id", rid), zap.Error(err))
		return EmployeeSkillResponse{}, err
	}

	s.logger.Info("update evaluation success",
		zap.String("request_id", rid),
		zap.String("evaluation_id", es.ID.String()),
	)
	return mapToResponse(*es), nil
}

// Delete removes an evaluation; an already absent id is a no-op.
func (s *service) Delete(ctx context.Context, id string) error {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("delete evaluation requested",
		zap.String("request_id", rid),
		zap.String("evaluation_id", id),
	)

	es, err := s.repo.FindByID(ctx, id)
	if err != nil {
		mapped := mapRepositoryError(err)
		if mapped == employeeskillerrors.ErrEvaluationNotFound {
			return nil
		}
		return mapped
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("delete evaluation begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	if err := qtx.Delete(ctx, id); err != nil {
		s.logger.Error("delete evaluation persist failed", zap.String("request_id", rid), zap.Error(err))
		return mapRepositoryError(err)
	}

	if err := s.queueEvent(ctx, tx, events.EvaluationDeleted, es); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("delete evaluation commit failed", zap.String("request_id", rid), zap.Error(err))
		return err
	}

	s.logger.Info("delete evaluation success",
		zap.String("request_id", rid),
		zap.String("evaluation_id", id),
	)
	return nil
}

// queueEvent writes the lifecycle event into the outbox inside the caller's
// transaction, so the event only exists if the row change commits.
func (s *service) queueEvent(ctx context.Context, tx *sql.Tx, eventType string, es *EmployeeSkill) error {
	if s.outbox == nil {
		return nil
	}

	rid := contextutil.GetRequestID(ctx)
	event := events.EvaluationChangedEvent{
		EventType:    eventType,
		RequestID:    rid,
		EvaluationID: es.ID.String(),
		EmployeeID:   es.EmployeeID.String(),
		SkillID:      es.SkillID.String(),
		CurrentLevel: es.CurrentLevel,
		OccurredAt:   time.Now().UTC(),
	}
	payload, err := json.Marshal(event)
	if err != nil {
		s.logger.Error("marshal evaluation event failed", zap.String("request_id", rid), zap.Error(err))
		return err
	}

	outboxRepo := s.outbox.WithTx(tx)
	if err := outboxRepo.Create(ctx, kafka.OutboxEvent{
		ID:            uuid.NewString(),
		RequestID:     rid,
		AggregateType: "employee_skill",
		AggregateID:   es.ID.String(),
		EventType:     eventType,
		Topic:         events.EvaluationLifecycleTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	}); err != nil {
		s.logger.Error("evaluation outbox persist failed",
			zap.String("evaluation_id", es.ID.String()),
			zap.Error(err),
		)
		return err
	}

	return nil
}

func evaluatorFromContext(ctx context.Context) *uuid.UUID {
	uid := contextutil.GetUserID(ctx)
	if uid == "" {
		return nil
	}
	parsed, err := uuid.Parse(uid)
	if err != nil {
		return nil
	}
	return &parsed
}

func mapToResponse(es EmployeeSkill) EmployeeSkillResponse {
	resp := EmployeeSkillResponse{
		ID:             es.ID.String(),
		EmployeeID:     es.EmployeeID.String(),
		SkillID:        es.SkillID.String(),
		CurrentLevel:   es.CurrentLevel,
		EvaluationDate: es.EvaluationDate.Format("2006-01-02"),
		Notes:          es.Notes,
	}
	if es.Skill != nil {
		resp.SkillName = es.Skill.Name
		resp.SkillCategory = es.Skill.Category
	}
	if es.EvaluatedBy != nil {
		resp.EvaluatedBy = es.EvaluatedBy.String()
	}
	if !es.CreatedAt.IsZero() {
		resp.CreatedAt = es.CreatedAt.Format(time.RFC3339)
	}
	if !es.UpdatedAt.IsZero() {
		resp.UpdatedAt = es.UpdatedAt.Format(time.RFC3339)
	}
	return resp
}

func mapToListResponse(evals []EmployeeSkill) []EmployeeSkillResponse {
	res := make([]EmployeeSkillResponse, len(evals))
	for i, es := range evals {
		res[i] = mapToResponse(es)
	}
	return res
}
