package employee

import (
	"context"
	"database/sql"
	"errors"
	"time"

	employeeerrors "go-skills/internal/employee/errors"
	"go-skills/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=employee_service.go -destination=mock/employee_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	GetAll(ctx context.Context) ([]EmployeeResponse, error)
	GetByID(ctx context.Context, id string) (EmployeeResponse, error)
	Update(ctx context.Context, id string, req UpdateEmployeeRequest) (EmployeeResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	db     *sql.DB
	repo   Repository
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	return &service{db: db, repo: repo, logger: l}
}

func (s *service) Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create employee requested",
		zap.String("request_id", rid),
		zap.String("position_id", req.PositionID),
	)

	if req.PositionID != "" {
		exists, err := s.repo.PositionExists(ctx, req.PositionID)
		if err != nil {
			s.logger.Error("create employee position lookup failed", zap.Error(err))
			return EmployeeResponse{}, err
		}
		if !exists {
			s.logger.Warn("create employee position not found", zap.String("position_id", req.PositionID))
			return EmployeeResponse{}, employeeerrors.ErrPositionNotFound
		}
	}

	hireDate, err := parseHireDate(req.HireDate)
	if err != nil {
		return EmployeeResponse{}, err
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	empl := &Employee{
		ID:         uuid.New(),
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Email:      req.Email,
		PositionID: uuidPtr(req.PositionID),
		Department: req.Department,
		HireDate:   hireDate,
		IsActive:   isActive,
	}

	if err := s.repo.Create(ctx, empl); err != nil {
		s.logger.Error("create employee persist failed", zap.String("request_id", rid), zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("create employee success",
		zap.String("request_id", rid),
		zap.String("employee_id", empl.ID.String()),
	)
	return mapToResponse(*empl), nil
}

func (s *service) GetAll(ctx context.Context) ([]EmployeeResponse, error) {
	employees, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("get all employees failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}
	return mapToListResponse(employees), nil
}

func (s *service) GetByID(ctx context.Context, id string) (EmployeeResponse, error) {
	empl, err := s.repo.FindByID(ctx, id)
	if err != nil {
		s.logger.Error("get employee by id failed", zap.String("employee_id", id), zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*empl), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateEmployeeRequest) (EmployeeResponse, error) {
	s.logger.Debug("update employee requested", zap.String("employee_id", id))

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("update employee begin tx failed", zap.Error(err))
		return EmployeeResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	empl, err := qtx.FindByID(ctx, id)
	if err != nil {
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	if req.PositionID != nil && *req.PositionID != "" {
		exists, err := qtx.PositionExists(ctx, *req.PositionID)
		if err != nil {
			return EmployeeResponse{}, err
		}
		if !exists {
			return EmployeeResponse{}, employeeerrors.ErrPositionNotFound
		}
	}

	if req.FirstName != nil {
		empl.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		empl.LastName = *req.LastName
	}
	if req.Email != nil {
		empl.Email = *req.Email
	}
	if req.PositionID != nil {
		empl.PositionID = uuidPtr(*req.PositionID)
		empl.Position = nil
	}
	if req.Department != nil {
		empl.Department = *req.Department
	}
	if req.HireDate != nil {
		hireDate, err := parseHireDate(*req.HireDate)
		if err != nil {
			return EmployeeResponse{}, err
		}
		empl.HireDate = hireDate
	}
	if req.IsActive != nil {
		empl.IsActive = *req.IsActive
	}

	if err := qtx.Update(ctx, empl); err != nil {
		s.logger.Error("update employee persist failed", zap.String("employee_id", id), zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("update employee commit failed", zap.Error(err))
		return EmployeeResponse{}, err
	}

	s.logger.Info("update employee success", zap.String("employee_id", id))
	return mapToResponse(*empl), nil
}

// Delete removes the employee and their evaluations. Deleting an absent id is
// a no-op.
func (s *service) Delete(ctx context.Context, id string) error {
	s.logger.Debug("delete employee requested", zap.String("employee_id", id))

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("delete employee begin tx failed", zap.Error(err))
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	if err := qtx.DeleteEvaluations(ctx, id); err != nil {
		s.logger.Error("delete employee evaluations failed", zap.String("employee_id", id), zap.Error(err))
		return mapRepositoryError(err)
	}

	if err := qtx.Delete(ctx, id); err != nil {
		s.logger.Error("delete employee failed", zap.String("employee_id", id), zap.Error(err))
		return mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("delete employee commit failed", zap.Error(err))
		return err
	}

	s.logger.Info("delete employee success", zap.String("employee_id", id))
	return nil
}

func parseHireDate(raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	hireDate, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return nil, employeeerrors.ErrInvalidHireDate
	}
	return &hireDate, nil
}

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return employeeerrors.ErrEmployeeNotFound
	}
	return err
}

func mapToResponse(empl Employee) EmployeeResponse {
	resp := EmployeeResponse{
		ID:         empl.ID.String(),
		FirstName:  empl.FirstName,
		LastName:   empl.LastName,
		Email:      empl.Email,
		PositionID: uuidToString(empl.PositionID),
		Department: empl.Department,
		IsActive:   empl.IsActive,
	}
	if empl.HireDate != nil {
		resp.HireDate = empl.HireDate.Format("2006-01-02")
	}
	if empl.Position != nil {
		resp.Position = &EmployeePositionResponse{
			ID:    empl.Position.ID.String(),
			Title: empl.Position.Title,
		}
	}
	if !empl.CreatedAt.IsZero() {
		resp.CreatedAt = empl.CreatedAt.Format(time.RFC3339)
	}
	if !empl.UpdatedAt.IsZero() {
		resp.UpdatedAt = empl.UpdatedAt.Format(time.RFC3339)
	}
	return resp
}

func mapToListResponse(employees []Employee) []EmployeeResponse {
	res := make([]EmployeeResponse, len(employees))
	for i, e := range employees {
		res[i] = mapToResponse(e)
	}
	return res
}

func uuidPtr(v string) *uuid.UUID {
	id, err := uuid.Parse(v)
	if err != nil {
		return nil
	}
	return &id
}

func uuidToString(v *uuid.UUID) string {
	if v == nil {
		return ""
	}
	return v.String()
}
