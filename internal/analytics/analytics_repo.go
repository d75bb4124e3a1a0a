package analytics

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=analytics_repo.go -destination=mock/analytics_repo_mock.go -package=mock
type Repository interface {
	DashboardStats(ctx context.Context) (DashboardStats, error)
	SkillsMatrix(ctx context.Context) ([]MatrixRow, error)
	SkillGaps(ctx context.Context) ([]SkillGap, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// DashboardStats counts active employees, all skills, all positions, and
// skills grouped by category.
func (r *repository) DashboardStats(ctx context.Context) (DashboardStats, error) {
	var stats DashboardStats

	if err := r.db.WithContext(ctx).
		Table("employees").
		Where("is_active = ?", true).
		Count(&stats.TotalEmployees).Error; err != nil {
		return DashboardStats{}, err
	}

	if err := r.db.WithContext(ctx).
		Table("skills").
		Count(&stats.TotalSkills).Error; err != nil {
		return DashboardStats{}, err
	}

	if err := r.db.WithContext(ctx).
		Table("positions").
		Count(&stats.TotalPositions).Error; err != nil {
		return DashboardStats{}, err
	}

	if err := r.db.WithContext(ctx).
		Table("skills").
		Select("category, COUNT(*) AS count").
		Group("category").
		Scan(&stats.SkillCategories).Error; err != nil {
		return DashboardStats{}, err
	}

	return stats, nil
}

// SkillsMatrix returns one row per (active employee, evaluated skill), left
// joined so employees without evaluations still appear once.
func (r *repository) SkillsMatrix(ctx context.Context) ([]MatrixRow, error) {
	var rows []MatrixRow

	err := r.db.WithContext(ctx).Raw(`
		SELECT
			e.id::text                     AS employee_id,
			e.first_name || ' ' || e.last_name AS employee_name,
			p.title                        AS position_title,
			s.name                         AS skill_name,
			s.category                     AS skill_category,
			es.current_level               AS current_level,
			ps.required_level              AS required_level
		FROM employees e
		LEFT JOIN positions p ON p.id = e.position_id
		LEFT JOIN employee_skills es ON es.employee_id = e.id
		LEFT JOIN skills s ON s.id = es.skill_id
		LEFT JOIN position_skills ps
			ON ps.position_id = p.id AND ps.skill_id = s.id
		WHERE e.is_active = TRUE
	`).Scan(&rows).Error

	return rows, err
}

// SkillGaps computes, per (position, required skill) pair, the average
// evaluated level across active employees holding the position. Only pairs
// with a positive gap survive the HAVING clause; COALESCE keeps pairs with
// no contributing evaluations at average 0 rather than dropping them.
func (r *repository) SkillGaps(ctx context.Context) ([]SkillGap, error) {
	var gaps []SkillGap

	err := r.db.WithContext(ctx).Raw(`
		SELECT
			p.id::text          AS position_id,
			p.title             AS position_title,
			p.department        AS department,
			s.name              AS skill_name,
			s.category          AS skill_category,
			ps.required_level   AS required_level,
			COALESCE(AVG(es.current_level), 0)                     AS average_current_level,
			ps.required_level - COALESCE(AVG(es.current_level), 0) AS gap
		FROM positions p
		JOIN position_skills ps ON ps.position_id = p.id
		JOIN skills s ON s.id = ps.skill_id
		LEFT JOIN employees e
			ON e.position_id = p.id AND e.is_active = TRUE
		LEFT JOIN employee_skills es
			ON es.employee_id = e.id AND es.skill_id = s.id
		GROUP BY p.id, p.title, p.department, s.name, s.category, ps.required_level
		HAVING ps.required_level - COALESCE(AVG(es.current_level), 0) > 0
	`).Scan(&gaps).Error

	return gaps, err
}
