package analytics

// Severity buckets applied to positive gaps after retrieval.
const (
	SeverityCritical = "critical"
	SeverityModerate = "moderate"
	SeverityLow      = "low"
)

type CategoryCount struct {
	Category string `json:"category"`
	Count    int64  `json:"count"`
}

type DashboardStats struct {
	TotalEmployees  int64           `json:"total_employees"`
	TotalSkills     int64           `json:"total_skills"`
	TotalPositions  int64           `json:"total_positions"`
	SkillCategories []CategoryCount `json:"skill_categories"`
}

// MatrixRow is one flat joined row of the skills matrix. Employees without
// evaluations still yield a single row with nil skill fields; pivoting into
// an employee->skill table is left to consumers.
type MatrixRow struct {
	EmployeeID    string  `json:"employee_id"`
	EmployeeName  string  `json:"employee_name"`
	PositionTitle *string `json:"position_title"`
	SkillName     *string `json:"skill_name"`
	SkillCategory *string `json:"skill_category"`
	CurrentLevel  *int    `json:"current_level"`
	RequiredLevel *int    `json:"required_level"`
}

type SkillGap struct {
	PositionID          string  `json:"position_id"`
	PositionTitle       string  `json:"position_title"`
	Department          string  `json:"department"`
	SkillName           string  `json:"skill_name"`
	SkillCategory       string  `json:"skill_category"`
	RequiredLevel       int     `json:"required_level"`
	AverageCurrentLevel float64 `json:"average_current_level"`
	Gap                 float64 `json:"gap"`
	Severity            string  `json:"severity"`
}
