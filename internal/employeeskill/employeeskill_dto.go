package employeeskill

type CreateEmployeeSkillRequest struct {
	SkillID        string `json:"skill_id" binding:"required,uuid"`
	CurrentLevel   int    `json:"current_level" binding:"required,min=1,max=5"`
	EvaluationDate string `json:"evaluation_date" binding:"omitempty,datetime=2006-01-02"`
	Notes          string `json:"notes"`
}

type UpdateEmployeeSkillRequest struct {
	CurrentLevel   *int    `json:"current_level" binding:"omitempty,min=1,max=5"`
	EvaluationDate *string `json:"evaluation_date" binding:"omitempty,datetime=2006-01-02"`
	Notes          *string `json:"notes"`
}

type EmployeeSkillResponse struct {
	ID             string `json:"id"`
	EmployeeID     string `json:"employee_id"`
	SkillID        string `json:"skill_id"`
	SkillName      string `json:"skill_name,omitempty"`
	SkillCategory  string `json:"skill_category,omitempty"`
	CurrentLevel   int    `json:"current_level"`
	EvaluatedBy    string `json:"evaluated_by,omitempty"`
	EvaluationDate string `json:"evaluation_date"`
	Notes          string `json:"notes,omitempty"`
	CreatedAt      string `json:"created_at"`
	UpdatedAt      string `json:"updated_at"`
}
