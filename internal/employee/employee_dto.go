package employee

type CreateEmployeeRequest struct {
	FirstName  string `json:"first_name" binding:"required"`
	LastName   string `json:"last_name" binding:"required"`
	Email      string `json:"email" binding:"omitempty,email"`
	PositionID string `json:"position_id" binding:"omitempty,uuid"`
	Department string `json:"department"`
	HireDate   string `json:"hire_date" binding:"omitempty,datetime=2006-01-02"`
	IsActive   *bool  `json:"is_active"`
}

type UpdateEmployeeRequest struct {
	FirstName  *string `json:"first_name" binding:"omitempty"`
	LastName   *string `json:"last_name" binding:"omitempty"`
	Email      *string `json:"email" binding:"omitempty,email"`
	PositionID *string `json:"position_id" binding:"omitempty,uuid"`
	Department *string `json:"department" binding:"omitempty"`
	HireDate   *string `json:"hire_date" binding:"omitempty,datetime=2006-01-02"`
	IsActive   *bool   `json:"is_active"`
}

type EmployeePositionResponse struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

type EmployeeResponse struct {
	ID         string                    `json:"id"`
	FirstName  string                    `json:"first_name"`
	LastName   string                    `json:"last_name"`
	Email      string                    `json:"email,omitempty"`
	PositionID string                    `json:"position_id,omitempty"`
	Position   *EmployeePositionResponse `json:"position,omitempty"`
	Department string                    `json:"department,omitempty"`
	HireDate   string                    `json:"hire_date,omitempty"`
	IsActive   bool                      `json:"is_active"`
	CreatedAt  string                    `json:"created_at"`
	UpdatedAt  string                    `json:"updated_at"`
}
