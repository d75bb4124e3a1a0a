package position

type CreatePositionRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	Department  string `json:"department"`
	Level       string `json:"level"`
}

type UpdatePositionRequest struct {
	Title       *string `json:"title" binding:"omitempty"`
	Description *string `json:"description" binding:"omitempty"`
	Department  *string `json:"department" binding:"omitempty"`
	Level       *string `json:"level" binding:"omitempty"`
}

type PositionResponse struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Department  string `json:"department,omitempty"`
	Level       string `json:"level,omitempty"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}
