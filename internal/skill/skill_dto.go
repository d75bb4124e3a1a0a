package skill

type CreateSkillRequest struct {
	Name        string `json:"name" binding:"required"`
	Category    string `json:"category" binding:"required,oneof=technical managerial behavioral cross-functional"`
	Description string `json:"description"`
}

// Update merges only the provided fields into the stored row.
type UpdateSkillRequest struct {
	Name        *string `json:"name" binding:"omitempty"`
	Category    *string `json:"category" binding:"omitempty,oneof=technical managerial behavioral cross-functional"`
	Description *string `json:"description" binding:"omitempty"`
}

type SkillResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Category    string `json:"category"`
	Description string `json:"description,omitempty"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}
