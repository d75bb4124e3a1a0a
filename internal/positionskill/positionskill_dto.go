package positionskill

type CreatePositionSkillRequest struct {
	SkillID       string `json:"skill_id" binding:"required,uuid"`
	RequiredLevel int    `json:"required_level" binding:"required,min=1,max=5"`
}

type PositionSkillResponse struct {
	ID            string `json:"id"`
	PositionID    string `json:"position_id"`
	SkillID       string `json:"skill_id"`
	SkillName     string `json:"skill_name,omitempty"`
	SkillCategory string `json:"skill_category,omitempty"`
	RequiredLevel int    `json:"required_level"`
	CreatedAt     string `json:"created_at"`
}
