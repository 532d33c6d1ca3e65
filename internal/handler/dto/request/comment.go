package request

import "github.com/google/uuid"

type CreateCommentRequest struct {
	Comment  string     `json:"comment" binding:"required,max=2000"`
	Rating   *int       `json:"rating" binding:"omitempty,min=1,max=5"`
	ParentID *uuid.UUID `json:"parent_id"`
}

type UpdateCommentRequest struct {
	Comment *string `json:"comment" binding:"omitempty,min=1,max=2000"`
	Rating  *int    `json:"rating" binding:"omitempty,min=1,max=5"`
}
