package response

import (
	"time"

	"campsite-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type CommentResponse struct {
	ID        uuid.UUID          `json:"id"`
	CampingID uuid.UUID          `json:"camping_id"`
	UserID    uuid.UUID          `json:"user_id"`
	UserName  string             `json:"user_name"`
	ParentID  *uuid.UUID         `json:"parent_id,omitempty"`
	Comment   string             `json:"comment"`
	Rating    *int               `json:"rating,omitempty"`
	Replies   []*CommentResponse `json:"replies,omitempty"`
	CreatedAt time.Time          `json:"created_at"`
	UpdatedAt time.Time          `json:"updated_at"`
}

func FromCommentView(v *queries.CommentView) *CommentResponse {
	res := &CommentResponse{
		ID:        v.ID,
		CampingID: v.CampingID,
		UserID:    v.UserID,
		UserName:  v.UserName,
		ParentID:  v.ParentID,
		Comment:   v.Comment,
		Rating:    v.Rating,
		CreatedAt: v.CreatedAt,
		UpdatedAt: v.UpdatedAt,
	}
	// replies are only ever one level deep
	if v.ParentID == nil {
		res.Replies = make([]*CommentResponse, len(v.Replies))
		for i, r := range v.Replies {
			res.Replies[i] = FromCommentView(r)
		}
	}
	return res
}

type CommentPageResponse struct {
	Data       []*CommentResponse `json:"data"`
	NextCursor *string            `json:"next_cursor"`
}

func FromCommentPage(p *queries.CommentPage) *CommentPageResponse {
	items := make([]*CommentResponse, len(p.Items))
	for i, v := range p.Items {
		items[i] = FromCommentView(v)
	}
	res := &CommentPageResponse{Data: items}
	if p.Next != nil && p.Next.After != "" {
		res.NextCursor = &p.Next.After
	}
	return res
}
