//go:build unit || e2e

package builder

import (
	"time"

	"campsite-booking/internal/domain/comment"
	reqdto "campsite-booking/internal/handler/dto/request"
	"campsite-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type CommentBuilder struct {
	ID        uuid.UUID
	CampingID uuid.UUID
	UserID    uuid.UUID
	UserName  string
	Parent    *comment.Parent
	Body      string
	Rating    *int
	CreatedAt time.Time
}

func NewCommentBuilder() *CommentBuilder {
	rating := 5
	return &CommentBuilder{
		ID:        uuid.New(),
		CampingID: uuid.New(),
		UserID:    uuid.New(),
		UserName:  "Test Guest",
		Body:      "Lovely place, friendly staff!",
		Rating:    &rating,
		CreatedAt: time.Date(2025, 5, 10, 18, 0, 0, 0, time.UTC),
	}
}

func (b *CommentBuilder) With(mutate func(*CommentBuilder)) *CommentBuilder {
	mutate(b)
	return b
}

func (b *CommentBuilder) BuildDomain() (*comment.Comment, error) {
	return comment.NewComment(b.CampingID, b.UserID, b.Parent, b.Body, b.Rating, b.CreatedAt)
}

func (b *CommentBuilder) BuildStored() *comment.Comment {
	var parentID *uuid.UUID
	if b.Parent != nil {
		id := b.Parent.ID
		parentID = &id
	}
	return comment.ReconstructComment(b.ID, b.CampingID, b.UserID, parentID, b.Body, b.Rating, b.CreatedAt, b.CreatedAt)
}

func (b *CommentBuilder) WithRating(rating int) *CommentBuilder {
	b.Rating = &rating
	return b
}

func (b *CommentBuilder) WithoutRating() *CommentBuilder {
	b.Rating = nil
	return b
}

func (b *CommentBuilder) WithBody(body string) *CommentBuilder {
	b.Body = body
	return b
}

// AsReplyTo makes the comment answer parent in the same camping.
func (b *CommentBuilder) AsReplyTo(parentID uuid.UUID) *CommentBuilder {
	b.Parent = &comment.Parent{ID: parentID, CampingID: b.CampingID}
	b.Rating = nil
	return b
}

func (b *CommentBuilder) BuildCreateRequestDTO() reqdto.CreateCommentRequest {
	req := reqdto.CreateCommentRequest{
		Comment: b.Body,
		Rating:  b.Rating,
	}
	if b.Parent != nil {
		id := b.Parent.ID
		req.ParentID = &id
	}
	return req
}

func (b *CommentBuilder) BuildView() *queries.CommentView {
	v := &queries.CommentView{
		ID:        b.ID,
		CampingID: b.CampingID,
		UserID:    b.UserID,
		UserName:  b.UserName,
		Comment:   b.Body,
		Rating:    b.Rating,
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.CreatedAt,
	}
	if b.Parent != nil {
		id := b.Parent.ID
		v.ParentID = &id
	}
	return v
}
