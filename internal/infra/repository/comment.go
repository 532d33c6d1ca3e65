package repository

import (
	"context"

	"campsite-booking/internal/domain/comment"
	"campsite-booking/internal/infra"
	"campsite-booking/internal/infra/repository/converter"
	sqlc "campsite-booking/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type CommentWriteQueries interface {
	CreateComment(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateCommentParams) (sqlc.Comments, error)
	UpdateComment(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateCommentParams) (int64, error)
	DeleteComment(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int64, error)
	GetCommentByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Comments, error)
}

type CommentRepository struct {
	queries CommentWriteQueries
}

func NewCommentRepository(queries CommentWriteQueries) *CommentRepository {
	return &CommentRepository{queries: queries}
}

func (r *CommentRepository) Create(ctx context.Context, tx sqlc.DBTX, c *comment.Comment) error {
	if _, err := r.queries.CreateComment(ctx, tx, converter.CommentToCreateParams(c)); err != nil {
		return infra.WrapRepoErr("failed to create comment", err)
	}
	return nil
}

func (r *CommentRepository) Update(ctx context.Context, tx sqlc.DBTX, c *comment.Comment) error {
	n, err := r.queries.UpdateComment(ctx, tx, converter.CommentToUpdateParams(c))
	if err != nil {
		return infra.WrapRepoErr("failed to update comment", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("comment not found", nil, infra.KindNotFound)
	}
	return nil
}

// Delete removes replies through the parent_id cascade.
func (r *CommentRepository) Delete(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) error {
	n, err := r.queries.DeleteComment(ctx, tx, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete comment", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("comment not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *CommentRepository) FindByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (*comment.Comment, error) {
	row, err := r.queries.GetCommentByID(ctx, db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find comment", err)
	}
	return converter.CommentFromRow(row), nil
}
