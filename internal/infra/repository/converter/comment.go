package converter

import (
	"campsite-booking/internal/domain/comment"
	sqlc "campsite-booking/internal/infra/sqlc/generated"
	"campsite-booking/internal/pkg/pgconv"
)

func CommentToCreateParams(c *comment.Comment) sqlc.CreateCommentParams {
	return sqlc.CreateCommentParams{
		ID:        c.ID(),
		CampingID: c.CampingID(),
		UserID:    c.UserID(),
		ParentID:  pgconv.UUIDPtrToPgtype(c.ParentID()),
		Comment:   c.Body().String(),
		Rating:    pgconv.IntPtrToPgtype(c.RatingValue()),
		CreatedAt: pgconv.TimeToPgtype(c.CreatedAt()),
	}
}

func CommentToUpdateParams(c *comment.Comment) sqlc.UpdateCommentParams {
	return sqlc.UpdateCommentParams{
		ID:        c.ID(),
		Comment:   c.Body().String(),
		Rating:    pgconv.IntPtrToPgtype(c.RatingValue()),
		UpdatedAt: pgconv.TimeToPgtype(c.UpdatedAt()),
	}
}

func CommentFromRow(row sqlc.Comments) *comment.Comment {
	return comment.ReconstructComment(
		row.ID,
		row.CampingID,
		row.UserID,
		pgconv.UUIDPtrFromPgtype(row.ParentID),
		row.Comment,
		pgconv.IntPtrFromPgtype(row.Rating),
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	)
}
