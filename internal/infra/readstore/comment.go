package readstore

import (
	"context"
	"time"

	"campsite-booking/internal/infra"
	sqlc "campsite-booking/internal/infra/sqlc/generated"
	"campsite-booking/internal/pkg/pgconv"
	"campsite-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type CommentViewQueries interface {
	GetCommentViewByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetCommentViewByIDRow, error)
	ListTopLevelCommentsFirstPage(ctx context.Context, db sqlc.DBTX, arg sqlc.ListTopLevelCommentsFirstPageParams) ([]sqlc.ListTopLevelCommentsFirstPageRow, error)
	ListTopLevelCommentsKeyset(ctx context.Context, db sqlc.DBTX, arg sqlc.ListTopLevelCommentsKeysetParams) ([]sqlc.ListTopLevelCommentsKeysetRow, error)
	ListRepliesByParents(ctx context.Context, db sqlc.DBTX, parentIds []uuid.UUID) ([]sqlc.ListRepliesByParentsRow, error)
}

type CommentReadStore struct {
	queries CommentViewQueries
	db      sqlc.DBTX
}

func NewCommentReadStore(queries CommentViewQueries, db sqlc.DBTX) *CommentReadStore {
	return &CommentReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *CommentReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.CommentView, error) {
	row, err := r.queries.GetCommentViewByID(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get comment", err)
	}
	return toCommentView(commentRow(row)), nil
}

func (r *CommentReadStore) FindByCampingFirstPage(ctx context.Context, campingID uuid.UUID, limit int32) ([]*queries.CommentView, error) {
	rows, err := r.queries.ListTopLevelCommentsFirstPage(ctx, r.db, sqlc.ListTopLevelCommentsFirstPageParams{
		CampingID: campingID,
		Limit:     limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get comments first page", err)
	}
	views := make([]*queries.CommentView, len(rows))
	for i, row := range rows {
		views[i] = toCommentView(commentRow(row))
	}
	return views, nil
}

func (r *CommentReadStore) FindByCampingKeyset(ctx context.Context, campingID uuid.UUID, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*queries.CommentView, error) {
	rows, err := r.queries.ListTopLevelCommentsKeyset(ctx, r.db, sqlc.ListTopLevelCommentsKeysetParams{
		CampingID: campingID,
		CreatedAt: pgconv.TimeToPgtype(lastCreatedAt),
		ID:        lastID,
		Limit:     limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get comments keyset", err)
	}
	views := make([]*queries.CommentView, len(rows))
	for i, row := range rows {
		views[i] = toCommentView(commentRow(row))
	}
	return views, nil
}

// FindReplies returns direct replies grouped by parent, oldest first.
func (r *CommentReadStore) FindReplies(ctx context.Context, parentIDs []uuid.UUID) (map[uuid.UUID][]*queries.CommentView, error) {
	out := make(map[uuid.UUID][]*queries.CommentView, len(parentIDs))
	if len(parentIDs) == 0 {
		return out, nil
	}

	rows, err := r.queries.ListRepliesByParents(ctx, r.db, parentIDs)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get comment replies", err)
	}
	for _, row := range rows {
		view := toCommentView(commentRow(row))
		if view.ParentID == nil {
			continue
		}
		out[*view.ParentID] = append(out[*view.ParentID], view)
	}
	return out, nil
}

type commentRow sqlc.ListRepliesByParentsRow

func toCommentView(row commentRow) *queries.CommentView {
	return &queries.CommentView{
		ID:        row.ID,
		CampingID: row.CampingID,
		UserID:    row.UserID,
		UserName:  row.UserName,
		ParentID:  pgconv.UUIDPtrFromPgtype(row.ParentID),
		Comment:   row.Comment,
		Rating:    pgconv.IntPtrFromPgtype(row.Rating),
		CreatedAt: pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt: pgconv.TimeFromPgtype(row.UpdatedAt),
	}
}
