package queries

import (
	"context"
	"time"

	"campsite-booking/internal/infra"
	"campsite-booking/internal/pkg/errs"
	"campsite-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
)

var ErrCommentNotFound = errs.New("comment not found")

type CommentPage struct {
	Items []*CommentView `json:"items"`
	Next  *Cursor        `json:"next,omitempty"`
}

type CommentQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*CommentView, error)
	ListByCamping(ctx context.Context, campingID uuid.UUID, cursor *Cursor, limit int) (*CommentPage, error)
}

type CommentReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*CommentView, error)
	FindByCampingFirstPage(ctx context.Context, campingID uuid.UUID, limit int32) ([]*CommentView, error)
	FindByCampingKeyset(ctx context.Context, campingID uuid.UUID, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*CommentView, error)
	FindReplies(ctx context.Context, parentIDs []uuid.UUID) (map[uuid.UUID][]*CommentView, error)
}

type commentQueriesImpl struct {
	comments CommentReadStore
	campings CampingReadStore
}

func NewCommentQueries(comments CommentReadStore, campings CampingReadStore) CommentQueries {
	return &commentQueriesImpl{
		comments: comments,
		campings: campings,
	}
}

// GetByID returns a single comment; a top-level comment carries its replies.
func (q *commentQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*CommentView, error) {
	view, err := q.comments.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrCommentNotFound
		}
		return nil, err
	}
	if view.ParentID != nil {
		return view, nil
	}

	replies, err := q.comments.FindReplies(ctx, []uuid.UUID{view.ID})
	if err != nil {
		return nil, err
	}
	view.Replies = replies[view.ID]
	if view.Replies == nil {
		view.Replies = []*CommentView{}
	}
	return view, nil
}

// ListByCamping pages top-level comments newest first; each carries its direct replies.
func (q *commentQueriesImpl) ListByCamping(ctx context.Context, campingID uuid.UUID, cursor *Cursor, limit int) (*CommentPage, error) {
	if _, err := findCamping(ctx, q.campings, campingID); err != nil {
		return nil, err
	}

	limit = ValidateLimit(limit)
	var rows []*CommentView
	var err error
	if cursor == nil || cursor.After == "" {
		rows, err = q.comments.FindByCampingFirstPage(ctx, campingID, pgconv.IntToInt32(limit+1))
	} else {
		lastCreatedAt, lastID, derr := DecodeAfterCursor(cursor.After)
		if derr != nil {
			return nil, ErrInvalidCursor
		}
		rows, err = q.comments.FindByCampingKeyset(ctx, campingID, lastCreatedAt, lastID, pgconv.IntToInt32(limit+1))
	}
	if err != nil {
		return nil, err
	}

	var next *Cursor
	if len(rows) > limit {
		last := rows[limit-1]
		next = &Cursor{After: EncodeAfterCursor(last.CreatedAt, last.ID)}
		rows = rows[:limit]
	}

	ids := make([]uuid.UUID, len(rows))
	for i, row := range rows {
		ids[i] = row.ID
	}
	replies, err := q.comments.FindReplies(ctx, ids)
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		row.Replies = replies[row.ID]
		if row.Replies == nil {
			row.Replies = []*CommentView{}
		}
	}

	return &CommentPage{Items: rows, Next: next}, nil
}
