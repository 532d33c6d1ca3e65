package comment

import (
	"time"

	"campsite-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrInvalidRating      = errs.New("rating must be between 1 and 5")
	ErrEmptyBody          = errs.New("comment cannot be empty")
	ErrBodyTooLong        = errs.New("comment exceeds maximum length")
	ErrRatingOnReply      = errs.New("replies cannot carry a rating")
	ErrParentOtherCamping = errs.New("parent comment belongs to a different camping")
	ErrReplyToReply       = errs.New("replies can only answer top-level comments")
)

type Comment struct {
	id        uuid.UUID
	campingID uuid.UUID
	userID    uuid.UUID
	parentID  *uuid.UUID
	body      Body
	rating    *Rating
	createdAt time.Time
	updatedAt time.Time
}

// Parent is what a reply needs to know about the comment it answers.
type Parent struct {
	ID        uuid.UUID
	CampingID uuid.UUID
	IsReply   bool
}

func NewComment(campingID, userID uuid.UUID, parent *Parent, text string, rating *int, now time.Time) (*Comment, error) {
	body, err := NewBody(text)
	if err != nil {
		return nil, err
	}

	var parentID *uuid.UUID
	if parent != nil {
		if parent.CampingID != campingID {
			return nil, ErrParentOtherCamping
		}
		if parent.IsReply {
			return nil, ErrReplyToReply
		}
		if rating != nil {
			return nil, ErrRatingOnReply
		}
		id := parent.ID
		parentID = &id
	}

	r, err := optionalRating(rating)
	if err != nil {
		return nil, err
	}

	return &Comment{
		id:        uuid.New(),
		campingID: campingID,
		userID:    userID,
		parentID:  parentID,
		body:      body,
		rating:    r,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructComment(id, campingID, userID uuid.UUID, parentID *uuid.UUID, body string, rating *int, createdAt, updatedAt time.Time) *Comment {
	var r *Rating
	if rating != nil {
		r = &Rating{value: *rating}
	}
	return &Comment{
		id:        id,
		campingID: campingID,
		userID:    userID,
		parentID:  parentID,
		body:      Body{text: body},
		rating:    r,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

// Edit replaces the body and, for top-level comments, the rating. A nil rating keeps the current one.
func (c *Comment) Edit(text *string, rating *int, now time.Time) error {
	if text != nil {
		body, err := NewBody(*text)
		if err != nil {
			return err
		}
		c.body = body
	}
	if rating != nil {
		if c.IsReply() {
			return ErrRatingOnReply
		}
		r, err := optionalRating(rating)
		if err != nil {
			return err
		}
		c.rating = r
	}
	c.updatedAt = now
	return nil
}

func (c *Comment) AsParent() Parent {
	return Parent{ID: c.id, CampingID: c.campingID, IsReply: c.IsReply()}
}

func (c *Comment) IsReply() bool { return c.parentID != nil }

func (c *Comment) RatingValue() *int {
	if c.rating == nil {
		return nil
	}
	v := c.rating.Value()
	return &v
}

func optionalRating(v *int) (*Rating, error) {
	if v == nil {
		return nil, nil
	}
	r, err := NewRating(*v)
	if err != nil {
		return nil, err
	}
	return &r, nil
}

func (c *Comment) ID() uuid.UUID        { return c.id }
func (c *Comment) CampingID() uuid.UUID { return c.campingID }
func (c *Comment) UserID() uuid.UUID    { return c.userID }
func (c *Comment) ParentID() *uuid.UUID { return c.parentID }
func (c *Comment) Body() Body           { return c.body }
func (c *Comment) CreatedAt() time.Time { return c.createdAt }
func (c *Comment) UpdatedAt() time.Time { return c.updatedAt }
