package policy

import (
	"campsite-booking/internal/domain/user"
	"campsite-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrForbidden       = errs.New("forbidden")
	ErrUnauthenticated = errs.New("authentication required")
)

// Actor is the caller of a single request. The zero value is an anonymous visitor.
type Actor struct {
	UserID uuid.UUID
	Role   user.Role
}

func NewActor(userID uuid.UUID, role user.Role) Actor {
	return Actor{UserID: userID, Role: role}
}

func (a Actor) IsAuthenticated() bool {
	return a.UserID != uuid.Nil
}

func (a Actor) IsAdmin() bool {
	return a.IsAuthenticated() && a.Role == user.RoleAdmin
}

func (a Actor) Is(id uuid.UUID) bool {
	return a.IsAuthenticated() && a.UserID == id
}

type Action string

const (
	ActionView         Action = "view"
	ActionCreate       Action = "create"
	ActionUpdate       Action = "update"
	ActionDelete       Action = "delete"
	ActionCancel       Action = "cancel"
	ActionChangeStatus Action = "change_status"
	ActionListBookings Action = "list_bookings"
)

type Decision bool

const (
	Deny  Decision = false
	Allow Decision = true
)

func allowIf(cond bool) Decision {
	return Decision(cond)
}

func (d Decision) Allowed() bool {
	return bool(d)
}

// Err returns nil for Allow, ErrUnauthenticated for an anonymous actor, ErrForbidden otherwise.
func (d Decision) Err(actor Actor) error {
	if d {
		return nil
	}
	if !actor.IsAuthenticated() {
		return ErrUnauthenticated
	}
	return ErrForbidden
}
