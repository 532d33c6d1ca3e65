package policy

import "github.com/google/uuid"

type Camping struct {
	OwnerID uuid.UUID
}

type Spot struct {
	CampingOwnerID uuid.UUID
}

type Reservation struct {
	GuestID        uuid.UUID
	CampingOwnerID uuid.UUID
}

type Comment struct {
	AuthorID       uuid.UUID
	CampingOwnerID uuid.UUID
}

// CampingPolicy: anyone may view, hosts may create, only the owner mutates.
// ActionListBookings covers reading every reservation of the camping.
func CampingPolicy(actor Actor, c Camping, action Action) Decision {
	switch action {
	case ActionView:
		return Allow
	case ActionCreate:
		return allowIf(actor.IsAuthenticated() && actor.Role.CanHost())
	case ActionUpdate, ActionDelete:
		return allowIf(actor.Is(c.OwnerID))
	case ActionListBookings:
		return allowIf(actor.Is(c.OwnerID) || actor.IsAdmin())
	default:
		return Deny
	}
}

func SpotPolicy(actor Actor, s Spot, action Action) Decision {
	switch action {
	case ActionView:
		return Allow
	case ActionCreate, ActionUpdate, ActionDelete:
		return allowIf(actor.Is(s.CampingOwnerID))
	default:
		return Deny
	}
}

// ReservationPolicy: the guest may only cancel; the campground owner may move the reservation through
// any status and delete it.
func ReservationPolicy(actor Actor, r Reservation, action Action) Decision {
	switch action {
	case ActionView:
		return allowIf(actor.Is(r.GuestID) || actor.Is(r.CampingOwnerID) || actor.IsAdmin())
	case ActionCreate:
		return allowIf(actor.IsAuthenticated())
	case ActionCancel:
		return allowIf(actor.Is(r.GuestID) || actor.Is(r.CampingOwnerID))
	case ActionChangeStatus, ActionDelete:
		return allowIf(actor.Is(r.CampingOwnerID))
	default:
		return Deny
	}
}

func CommentPolicy(actor Actor, c Comment, action Action) Decision {
	switch action {
	case ActionView:
		return Allow
	case ActionCreate:
		return allowIf(actor.IsAuthenticated())
	case ActionUpdate:
		return allowIf(actor.Is(c.AuthorID))
	case ActionDelete:
		return allowIf(actor.Is(c.AuthorID) || actor.Is(c.CampingOwnerID) || actor.IsAdmin())
	default:
		return Deny
	}
}
