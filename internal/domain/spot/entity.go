package spot

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidType     = errors.New("spot type must be one of tent, caravan, camper, bungalow")
	ErrInvalidCapacity = errors.New("capacity must be at least 1")
	ErrNegativePrice   = errors.New("price per night cannot be negative")
	ErrPriceTooHigh    = errors.New("price per night exceeds the maximum")
	ErrPriceOverflow   = errors.New("price total is out of range")
	ErrInvalidPosition = errors.New("row and column must be at least 1")
	ErrInvalidRating   = errors.New("rating must be between 0 and 5")
	ErrLabelTooLong    = errors.New("tag or service exceeds maximum length")
	ErrTooManyLabels   = errors.New("too many tags or services")
)

type Spot struct {
	id            uuid.UUID
	campingID     uuid.UUID
	name          string
	spotType      Type
	capacity      int
	pricePerNight Money
	isAvailable   bool
	description   string
	position      GridPosition
	rating        *float64
	tags          []string
	services      []string
	createdAt     time.Time
	updatedAt     time.Time
}

type Attributes struct {
	Name          string
	Type          Type
	Capacity      int
	PricePerNight int64
	IsAvailable   bool
	Description   string
	Row           int
	Column        int
	Rating        *float64
	Tags          []string
	Services      []string
}

func NewSpot(campingID uuid.UUID, a Attributes, now time.Time) (*Spot, error) {
	s := &Spot{
		id:        uuid.New(),
		campingID: campingID,
		createdAt: now,
	}
	if err := s.apply(a, now); err != nil {
		return nil, err
	}
	return s, nil
}

func ReconstructSpot(id, campingID uuid.UUID, a Attributes, createdAt, updatedAt time.Time) *Spot {
	return &Spot{
		id:            id,
		campingID:     campingID,
		name:          a.Name,
		spotType:      a.Type,
		capacity:      a.Capacity,
		pricePerNight: Money{amount: a.PricePerNight},
		isAvailable:   a.IsAvailable,
		description:   a.Description,
		position:      GridPosition{row: a.Row, column: a.Column},
		rating:        a.Rating,
		tags:          a.Tags,
		services:      a.Services,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}
}

func (s *Spot) Update(a Attributes, now time.Time) error {
	return s.apply(a, now)
}

func (s *Spot) apply(a Attributes, now time.Time) error {
	if !a.Type.IsValid() {
		return ErrInvalidType
	}
	if a.Capacity < 1 {
		return ErrInvalidCapacity
	}
	price, err := NewMoney(a.PricePerNight)
	if err != nil {
		return err
	}
	pos, err := NewGridPosition(a.Row, a.Column)
	if err != nil {
		return err
	}
	if a.Rating != nil && (*a.Rating < 0 || *a.Rating > 5) {
		return ErrInvalidRating
	}
	tags, err := NormalizeLabels(a.Tags)
	if err != nil {
		return err
	}
	services, err := NormalizeLabels(a.Services)
	if err != nil {
		return err
	}

	s.name = strings.TrimSpace(a.Name)
	s.spotType = a.Type
	s.capacity = a.Capacity
	s.pricePerNight = price
	s.isAvailable = a.IsAvailable
	s.description = strings.TrimSpace(a.Description)
	s.position = pos
	s.rating = a.Rating
	s.tags = tags
	s.services = services
	s.updatedAt = now
	return nil
}

// Attributes returns the current editable state; callers patch it and pass it back to Update.
func (s *Spot) Attributes() Attributes {
	return Attributes{
		Name:          s.name,
		Type:          s.spotType,
		Capacity:      s.capacity,
		PricePerNight: s.pricePerNight.Amount(),
		IsAvailable:   s.isAvailable,
		Description:   s.description,
		Row:           s.position.Row(),
		Column:        s.position.Column(),
		Rating:        s.rating,
		Tags:          s.tags,
		Services:      s.services,
	}
}

func (s *Spot) ID() uuid.UUID          { return s.id }
func (s *Spot) CampingID() uuid.UUID   { return s.campingID }
func (s *Spot) Name() string           { return s.name }
func (s *Spot) Type() Type             { return s.spotType }
func (s *Spot) Capacity() int          { return s.capacity }
func (s *Spot) PricePerNight() Money   { return s.pricePerNight }
func (s *Spot) IsAvailable() bool      { return s.isAvailable }
func (s *Spot) Description() string    { return s.description }
func (s *Spot) Position() GridPosition { return s.position }
func (s *Spot) Rating() *float64       { return s.rating }
func (s *Spot) Tags() []string         { return s.tags }
func (s *Spot) Services() []string     { return s.services }
func (s *Spot) CreatedAt() time.Time   { return s.createdAt }
func (s *Spot) UpdatedAt() time.Time   { return s.updatedAt }
