package camping

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

var (
	ErrInvalidName        = errors.New("camping name must be between 1 and 255 characters")
	ErrDescriptionTooLong = errors.New("description exceeds maximum length")
	ErrCityRequired       = errors.New("location city is required")
	ErrFieldTooLong       = errors.New("field exceeds maximum length")
	ErrInvalidSlug        = errors.New("slug cannot be empty")
)

type Camping struct {
	id          uuid.UUID
	ownerID     uuid.UUID
	name        string
	slug        string
	description string
	imageURL    string
	location    Location
	billing     Billing
	createdAt   time.Time
	updatedAt   time.Time
}

type Details struct {
	Name        string
	Description string
	ImageURL    string
	Location    Location
	Billing     Billing
}

func NewCamping(ownerID uuid.UUID, slug string, d Details, now time.Time) (*Camping, error) {
	c := &Camping{
		id:        uuid.New(),
		ownerID:   ownerID,
		createdAt: now,
	}
	if err := c.apply(slug, d, now); err != nil {
		return nil, err
	}
	return c, nil
}

func ReconstructCamping(id, ownerID uuid.UUID, slug string, d Details, createdAt, updatedAt time.Time) *Camping {
	return &Camping{
		id:          id,
		ownerID:     ownerID,
		name:        d.Name,
		slug:        slug,
		description: d.Description,
		imageURL:    d.ImageURL,
		location:    d.Location,
		billing:     d.Billing,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

// Update replaces the editable details; ownership and creation time never change.
func (c *Camping) Update(slug string, d Details, now time.Time) error {
	return c.apply(slug, d, now)
}

func (c *Camping) apply(slug string, d Details, now time.Time) error {
	name := strings.TrimSpace(d.Name)
	if name == "" || utf8.RuneCountInString(name) > MaxNameLength {
		return ErrInvalidName
	}
	description := strings.TrimSpace(d.Description)
	if utf8.RuneCountInString(description) > MaxDescriptionLength {
		return ErrDescriptionTooLong
	}
	if strings.TrimSpace(slug) == "" {
		return ErrInvalidSlug
	}
	if d.Location.City() == "" {
		return ErrCityRequired
	}

	c.name = name
	c.slug = slug
	c.description = description
	c.imageURL = strings.TrimSpace(d.ImageURL)
	c.location = d.Location
	c.billing = d.Billing
	c.updatedAt = now
	return nil
}

func (c *Camping) ID() uuid.UUID        { return c.id }
func (c *Camping) OwnerID() uuid.UUID   { return c.ownerID }
func (c *Camping) Name() string         { return c.name }
func (c *Camping) Slug() string         { return c.slug }
func (c *Camping) Description() string  { return c.description }
func (c *Camping) ImageURL() string     { return c.imageURL }
func (c *Camping) Location() Location   { return c.location }
func (c *Camping) Billing() Billing     { return c.billing }
func (c *Camping) CreatedAt() time.Time { return c.createdAt }
func (c *Camping) UpdatedAt() time.Time { return c.updatedAt }
