package response

import (
	"time"

	"campsite-booking/internal/pkg/errs"
	"campsite-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type SpotResponse struct {
	ID            uuid.UUID `json:"id"`
	CampingID     uuid.UUID `json:"camping_id"`
	Name          string    `json:"name"`
	Type          string    `json:"type"`
	Capacity      int       `json:"capacity"`
	PricePerNight int64     `json:"price_per_night"`
	IsAvailable   bool      `json:"is_available"`
	Description   string    `json:"description"`
	Row           int       `json:"row"`
	Column        int       `json:"column"`
	Rating        *float64  `json:"rating,omitempty"`
	Tags          []string  `json:"tags"`
	Services      []string  `json:"services"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

var errNilSpotView = errs.New("nil spot view")

// FromSpotView copies field by name; tags and services are deep-copied so the view can be reused.
func FromSpotView(v *queries.SpotView) (*SpotResponse, error) {
	if v == nil {
		return nil, errNilSpotView
	}
	res := &SpotResponse{}
	if err := copier.CopyWithOption(res, v, copier.Option{DeepCopy: true}); err != nil {
		return nil, errs.Wrapf(err, "failed to map spot %s", v.ID)
	}
	if res.Tags == nil {
		res.Tags = []string{}
	}
	if res.Services == nil {
		res.Services = []string{}
	}
	return res, nil
}

func FromSpotViews(views []*queries.SpotView) ([]*SpotResponse, error) {
	res := make([]*SpotResponse, len(views))
	for i, v := range views {
		r, err := FromSpotView(v)
		if err != nil {
			return nil, err
		}
		res[i] = r
	}
	return res, nil
}
