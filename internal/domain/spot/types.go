package spot

type Type string

const (
	TypeTent     Type = "tent"
	TypeCaravan  Type = "caravan"
	TypeCamper   Type = "camper"
	TypeBungalow Type = "bungalow"
)

func (t Type) String() string {
	return string(t)
}

func (t Type) IsValid() bool {
	switch t {
	case TypeTent, TypeCaravan, TypeCamper, TypeBungalow:
		return true
	default:
		return false
	}
}

func NewType(s string) (Type, error) {
	t := Type(s)
	if !t.IsValid() {
		return "", ErrInvalidType
	}
	return t, nil
}
