package model

import (
	"net/url"

	"github.com/shopspring/decimal"
)

const placeholderAvatarURL = "https://ui-avatars.com/api/?name="

// Doctor is a catalog entry as served by the backend.
type Doctor struct {
	ID              uint            `json:"id"`
	Name            string          `json:"name"`
	Specialization  string          `json:"specialization"`
	Experience      int             `json:"experience"`
	Rating          decimal.Decimal `json:"rating"`
	ConsultationFee decimal.Decimal `json:"consultation_fee"`
	Image           string          `json:"image"`
	Description     string          `json:"description"`
}

// AvatarURL returns the doctor's image, or a generated placeholder when none is set.
func (d Doctor) AvatarURL() string {
	if d.Image != "" {
		return d.Image
	}
	return PlaceholderAvatar(d.Name)
}

// PlaceholderAvatar builds a generated avatar URL for name.
func PlaceholderAvatar(name string) string {
	return placeholderAvatarURL + url.QueryEscape(name)
}
