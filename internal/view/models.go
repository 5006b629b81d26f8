package view

import (
	"strconv"

	"healthease/internal/model"
	"healthease/internal/session"
)

// Empty and error states for doctor grids.
const (
	NoDoctorsText        = "No doctors found."
	DoctorsFailedText    = "Failed to load doctors."
	NoFeaturedText       = "No featured doctors available."
	FeaturedFailedText   = "Backend not connected."
	selectDoctorLabel    = "Select Doctor"
	doctorsUnavailableTx = "Doctors could not be loaded."
)

// Page is the data every template receives.
type Page struct {
	Title   string
	Path    string
	Session *model.Session
	Flash   *session.Flash
	Chrome  Chrome
	Booking *BookingView
	Data    interface{}
}

// LoggedIn reports whether a session is present.
func (p Page) LoggedIn() bool {
	return p.Session != nil
}

// ShowAdminLink reports whether the admin-only navigation link is rendered.
func (p Page) ShowAdminLink() bool {
	return p.Session != nil && p.Session.User.IsAdmin()
}

// Greeting is the nav greeting for the signed-in user.
func (p Page) Greeting() string {
	if p.Session == nil {
		return ""
	}
	return "Hi, " + p.Session.User.FirstName()
}

// DoctorCard is one doctor as rendered in a grid.
type DoctorCard struct {
	ID             string
	Name           string
	Specialization string
	Rating         string
	Experience     int
	Fee            string
	Description    string
	ImageURL       string
	FallbackURL    string
}

// NewDoctorCards maps backend doctors to cards, substituting placeholder avatars.
func NewDoctorCards(doctors []model.Doctor) []DoctorCard {
	cards := make([]DoctorCard, 0, len(doctors))
	for _, d := range doctors {
		card := DoctorCard{
			ID:             strconv.FormatUint(uint64(d.ID), 10),
			Name:           d.Name,
			Specialization: d.Specialization,
			Rating:         d.Rating.StringFixed(1),
			Experience:     d.Experience,
			Description:    d.Description,
			ImageURL:       d.AvatarURL(),
			FallbackURL:    model.PlaceholderAvatar(d.Name),
		}
		if d.ConsultationFee.IsPositive() {
			card.Fee = d.ConsultationFee.StringFixed(0)
		}
		cards = append(cards, card)
	}
	return cards
}

// Grid is a doctor grid with its empty and error states resolved.
type Grid struct {
	Cards   []DoctorCard
	Message string
}

// NewGrid builds a grid. failed selects errorText; an empty list selects emptyText.
func NewGrid(doctors []model.Doctor, failed bool, emptyText, errorText string) Grid {
	switch {
	case failed:
		return Grid{Message: errorText}
	case len(doctors) == 0:
		return Grid{Message: emptyText}
	default:
		return Grid{Cards: NewDoctorCards(doctors)}
	}
}

// SelectOption is one <option> of the doctor select.
type SelectOption struct {
	Value    string
	Label    string
	Selected bool
}

// DoctorOptions builds the doctor select, led by an empty "Select Doctor" option.
func DoctorOptions(doctors []model.Doctor, selected string) []SelectOption {
	opts := make([]SelectOption, 0, len(doctors)+1)
	opts = append(opts, SelectOption{Value: "", Label: selectDoctorLabel, Selected: selected == ""})
	for _, d := range doctors {
		id := strconv.FormatUint(uint64(d.ID), 10)
		opts = append(opts, SelectOption{
			Value:    id,
			Label:    d.Name + " (" + d.Specialization + ")",
			Selected: id == selected,
		})
	}
	return opts
}

// BookingView feeds the appointment modal.
type BookingView struct {
	Options []SelectOption
	Notice  string
}

// NewBookingView builds the modal from the loaded options.
func NewBookingView(doctors []model.Doctor, selected string, unavailable bool) *BookingView {
	v := &BookingView{Options: DoctorOptions(doctors, selected)}
	if unavailable {
		v.Notice = doctorsUnavailableTx
	}
	return v
}

// Feature is a static selling point on the home and features pages.
type Feature struct {
	Icon  string
	Title string
	Text  string
}

// Features is the fixed feature list.
var Features = []Feature{
	{Icon: "fa-user-md", Title: "Expert Doctors", Text: "Top specialists available."},
	{Icon: "fa-clock", Title: "24/7 Support", Text: "Always here for you."},
	{Icon: "fa-shield-alt", Title: "Secure Data", Text: "Your health data is safe."},
	{Icon: "fa-video", Title: "Video Consult", Text: "Connect from home."},
}

// HomeData feeds the home page.
type HomeData struct {
	Features []Feature
	Featured Grid
}

// DoctorsData feeds the doctors page.
type DoctorsData struct {
	Grid Grid
}

// DashboardData feeds the patient dashboard.
type DashboardData struct {
	Stats   *model.DashboardStats
	Message string
}

// AdminData feeds the admin panel.
type AdminData struct {
	Name string
}
