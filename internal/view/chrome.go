package view

import "net/url"

// Auth tabs.
const (
	TabLogin  = "login"
	TabSignup = "signup"
)

// Chrome is the visibility state of modals, tabs and the admin sidebar for one
// render. It carries no business logic.
type Chrome struct {
	AuthModalOpen    bool
	AuthTab          string
	BookingModalOpen bool
	SidebarOpen      bool
}

// ChromeFromQuery reads modal=auth|booking, tab=login|signup and sidebar=open.
func ChromeFromQuery(q url.Values) Chrome {
	c := Chrome{AuthTab: TabLogin}
	switch q.Get("modal") {
	case "auth":
		c.AuthModalOpen = true
	case "booking":
		c.BookingModalOpen = true
	}
	if q.Get("tab") == TabSignup {
		c.AuthTab = TabSignup
	}
	c.SidebarOpen = q.Get("sidebar") == "open"
	return c
}

// OpenLogin switches the booking modal off and shows the login surface instead.
func (c Chrome) OpenLogin() Chrome {
	c.BookingModalOpen = false
	c.AuthModalOpen = true
	c.AuthTab = TabLogin
	return c
}

// TabClass returns "active" for the selected tab.
func (c Chrome) TabClass(tab string) string {
	if c.AuthTab == tab {
		return "active"
	}
	return ""
}

// WithQuery appends chrome query parameters to p.
func WithQuery(p string, params ...string) string {
	if len(params) < 2 {
		return p
	}
	q := url.Values{}
	for i := 0; i+1 < len(params); i += 2 {
		q.Set(params[i], params[i+1])
	}
	return p + "?" + q.Encode()
}
