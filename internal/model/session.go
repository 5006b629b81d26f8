package model

// Session is the client-held proof of authentication.
type Session struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}
