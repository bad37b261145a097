package models

// Session is the client-side login state: the bearer token plus the profile
// it belongs to. It lives in memory only and is discarded when the client
// exits; there is no on-disk persistence.
type Session struct {
	Token string
	User  User
}

// LoggedIn reports whether the session carries a usable token.
func (s Session) LoggedIn() bool {
	return s.Token != ""
}
