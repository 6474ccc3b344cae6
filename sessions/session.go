package sessions

// Session is the token pair held by the client. An empty string means the token is absent.
type Session struct {
	AccessToken  string
	RefreshToken string
}

// Authenticated reports whether requests will carry a bearer token.
func (s Session) Authenticated() bool {
	return s.AccessToken != ""
}

// CanRefresh reports whether a silent refresh can be attempted.
func (s Session) CanRefresh() bool {
	return s.RefreshToken != ""
}
