// Package auth selects how requests to the push gateway are authenticated.
package auth

// Kind enumerates the supported authentication modes.
type Kind int

const (
	None   Kind = iota // No credentials are attached.
	Bearer             // Authorization: Bearer <token>.
	Basic              // HTTP basic auth.
)

// String returns the mode name.
func (k Kind) String() string {
	switch k {
	case Bearer:
		return "bearer"
	case Basic:
		return "basic"
	default:
		return "none"
	}
}

// Mode is the resolved authentication mode with the credentials it needs.
// Only the fields of the selected Kind are set.
type Mode struct {
	Kind     Kind
	Token    string
	Username string
	Password string
}

// Resolve picks the authentication mode: a non-empty bearer token wins,
// otherwise basic auth when both username and password are non-empty,
// otherwise none.
func Resolve(bearerToken, username, password string) Mode {
	switch {
	case bearerToken != "":
		return Mode{Kind: Bearer, Token: bearerToken}
	case username != "" && password != "":
		return Mode{Kind: Basic, Username: username, Password: password}
	default:
		return Mode{Kind: None}
	}
}

// String describes the mode without exposing secrets.
func (m Mode) String() string {
	if m.Kind == Basic {
		return "basic(" + m.Username + ")"
	}
	return m.Kind.String()
}
