package auth

// UserClaims is what the auth middleware hands to handlers after a session
// token has been verified.
type UserClaims interface {
	UserID() string
	Username() string
	SessionID() string
	Source() string
}

// SessionClaims is the claims set carried by a session JWT.
type SessionClaims struct {
	UserUUID     string
	UsernameVal  string
	SessionIDVal string
}

func (c *SessionClaims) UserID() string    { return c.UserUUID }
func (c *SessionClaims) Username() string  { return c.UsernameVal }
func (c *SessionClaims) SessionID() string { return c.SessionIDVal }
func (c *SessionClaims) Source() string    { return "JWT" }
