package service

// Claims is the authenticated identity carried by an access token.
type Claims struct {
	UserID uint
	Email  string
	Name   string
}

// TokenService signs and validates access tokens.
type TokenService interface {
	// Sign issues a token embedding the given claims.
	Sign(claims Claims) (string, error)

	// Validate parses and verifies a token string, returning the embedded
	// claims on success.
	Validate(tokenString string) (*Claims, error)
}
