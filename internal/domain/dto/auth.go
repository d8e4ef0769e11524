package dto

// OperatorKeyHeader carries the operator key exchanged for an access token.
const OperatorKeyHeader = "X-Operator-Key"

// RoleEditor may modify the airline dataset.
const RoleEditor = "editor"

// TokenResponse is returned by the token endpoint.
//
// @Description Operator access token
type TokenResponse struct {
	AccessToken string `json:"access_token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
	TokenType   string `json:"token_type" example:"Bearer"`
	// ExpiresIn is the token lifetime in seconds.
	ExpiresIn int64 `json:"expires_in" example:"900"`
} // @name TokenResponse

// Claims are the application claims carried by an access token.
type Claims struct {
	Operator string   `json:"operator"`
	Roles    []string `json:"roles"`
}

// HasRole reports whether the claims grant role.
func (c *Claims) HasRole(role string) bool {
	for _, r := range c.Roles {
		if r == role {
			return true
		}
	}
	return false
}
