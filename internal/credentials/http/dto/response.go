// Package dto provides data transfer objects for HTTP request and response handling.
package dto

// ReadTokenResponse carries an issued read token.
type ReadTokenResponse struct {
	Token string `json:"token"`
}

// SignedURLResponse carries an issued signed URL token and the ready-to-use
// relative URL embedding it.
type SignedURLResponse struct {
	Token string `json:"token"`
	URL   string `json:"url"`
}
