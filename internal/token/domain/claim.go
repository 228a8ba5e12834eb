package domain

import "time"

// UntrustedClaim is the output of decoding a token without checking its
// signature. It carries the opaque encrypted payload segment and the token's
// stated claims. Nothing in an UntrustedClaim may feed an authorization
// decision; it exists only to learn which key to verify the token with.
type UntrustedClaim struct {
	// Payload is the encrypted credential payload ciphertext.
	Payload string
	// ExpiresAt is the token's stated expiry (zero when absent).
	ExpiresAt time.Time
	// IssuedAt is the token's stated issuance time (zero when absent).
	IssuedAt time.Time
}

// VerifiedClaim is the output of a successful signature verification. The
// distinct type keeps unverified data out of authorization paths.
type VerifiedClaim struct {
	// Payload is the encrypted credential payload ciphertext.
	Payload string
	// ExpiresAt is the verified expiry claim.
	ExpiresAt time.Time
	// IssuedAt is the verified issuance claim.
	IssuedAt time.Time
}
