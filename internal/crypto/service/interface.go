// Package service implements the deterministic symmetric cipher used for
// credential payloads and secret values at rest.
package service

// Cipher encrypts and decrypts short strings. Encrypt and Decrypt use the
// process master key; the WithKey variants use arbitrary caller-supplied
// key material instead.
//
// Encryption is deliberately deterministic: the key and IV are both derived
// from the key material alone, so equal plaintexts under equal key material
// produce equal ciphertexts. Secrets are looked up by ciphertext equality,
// which depends on this property. The scheme is therefore not semantically
// secure and must not be reused for data that needs random-nonce encryption.
type Cipher interface {
	// Encrypt encrypts plaintext under the master key.
	Encrypt(plaintext string) (string, error)

	// EncryptWithKey encrypts plaintext under the supplied key material.
	EncryptWithKey(plaintext, keyMaterial string) (string, error)

	// Decrypt decrypts ciphertext under the master key.
	Decrypt(ciphertext string) (string, error)

	// DecryptWithKey decrypts ciphertext under the supplied key material.
	DecryptWithKey(ciphertext, keyMaterial string) (string, error)
}
