package crypto

// CredentialSealer generates provisioning passwords and protects them at
// rest. Sealed credentials are only ever read back by an operator handing a
// password to a new user; the sync engine itself never needs the plaintext
// after provisioning.
type CredentialSealer interface {
	// GeneratePassword returns a random password satisfying the default
	// Mattermost complexity policy (lowercase, uppercase, digit, symbol).
	GeneratePassword() (string, error)

	// Seal encrypts a plaintext credential for storage.
	Seal(plaintext string) (string, error)

	// Open decrypts a credential previously produced by Seal.
	Open(sealed string) (string, error)
}
