package service

// PasswordHasher abstracts one-way password hashing.
type PasswordHasher interface {
	// Hash produces a storable hash of the plaintext password.
	Hash(password string) (string, error)

	// Compare reports whether the plaintext password matches the stored hash.
	Compare(hashedPassword, password string) error
}
