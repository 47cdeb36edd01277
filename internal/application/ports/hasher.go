package ports

// PasswordHasher derives and checks salted credential hashes. Verify
// returns false on any internal failure; it never reports an error.
type PasswordHasher interface {
	Hash(password string) (hash, salt string, err error)
	Verify(password, hash, salt string) bool
}
