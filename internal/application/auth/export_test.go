package auth

// SetCompare reemplaza la comparación bcrypt en tests.
func SetCompare(uc *AuthUseCase, fn func(hash, password []byte) error) {
	uc.compare = fn
}
