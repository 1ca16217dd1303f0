package utils

// ToPtr - указатель на копию значения.
func ToPtr[T any](v T) *T {
	return &v
}
