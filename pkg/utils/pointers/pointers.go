package pointers

// Bool returns a pointer to a bool. The pointer is never nil.
func Bool(b bool) *bool {
	return &b
}

// ToBool returns a bool from a pointer - false if pointer is nil.
func ToBool(b *bool) bool {
	if b == nil {
		return false
	}
	return *b
}
