package libsocial

// Error is a general error for view operations.
type Error string

func (e Error) Error() string {
	return "libsocial: " + string(e)
}
