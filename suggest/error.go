package suggest

// Error is a general error for directory operations.
type Error string

func (e Error) Error() string {
	return "suggest: " + string(e)
}
