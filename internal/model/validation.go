package model

// ValidationError reports a single rejected field. Handlers show
// Reason to the user as-is, so it must stay human-readable.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}
