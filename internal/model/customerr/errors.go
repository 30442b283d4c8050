package customerr

// FetchError means the initial record set could not be retrieved.
type FetchError struct {
	Err error
}

func (e *FetchError) Error() string {
	return "fetch expenses: " + e.Err.Error()
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// CreateError means a submitted expense was not persisted.
// The in-memory store is left untouched when it is returned.
type CreateError struct {
	Err error
}

func (e *CreateError) Error() string {
	return "create expense: " + e.Err.Error()
}

func (e *CreateError) Unwrap() error {
	return e.Err
}

// ValidationError carries user input that was rejected before reaching a source.
type ValidationError struct {
	Err error
}

func (e *ValidationError) Error() string {
	return "invalid expense: " + e.Err.Error()
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}
