package httperrors

// HTTPError is the body of all error responses.
type HTTPError struct {
	Error string `json:"error" example:"you must send a file to this endpoint"`
}

// Error is used to return an error with the corresponding HTTP status code to a controller.
type Error struct {
	Err    error
	Status int // Used with http.StatusX for the corresponding HTTP status code
}

// Nil checks if the Error is the zero value.
func (e Error) Nil() bool {
	return e.Err == nil && e.Status == 0
}

// Error returns the error as a string.
func (e Error) Error() string {
	return e.Err.Error()
}

// Body returns the response body for the error.
func (e Error) Body() HTTPError {
	return HTTPError{
		Error: e.Error(),
	}
}
