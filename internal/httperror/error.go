// Package httperror provides the error type all handlers respond with.
package httperror

type Error struct {
	Message string `json:"error" example:"The allocation does not exist"`
}

func New(e error) Error {
	return Error{
		Message: e.Error(),
	}
}

func NewFromString(s string) Error {
	return Error{
		Message: s,
	}
}
