package model

import "errors"

var (
	ErrInvalidData = errors.New("INVALID_DATA_FOUND")
	ErrFilesystem  = errors.New("FILESYSTEM_ERROR")
)

type RunError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// NewRunError maps a fatal archiving error to a code and a message for the user
func NewRunError(errReason error) RunError {
	switch {
	case errors.Is(errReason, ErrInvalidData):
		return RunError{
			Code:    ErrInvalidData.Error(),
			Message: "github returned a repository without name, clone url or html url. archiving stopped",
		}

	case errors.Is(errReason, ErrFilesystem):
		return RunError{
			Code:    ErrFilesystem.Error(),
			Message: "unable to write into the archive directory. check permissions and free disk space",
		}

	default:
		return RunError{
			Code:    "GENERIC_ERROR",
			Message: "archiving stopped on an unexpected error",
		}
	}
}
