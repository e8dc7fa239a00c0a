package errors

import (
	"errors"
	"fmt"
)

// NewMissingArgumentError reports an absent required argument. The what
// parameter names the expected argument ("task id", "task name", ...).
func NewMissingArgumentError(what string) *AppError {
	return &AppError{
		Type:    ErrorTypeMissingArgument,
		Message: fmt.Sprintf("expected additional argument specifying the %s", what),
		Code:    "MISSING_ARGUMENT",
	}
}

// NewTooManyArgumentsError reports trailing arguments a command does not take.
func NewTooManyArgumentsError(extra string) *AppError {
	return &AppError{
		Type:    ErrorTypeTooManyArguments,
		Message: fmt.Sprintf("too many arguments provided: %s", extra),
		Code:    "TOO_MANY_ARGUMENTS",
	}
}

// NewInvalidTaskIDError reports a task id token that does not parse as a
// positive integer.
func NewInvalidTaskIDError(raw string) *AppError {
	return &AppError{
		Type:    ErrorTypeInvalidTaskID,
		Message: fmt.Sprintf("invalid task id provided: %s", raw),
		Code:    "INVALID_TASK_ID",
	}
}

// NewTaskNotFoundError reports a well-formed id outside the collection range.
func NewTaskNotFoundError() *AppError {
	return &AppError{
		Type:    ErrorTypeTaskNotFound,
		Message: "task not found",
		Code:    "TASK_NOT_FOUND",
	}
}

// NewInvalidColorError reports a color token outside the five known tags.
func NewInvalidColorError(token string) *AppError {
	return &AppError{
		Type:    ErrorTypeInvalidColor,
		Message: fmt.Sprintf("the requested color is not available: %s", token),
		Code:    "INVALID_COLOR",
	}
}

// NewInvalidDateError reports a date token that is not a YYYY-MM-DD date.
func NewInvalidDateError(raw string) *AppError {
	return &AppError{
		Type:    ErrorTypeInvalidDate,
		Message: fmt.Sprintf("incorrectly formatted date (should be of YYYY-MM-DD format): %s", raw),
		Code:    "INVALID_DATE",
	}
}

// NewStorageError wraps an I/O failure during load, save or rotation.
func NewStorageError(operation string, cause error) *AppError {
	return &AppError{
		Type:    ErrorTypeStorage,
		Message: fmt.Sprintf("storage operation failed: %s", operation),
		Code:    "STORAGE_ERROR",
		Cause:   cause,
	}
}

// NewDecodeError wraps a failure to decode the persisted task file.
func NewDecodeError(cause error) *AppError {
	return &AppError{
		Type:    ErrorTypeStorage,
		Message: "unable to decode save file contents",
		Code:    "DECODE_FAILED",
		Cause:   cause,
	}
}

// NewNoBackupError reports an undo attempt with an empty backup chain.
func NewNoBackupError() *AppError {
	return &AppError{
		Type:    ErrorTypeNoBackup,
		Message: "unable to undo: no undos are available",
		Code:    "NO_BACKUP",
	}
}

// IsAppError checks if the error is an AppError
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// AsAppError converts an error to an AppError if possible
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// IsErrorType checks if the error is of the specified type
func IsErrorType(err error, errorType ErrorType) bool {
	if appErr, ok := AsAppError(err); ok {
		return appErr.IsType(errorType)
	}
	return false
}

// GetUserMessage returns a user-friendly error message
func GetUserMessage(err error) string {
	if appErr, ok := AsAppError(err); ok {
		switch appErr.Type {
		case ErrorTypeStorage:
			if appErr.Cause != nil {
				return fmt.Sprintf("%s: %v", appErr.Message, appErr.Cause)
			}
			return appErr.Message
		default:
			return appErr.Message
		}
	}
	return err.Error()
}

// GetErrorCode returns the error code for the error
func GetErrorCode(err error) string {
	if appErr, ok := AsAppError(err); ok {
		return appErr.Code
	}
	return "UNKNOWN_ERROR"
}
