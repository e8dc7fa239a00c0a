// Package validation checks already-tokenized command arguments and
// translates them into typed values. All operations share the same
// validation order: the id is checked first (present, parseable, in range),
// then any further arguments, so a failure never leaves a partial mutation.
package validation

import (
	"strconv"
	"strings"

	"todo/internal/domain"
	"todo/internal/errors"
)

// TaskID pops the leading token from args and resolves it against a
// collection of count tasks. It returns the 0-based position and the
// remaining tokens. The three failure modes are distinct: a missing token,
// a token that does not parse as a positive integer, and a well-formed id
// outside [1, count].
func TaskID(args []string, count int) (int, []string, error) {
	if len(args) == 0 {
		return 0, nil, errors.NewMissingArgumentError("task id")
	}

	raw := args[0]
	id, err := strconv.Atoi(raw)
	if err != nil || id < 0 {
		return 0, nil, errors.NewInvalidTaskIDError(raw)
	}
	if id == 0 || id > count {
		return 0, nil, errors.NewTaskNotFoundError()
	}

	return id - 1, args[1:], nil
}

// RequiredArg pops the leading token from args, failing with a
// missing-argument error naming what when there is none.
func RequiredArg(args []string, what string) (string, []string, error) {
	if len(args) == 0 {
		return "", nil, errors.NewMissingArgumentError(what)
	}
	return args[0], args[1:], nil
}

// JoinedArg joins all remaining tokens into one free-text value, failing
// with a missing-argument error naming what when the result is empty.
func JoinedArg(args []string, what string) (string, error) {
	joined := strings.Join(args, " ")
	if joined == "" {
		return "", errors.NewMissingArgumentError(what)
	}
	return joined, nil
}

// NoMoreArgs fails with a too-many-arguments error when tokens remain.
func NoMoreArgs(args []string) error {
	if len(args) > 0 {
		return errors.NewTooManyArgumentsError(strings.Join(args, " "))
	}
	return nil
}

// DueDate parses a YYYY-MM-DD token into a calendar date.
func DueDate(raw string) (domain.Date, error) {
	date, err := domain.ParseDate(raw)
	if err != nil {
		return domain.Date{}, errors.NewInvalidDateError(raw)
	}
	return date, nil
}

// Color resolves a color token. The five tag tokens yield the matching
// color, "clear" yields nil, and anything else is an invalid-color error.
func Color(token string) (*domain.Color, error) {
	if token == "clear" {
		return nil, nil
	}
	c, err := domain.ParseColor(token)
	if err != nil {
		return nil, errors.NewInvalidColorError(token)
	}
	return &c, nil
}
