package service

import (
	"errors"

	"trivia-api/internal/domain"
)

// asDomainError passes DomainErrors through and wraps anything else with code.
func asDomainError(err error, code domain.ErrorCode, message string) error {
	var de *domain.DomainError
	if errors.As(err, &de) {
		return err
	}
	return domain.NewError(code, message, err)
}
