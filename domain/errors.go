package domain

import "errors"

var (
	ErrPresentationNotFound  = errors.New("presentation not found")
	ErrInvalidPresentationID = errors.New("invalid presentation id")
	ErrCompanyNotFound       = errors.New("no presentations found for this company")
)
