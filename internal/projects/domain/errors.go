package domain

import "errors"

var (
	ErrProjectNotFound  = errors.New("project not found")
	ErrEmptyText        = errors.New("project text is required")
	ErrInvalidStatus    = errors.New("invalid project status")
	ErrStatusRegression = errors.New("project status cannot move backwards")
)
