package upload

import "errors"

var (
	ErrNoFile       = errors.New("no file provided")
	ErrEmptyFile    = errors.New("file is empty")
	ErrFileTooLarge = errors.New("file exceeds maximum allowed size")
)
