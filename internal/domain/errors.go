package domain

import "errors"

var (
	ErrFileNotFound     = errors.New("file does not exist")
	ErrInvalidExtension = errors.New("invalid file extension")
	ErrEmptyWordList    = errors.New("word list is empty")
	ErrInvalidChunkSize = errors.New("chunk size must be a positive integer")
	ErrEmptyFileName    = errors.New("file name cannot be empty")
)
