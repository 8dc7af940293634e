package errors

import "errors"

// Доменные ошибки. Команды (cmd) только логируют их, код выхода не меняется.
var (
	ErrInvalidMedicine   = errors.New("invalid medicine")
	ErrUnsupportedDriver = errors.New("unsupported database driver")
	ErrCommitFailed      = errors.New("commit failed")
)
