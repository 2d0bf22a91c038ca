package services

import "errors"

var (
	ErrNoCatalog         = errors.New("no place catalog configured")
	ErrInvalidStopBudget = errors.New("stop budget must be positive")
	ErrInvalidTimeBudget = errors.New("time budget must be positive")
)
