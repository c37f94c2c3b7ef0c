package errs

import "fmt"

var (
	ErrInvalidConfig  = fmt.Errorf("invalid config")
	ErrUnknownCommand = fmt.Errorf("unknown command")
	ErrNotANumber     = fmt.Errorf("not a number")
)
