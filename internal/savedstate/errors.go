package savedstate

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

var ErrClosed = errors.New("saved state store is closed")

type OpError struct {
	Op      string
	Session uuid.UUID
	Err     error
}

func (e *OpError) Error() string {
	if e == nil {
		return ""
	}
	if e.Session != uuid.Nil {
		return fmt.Sprintf("%s session %s: %v", e.Op, e.Session, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *OpError) Unwrap() error { return e.Err }

func wrapErr(op string, session uuid.UUID, err error) error {
	if err == nil {
		return nil
	}
	return &OpError{Op: op, Session: session, Err: err}
}
