package form2

import (
	"fmt"
	"runtime/debug"
)

type shapeErr struct {
	panicObj interface{}
	stack    string
}

func newShapeErr(a interface{}) *shapeErr {
	return &shapeErr{
		panicObj: a,
		stack:    string(debug.Stack()),
	}
}

func (s *shapeErr) Error() string {
	return fmt.Sprintf("%s", s.panicObj)
}

// Unwrap returns the panic value if it was an error.
func (s *shapeErr) Unwrap() error {
	err, _ := s.panicObj.(error)
	return err
}

// Stack returns the stack trace captured when the panic was recovered.
func (s *shapeErr) Stack() string { return s.stack }
