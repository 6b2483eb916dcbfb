package universe

import (
	"fmt"

	"github.com/pkg/errors"
)

//ErrUnknownTemplate is returned by SettleTemplate for a name that was never added
var ErrUnknownTemplate = errors.New("unknown template")

//ErrInvalidCell is returned by Set for a value other than Dead or Alive
var ErrInvalidCell = errors.New("invalid cell value")

//OutOfRangeError reports coordinates outside the grid
type OutOfRangeError struct {
	Row    uint32
	Column uint32
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("row or column out of range %d %d", e.Row, e.Column)
}

func outOfRange(row uint32, column uint32) error {
	return errors.WithStack(&OutOfRangeError{Row: row, Column: column})
}
