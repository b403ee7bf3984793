package prune

import (
	"errors"
	"fmt"
)

type Action string

const (
	ActionRemoveFile Action = "remove"
	ActionRemoveDir  Action = "remove-dir"
	ActionMove       Action = "move"
)

// Op is a single filesystem step of a pass. Target is only set for moves;
// Rule names the rule that produced the op.
type Op struct {
	Action Action
	Path   string
	Target string
	Rule   string
}

func (o Op) String() string {
	if o.Action == ActionMove {
		return fmt.Sprintf("%s %s -> %s", o.Action, o.Path, o.Target)
	}
	return fmt.Sprintf("%s %s", o.Action, o.Path)
}

var (
	ErrIsDir  = errors.New("is a directory")
	ErrNotDir = errors.New("not a directory")
)

// OpError records the op that failed and the underlying OS error.
type OpError struct {
	Op   Op
	Path string
	Err  error
}

func (e *OpError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *OpError) Unwrap() error { return e.Err }
