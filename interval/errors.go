package interval

import "errors"

// ErrorKind is the kind of an interval construction error.
type ErrorKind int

const (
	// PossiblyUndefinedOperation signals that a result may depend on
	// boundary points that were excluded. It is reserved for checked
	// evaluation and is not produced by the core operations.
	PossiblyUndefinedOperation ErrorKind = iota
	// UndefinedOperation signals that the inputs do not describe a valid interval.
	UndefinedOperation
)

func (k ErrorKind) String() string {
	switch k {
	case PossiblyUndefinedOperation:
		return "possibly undefined operation"
	case UndefinedOperation:
		return "undefined operation"
	}
	return "unknown error kind"
}

// Error is returned when an interval cannot be constructed.
type Error struct {
	Kind ErrorKind
}

func (e *Error) Error() string {
	return e.Kind.String()
}

// Is reports whether target is an interval error of the same kind.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return t.Kind == e.Kind
}

var (
	ErrUndefinedOperation         error = &Error{Kind: UndefinedOperation}
	ErrPossiblyUndefinedOperation error = &Error{Kind: PossiblyUndefinedOperation}

	errInternal = errors.New("internal error")
)
