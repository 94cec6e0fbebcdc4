package interval

// Class is the sign classification of a single interval.
// The seven classes partition all interval values.
type Class uint8

const (
	// ClassE is ∅.
	ClassE Class = iota
	// ClassZ is {0}.
	ClassZ
	// ClassM is [a, b] with a < 0 < b.
	ClassM
	// ClassN0 is [a, 0] with a < 0.
	ClassN0
	// ClassN1 is [a, b] with b < 0.
	ClassN1
	// ClassP0 is [0, b] with 0 < b.
	ClassP0
	// ClassP1 is [a, b] with 0 < a.
	ClassP1
)

var classNames = [...]string{
	ClassE:  "E",
	ClassZ:  "Z",
	ClassM:  "M",
	ClassN0: "N0",
	ClassN1: "N1",
	ClassP0: "P0",
	ClassP1: "P1",
}

// Name is the uncolored name of c.
func (c Class) Name() string {
	if int(c) < len(classNames) {
		return classNames[c]
	}
	return "?"
}

func (c Class) String() string {
	return colorize.Class(c.Name())
}

// Class2 is the ordered pair of the classes of two intervals. It is used as
// the dispatch key of every piecewise binary operation.
type Class2 uint8

// The 49 ordered class pairs, named <class of lhs>_<class of rhs>.
const (
	E_E   = Class2(ClassE<<3 | ClassE)
	E_Z   = Class2(ClassE<<3 | ClassZ)
	E_M   = Class2(ClassE<<3 | ClassM)
	E_N0  = Class2(ClassE<<3 | ClassN0)
	E_N1  = Class2(ClassE<<3 | ClassN1)
	E_P0  = Class2(ClassE<<3 | ClassP0)
	E_P1  = Class2(ClassE<<3 | ClassP1)
	Z_E   = Class2(ClassZ<<3 | ClassE)
	Z_Z   = Class2(ClassZ<<3 | ClassZ)
	Z_M   = Class2(ClassZ<<3 | ClassM)
	Z_N0  = Class2(ClassZ<<3 | ClassN0)
	Z_N1  = Class2(ClassZ<<3 | ClassN1)
	Z_P0  = Class2(ClassZ<<3 | ClassP0)
	Z_P1  = Class2(ClassZ<<3 | ClassP1)
	M_E   = Class2(ClassM<<3 | ClassE)
	M_Z   = Class2(ClassM<<3 | ClassZ)
	M_M   = Class2(ClassM<<3 | ClassM)
	M_N0  = Class2(ClassM<<3 | ClassN0)
	M_N1  = Class2(ClassM<<3 | ClassN1)
	M_P0  = Class2(ClassM<<3 | ClassP0)
	M_P1  = Class2(ClassM<<3 | ClassP1)
	N0_E  = Class2(ClassN0<<3 | ClassE)
	N0_Z  = Class2(ClassN0<<3 | ClassZ)
	N0_M  = Class2(ClassN0<<3 | ClassM)
	N0_N0 = Class2(ClassN0<<3 | ClassN0)
	N0_N1 = Class2(ClassN0<<3 | ClassN1)
	N0_P0 = Class2(ClassN0<<3 | ClassP0)
	N0_P1 = Class2(ClassN0<<3 | ClassP1)
	N1_E  = Class2(ClassN1<<3 | ClassE)
	N1_Z  = Class2(ClassN1<<3 | ClassZ)
	N1_M  = Class2(ClassN1<<3 | ClassM)
	N1_N0 = Class2(ClassN1<<3 | ClassN0)
	N1_N1 = Class2(ClassN1<<3 | ClassN1)
	N1_P0 = Class2(ClassN1<<3 | ClassP0)
	N1_P1 = Class2(ClassN1<<3 | ClassP1)
	P0_E  = Class2(ClassP0<<3 | ClassE)
	P0_Z  = Class2(ClassP0<<3 | ClassZ)
	P0_M  = Class2(ClassP0<<3 | ClassM)
	P0_N0 = Class2(ClassP0<<3 | ClassN0)
	P0_N1 = Class2(ClassP0<<3 | ClassN1)
	P0_P0 = Class2(ClassP0<<3 | ClassP0)
	P0_P1 = Class2(ClassP0<<3 | ClassP1)
	P1_E  = Class2(ClassP1<<3 | ClassE)
	P1_Z  = Class2(ClassP1<<3 | ClassZ)
	P1_M  = Class2(ClassP1<<3 | ClassM)
	P1_N0 = Class2(ClassP1<<3 | ClassN0)
	P1_N1 = Class2(ClassP1<<3 | ClassN1)
	P1_P0 = Class2(ClassP1<<3 | ClassP0)
	P1_P1 = Class2(ClassP1<<3 | ClassP1)
)

// Split returns the classes of the left and right operands.
func (c Class2) Split() (Class, Class) {
	return Class(c >> 3), Class(c & 0x7)
}

func (c Class2) String() string {
	l, r := c.Split()
	return l.String() + "_" + r.String()
}

// Classify computes the class of x. Emptiness is tested first, then the
// bounds are compared against zero in a fixed order.
func (x Interval) Classify() Class {
	a, b := x.inf, x.sup
	switch {
	case x.IsEmpty():
		return ClassE
	case a == 0 && b == 0:
		return ClassZ
	case a < 0 && b > 0:
		return ClassM
	case a < 0 && b == 0:
		return ClassN0
	case b < 0:
		return ClassN1
	case a == 0 && b > 0:
		return ClassP0
	case a > 0:
		return ClassP1
	}
	panic(errInternal)
}

// Classify2 computes the ordered pair (x.Classify(), y.Classify()).
func (x Interval) Classify2(y Interval) Class2 {
	return Class2(x.Classify()<<3 | y.Classify())
}
