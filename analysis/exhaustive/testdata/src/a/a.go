package a

type Class uint8

const (
	Red Class = iota
	Green
	Blue
)

type Pair uint8

const (
	RedRed   = Pair(Red<<2 | Red)
	RedBlue  = Pair(Red<<2 | Blue)
	BlueRed  = Pair(Blue<<2 | Red)
	BlueBlue = Pair(Blue<<2 | Blue)
)

type Other int

const (
	One Other = iota
	Two
)

func full(c Class) int {
	switch c {
	case Red:
		return 0
	case Green, Blue:
		return 1
	}
	panic("unreachable")
}

func missing(c Class) int {
	switch c { // want `switch on Class is missing Blue`
	case Red, Green:
		return 0
	}
	return 1
}

func converted(c Class) int {
	switch c {
	case Class(0), Class(1), Class(2):
		return 0
	}
	return 1
}

func withDefault(c Class) int {
	switch c {
	case Red, Green, Blue:
		return 0
	default: // want `switch on Class has a default arm`
		return 1
	}
}

func pairs(x, y Class) int {
	switch Pair(x<<2 | y) { // want `switch on Pair is missing BlueRed, BlueBlue`
	case RedRed, RedBlue:
		return 0
	}
	return 1
}

func untracked(o Other) int {
	switch o {
	case One:
		return 0
	}
	return 1
}

func tagless(c Class) int {
	switch {
	case c == Red:
		return 0
	}
	return 1
}
