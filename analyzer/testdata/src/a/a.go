package a

type Point struct{ X, Y int }

type Celsius float64

func apply(f func(int, int) Point) Point { return f(1, 2) }

var _ = apply(func(x, y int) Point { return Point{X: x, Y: y} }) // want `high confidence unnamed tearoff: function literal forwards to Point\{\}`

func makePoint(x, y int) Point { return Point{X: x, Y: y} } // want `low confidence unnamed tearoff: func makePoint forwards to Point\{\}`

// Not trivial: the literal 0 is not a parameter reference.
func at(x int) Point { return Point{x, 0} }

func toCelsius(f float64) Celsius { return Celsius(f) } // want `type literal: type Celsius used as value`

func NewPoint(x, y int) Point { // want `low confidence unnamed tearoff: func NewPoint forwards to Point\{\}`
	return Point{X: x, Y: y}
}

func viaConstructor(f func(int, int) Point) Point { return f(3, 4) }

var _ = viaConstructor(func(a, b int) Point { return NewPoint(a, b) }) // want `high confidence named tearoff: function literal forwards to NewPoint\(\)`
