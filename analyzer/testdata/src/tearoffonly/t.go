package tearoffonly

type Meters float64

// Not reported: the type-literal detector is disabled in this run.
func scale(f float64) Meters { return Meters(f) }

type Box struct{ V int }

func box(v int) Box { return Box{v} } // want `low confidence unnamed tearoff: func box forwards to Box\{\}`
