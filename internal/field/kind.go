package field

// Kind is the trail marker held by a single grid cell.
type Kind uint8

const (
	// None means no trail has been laid on the cell.
	None Kind = iota
	// ToFood is laid by ants that are carrying food.
	ToFood
	// ToHome is laid by ants that are still searching.
	ToHome
)

// Kinds lists every marker value in declaration order.
var Kinds = [...]Kind{None, ToFood, ToHome}

// Valid reports whether k is one of the declared markers.
func (k Kind) Valid() bool {
	switch k {
	case None, ToFood, ToHome:
		return true
	}
	return false
}

// Signal reports whether k should attract a sensing ant.
func (k Kind) Signal() bool {
	switch k {
	case ToFood, ToHome:
		return true
	case None:
		return false
	}
	return false
}

func (k Kind) String() string {
	switch k {
	case None:
		return "none"
	case ToFood:
		return "to-food"
	case ToHome:
		return "to-home"
	}
	return "invalid"
}
