package waypoint

// Enumerable is the interface implemented by types that can only be represented by enumerable, constant values.
//
// Implementing a new Enumerable ought to include a Valid method rejecting every value
// not declared as one of its constants.
type Enumerable interface {
	String() string
	Valid() error
}
