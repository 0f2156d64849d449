package arc

import "fmt"

type constError string

// ErrInvalidCapacity may be returned from [New].
const ErrInvalidCapacity = constError("invalid capacity")

func (errStr constError) Error() string { return string(errStr) }

func capacityError(capacity int) error {
	return fmt.Errorf(
		"%w: must be within [%d, %d] but %d was requested",
		ErrInvalidCapacity, MinimumCapacity, MaximumCapacity, capacity)
}
