package word

import (
	"fmt"
)

// Union is implemented by tagged unions. Active returns the selected member,
// or nil when no member has been selected.
type Union interface {
	Active() any
}

// Resolve descends through nested unions until it reaches a member that is
// not itself a union. A union with no active member is a construction bug
// and panics with ErrNoVariant.
func Resolve(value any) any {
	for {
		union, ok := value.(Union)
		if !ok {
			return value
		}
		value = union.Active()
		if value == nil {
			panic(ErrNoVariant{Union: fmt.Sprintf("%T", union)})
		}
	}
}
