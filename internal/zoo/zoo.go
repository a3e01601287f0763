// Package zoo holds the animal and zookeeper record types and the pure
// operations over them: query filtering, id lookup and payload validation.
//
// Nothing in this package touches storage. Stores in internal/store hand
// their current sequence to these functions.
package zoo

import "errors"

var (
	// ErrInvalidRecord is returned when a create payload is not a well-formed animal.
	ErrInvalidRecord = errors.New("invalid animal record")

	// ErrNotFound is returned when no record has the requested id.
	ErrNotFound = errors.New("animal not found")
)

// Animal is a single animal record.
type Animal struct {
	ID                string   `json:"id"`
	Name              string   `json:"name"`
	Species           string   `json:"species"`
	Diet              string   `json:"diet"`
	PersonalityTraits []string `json:"personalityTraits"`
}

// HasTrait reports whether the animal carries trait (exact match).
func (a Animal) HasTrait(trait string) bool {
	for _, t := range a.PersonalityTraits {
		if t == trait {
			return true
		}
	}
	return false
}

// Zookeeper is accepted by the zookeeper create endpoint. It is not stored.
type Zookeeper struct {
	Name           string `json:"name"`
	Age            int    `json:"age"`
	FavoriteAnimal string `json:"favoriteAnimal"`
}
