package zoo

import (
	"encoding/json"
	"fmt"

	"github.com/go-playground/validator/v10"
)

var animalValidate = validator.New(validator.WithRequiredStructEnabled())

// animalPayload is the create body. Decoding into concrete types does the
// type checks; the tags do the presence checks. A nil slice means the
// traits were missing or null, an empty one is allowed.
type animalPayload struct {
	Name              string   `json:"name" validate:"required"`
	Species           string   `json:"species" validate:"required"`
	Diet              string   `json:"diet" validate:"required"`
	PersonalityTraits []string `json:"personalityTraits" validate:"required"`
}

// DecodeAnimal parses and validates a create payload.
//
// Any failure is reported as ErrInvalidRecord wrapping the underlying
// decode or validation error. The returned animal has no id.
func DecodeAnimal(data []byte) (Animal, error) {
	var p animalPayload
	if err := json.Unmarshal(data, &p); err != nil {
		return Animal{}, fmt.Errorf("%w: %v", ErrInvalidRecord, err)
	}
	if err := animalValidate.Struct(p); err != nil {
		return Animal{}, fmt.Errorf("%w: %v", ErrInvalidRecord, err)
	}
	return Animal{
		Name:              p.Name,
		Species:           p.Species,
		Diet:              p.Diet,
		PersonalityTraits: p.PersonalityTraits,
	}, nil
}

// ValidateAnimal checks an already constructed animal against the same rules.
func ValidateAnimal(a Animal) error {
	p := animalPayload{Name: a.Name, Species: a.Species, Diet: a.Diet, PersonalityTraits: a.PersonalityTraits}
	if err := animalValidate.Struct(p); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidRecord, err)
	}
	return nil
}
