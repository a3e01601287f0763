package zoo

import "net/url"

// Query parameter names accepted by the list endpoint.
const (
	ParamPersonalityTraits = "personalityTraits"
	ParamDiet              = "diet"
	ParamSpecies           = "species"
	ParamName              = "name"
)

// Criteria is the optional filter set of a list request.
// Empty fields are not applied.
type Criteria struct {
	PersonalityTraits []string
	Diet              string
	Species           string
	Name              string
}

// IsEmpty reports whether no criterion is set.
func (c Criteria) IsEmpty() bool {
	return len(c.PersonalityTraits) == 0 && c.Diet == "" && c.Species == "" && c.Name == ""
}

// CriteriaFromQuery extracts criteria from URL query values.
//
// personalityTraits may repeat (?personalityTraits=a&personalityTraits=b) or
// use the bracket form browsers emit for multi-selects (personalityTraits[]=a).
// Empty values are dropped; whitespace is kept and matched exactly, as for
// the other criteria. diet, species and name take only the first value when
// repeated.
func CriteriaFromQuery(q url.Values) Criteria {
	var traits []string
	for _, key := range []string{ParamPersonalityTraits, ParamPersonalityTraits + "[]"} {
		for _, v := range q[key] {
			if v != "" {
				traits = append(traits, v)
			}
		}
	}
	return Criteria{
		PersonalityTraits: traits,
		Diet:              q.Get(ParamDiet),
		Species:           q.Get(ParamSpecies),
		Name:              q.Get(ParamName),
	}
}

// Filter returns the animals matching every criterion in c, in input order.
// With no criteria the input is returned as is.
func Filter(c Criteria, animals []Animal) []Animal {
	result := animals
	for _, trait := range c.PersonalityTraits {
		result = narrow(result, func(a Animal) bool { return a.HasTrait(trait) })
	}
	if c.Diet != "" {
		result = narrow(result, func(a Animal) bool { return a.Diet == c.Diet })
	}
	if c.Species != "" {
		result = narrow(result, func(a Animal) bool { return a.Species == c.Species })
	}
	if c.Name != "" {
		result = narrow(result, func(a Animal) bool { return a.Name == c.Name })
	}
	return result
}

// narrow never aliases its input so callers may append to the result.
func narrow(animals []Animal, keep func(Animal) bool) []Animal {
	out := make([]Animal, 0, len(animals))
	for _, a := range animals {
		if keep(a) {
			out = append(out, a)
		}
	}
	return out
}

// FindByID returns the first animal whose id equals id.
func FindByID(id string, animals []Animal) (Animal, bool) {
	for _, a := range animals {
		if a.ID == id {
			return a, true
		}
	}
	return Animal{}, false
}
