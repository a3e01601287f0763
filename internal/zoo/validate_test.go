package zoo_test

import (
	"errors"
	"testing"

	"github.com/jroosing/zooapi/internal/zoo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeAnimal_Accepts(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"full", `{"name":"Rex","species":"dog","diet":"omnivore","personalityTraits":["loyal"]}`},
		{"empty traits", `{"name":"Rex","species":"dog","diet":"omnivore","personalityTraits":[]}`},
		{"client id ignored", `{"id":"77","name":"Rex","species":"dog","diet":"omnivore","personalityTraits":[]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := zoo.DecodeAnimal([]byte(tt.body))
			require.NoError(t, err)
			assert.Equal(t, "Rex", a.Name)
			assert.Empty(t, a.ID)
			assert.NotNil(t, a.PersonalityTraits)
		})
	}
}

func TestDecodeAnimal_Rejects(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"only name", `{"name":"Rex"}`},
		{"missing name", `{"species":"dog","diet":"omnivore","personalityTraits":[]}`},
		{"empty name", `{"name":"","species":"dog","diet":"omnivore","personalityTraits":[]}`},
		{"numeric name", `{"name":7,"species":"dog","diet":"omnivore","personalityTraits":[]}`},
		{"missing species", `{"name":"Rex","diet":"omnivore","personalityTraits":[]}`},
		{"boolean species", `{"name":"Rex","species":true,"diet":"omnivore","personalityTraits":[]}`},
		{"missing diet", `{"name":"Rex","species":"dog","personalityTraits":[]}`},
		{"empty diet", `{"name":"Rex","species":"dog","diet":"","personalityTraits":[]}`},
		{"missing traits", `{"name":"Rex","species":"dog","diet":"omnivore"}`},
		{"null traits", `{"name":"Rex","species":"dog","diet":"omnivore","personalityTraits":null}`},
		{"scalar traits", `{"name":"Rex","species":"dog","diet":"omnivore","personalityTraits":"loyal"}`},
		{"map traits", `{"name":"Rex","species":"dog","diet":"omnivore","personalityTraits":{"a":"loyal"}}`},
		{"not an object", `["Rex"]`},
		{"malformed", `{"name":`},
		{"empty body", ``},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := zoo.DecodeAnimal([]byte(tt.body))
			require.Error(t, err)
			assert.True(t, errors.Is(err, zoo.ErrInvalidRecord))
		})
	}
}

func TestValidateAnimal(t *testing.T) {
	assert.NoError(t, zoo.ValidateAnimal(zoo.Animal{Name: "a", Species: "b", Diet: "c", PersonalityTraits: []string{}}))
	assert.ErrorIs(t, zoo.ValidateAnimal(zoo.Animal{Name: "a", Species: "b", Diet: "c"}), zoo.ErrInvalidRecord)
}
