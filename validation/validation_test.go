package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/user/fitfusion-go/apperror"
)

type sample struct {
	Name     string  `json:"name" validate:"required"`
	Email    string  `json:"email" validate:"required,email"`
	Day      string  `json:"day" validate:"required,datetime=2006-01-02"`
	Minutes  int     `json:"minutes" validate:"required,min=1"`
	Nickname *string `json:"nickname,omitempty" validate:"omitnil,min=1"`
	Ignored  string  `json:"-"`
}

func valid() sample {
	return sample{Name: "Leg Day", Email: "a@example.com", Day: "2024-01-15", Minutes: 45}
}

func TestStruct_Valid(t *testing.T) {
	assert.NoError(t, Struct(valid()))
	s := valid()
	nick := "legs"
	s.Nickname = &nick
	assert.NoError(t, Struct(&s))
}

func TestStruct_MissingFieldsListedByJSONName(t *testing.T) {
	err := Struct(sample{Email: "a@example.com"})
	require.Error(t, err)
	assert.True(t, apperror.IsValidationError(err))
	assert.Equal(t, "missing required fields: name, day, minutes", apperror.FromError(err).Message)
}

func TestStruct_MissingTakesPrecedenceOverInvalid(t *testing.T) {
	s := valid()
	s.Name = ""
	s.Email = "not-an-email"
	err := Struct(s)
	require.Error(t, err)
	assert.Equal(t, "missing required fields: name", apperror.FromError(err).Message)
}

func TestStruct_InvalidFields(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*sample)
		want   string
	}{
		{"email", func(s *sample) { s.Email = "nope" }, "invalid fields: email"},
		{"date", func(s *sample) { s.Day = "15/01/2024" }, "invalid fields: day"},
		{"negative", func(s *sample) { s.Minutes = -5 }, "invalid fields: minutes"},
		{"empty pointer", func(s *sample) { empty := ""; s.Nickname = &empty }, "invalid fields: nickname"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := valid()
			tt.mutate(&s)
			err := Struct(s)
			require.Error(t, err)
			assert.True(t, apperror.IsValidationError(err))
			assert.Equal(t, tt.want, apperror.FromError(err).Message)
		})
	}
}

func TestStruct_NonStructIsInternal(t *testing.T) {
	err := Struct(42)
	require.Error(t, err)
	assert.Equal(t, apperror.InternalError, apperror.FromError(err).Type)
}
