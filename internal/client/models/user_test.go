package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProfileUpdate_ApplyTo(t *testing.T) {
	current := User{
		ID:             1,
		Username:       "alice",
		Password:       "pw1",
		FirstName:      "A",
		LastName:       "B",
		Email:          "a@b.com",
		ContactNumber:  "12345",
		Address:        "X",
		ProfilePicture: "",
	}

	t.Run("empty update keeps everything", func(t *testing.T) {
		upd := &ProfileUpdate{}
		assert.Equal(t, current, upd.ApplyTo(current))
	})

	t.Run("single field changes only that field", func(t *testing.T) {
		upd := &ProfileUpdate{Address: "Y"}
		got := upd.ApplyTo(current)

		want := current
		want.Address = "Y"
		assert.Equal(t, want, got)
	})

	t.Run("identity fields are untouched", func(t *testing.T) {
		upd := &ProfileUpdate{FirstName: "Z"}
		got := upd.ApplyTo(current)

		assert.Equal(t, current.ID, got.ID)
		assert.Equal(t, current.Username, got.Username)
		assert.Equal(t, current.Password, got.Password)
	})
}
