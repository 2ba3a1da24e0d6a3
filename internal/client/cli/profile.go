package cli

import (
	"context"
	"fmt"
	"os"

	"campuspocket/internal/client/models"
)

// defaultAvatarURL is shown when the user never set a profile picture.
const defaultAvatarURL = "https://example.com/default-avatar.png"

// ShowProfile re-reads the record and renders the profile.
func (a *App) ShowProfile(ctx context.Context) error {
	user, err := a.profileService.Get(ctx, a.user.Username)
	if err != nil {
		printlnFn(fmt.Sprintf("Failed to load profile: %s", err))
		return err
	}
	a.user = user

	picture := user.ProfilePicture
	if picture == "" {
		picture = defaultAvatarURL
	}

	printlnFn(fmt.Sprintf("%s %s", user.FirstName, user.LastName))
	printlnFn(fmt.Sprintf("Email: %s", user.Email))
	printlnFn(fmt.Sprintf("Contact: %s", user.ContactNumber))
	printlnFn(fmt.Sprintf("Address: %s", user.Address))
	printlnFn(fmt.Sprintf("Picture: %s", picture))
	return nil
}

// EditProfile prompts for each mutable field. Pressing Enter on an empty
// line keeps the current value.
func (a *App) EditProfile(ctx context.Context) error {
	upd := &models.ProfileUpdate{}

	fields := []struct {
		label   string
		current string
		dest    *string
	}{
		{"First name", a.user.FirstName, &upd.FirstName},
		{"Last name", a.user.LastName, &upd.LastName},
		{"Email", a.user.Email, &upd.Email},
		{"Contact number", a.user.ContactNumber, &upd.ContactNumber},
		{"Address", a.user.Address, &upd.Address},
		{"Profile picture URL", a.user.ProfilePicture, &upd.ProfilePicture},
	}

	for _, f := range fields {
		prompt := fmt.Sprintf("%s [%s] (Enter to keep)", f.label, f.current)
		value, err := getSimpleText(a.reader, prompt, os.Stdout)
		if err != nil {
			return err
		}
		*f.dest = value
	}

	updated, err := a.profileService.Update(ctx, a.user.Username, upd)
	if err != nil {
		printlnFn(fmt.Sprintf("Failed to save profile: %s", err))
		return err
	}

	a.user = updated
	printlnFn("Profile saved.")
	return nil
}
