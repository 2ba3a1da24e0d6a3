package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"campuspocket/internal/client/models"
	"campuspocket/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register walks the user through the registration form and creates the
// account. A taken username or a failed field check is reported to the
// user; the error is also returned for the caller's benefit.
func (a *App) Register(ctx context.Context) error {
	user := &models.User{}

	username, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}
	user.Username = username

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	user.Password = password

	fields := []struct {
		prompt string
		dest   *string
	}{
		{"Enter first name", &user.FirstName},
		{"Enter last name", &user.LastName},
		{"Enter email", &user.Email},
		{"Enter contact number", &user.ContactNumber},
		{"Enter address", &user.Address},
		{"Enter profile picture URL (optional)", &user.ProfilePicture},
	}
	for _, f := range fields {
		value, err := getSimpleText(a.reader, f.prompt, os.Stdout)
		if err != nil {
			return err
		}
		*f.dest = value
	}

	created, err := a.authService.Register(ctx, user)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrorUsernameTaken):
			printlnFn("That username is already taken, please pick another one.")
		case errors.Is(err, common.ErrorValidation):
			printlnFn(fmt.Sprintf("Invalid input: %s", err))
		default:
			printlnFn(fmt.Sprintf("Registration failed: %s", err))
		}
		return err
	}

	printlnFn(fmt.Sprintf("Account created, you can log in now, %s!", created.FirstName))
	return nil
}

// Login prompts for credentials and authenticates. On success the session
// is persisted below, so the next start skips the login form.
func (a *App) Login(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}

	user, err := a.authService.Login(ctx, username, password)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrorInvalidCredentials):
			printlnFn("Invalid username or password.")
		case errors.Is(err, common.ErrorValidation):
			printlnFn(fmt.Sprintf("Invalid input: %s", err))
		default:
			printlnFn(fmt.Sprintf("Login failed: %s", err))
		}
		return err
	}

	a.user = user
	printlnFn(fmt.Sprintf("Welcome, %s!", user.FirstName))
	return nil
}

// Logout clears the cached session and returns the shell to the
// logged-out command set. User records are untouched.
func (a *App) Logout(ctx context.Context) error {
	if err := a.authService.Logout(ctx); err != nil {
		printlnFn(fmt.Sprintf("Logout failed: %s", err))
		return err
	}
	a.user = nil
	printlnFn("Logged out.")
	return nil
}
