package cli

import (
	"context"
	"errors"
	"os"

	"github.com/visitdesk/visitdesk/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword
var getYesNo = GetYesNo

// Login prompts for credentials and opens a session. The remembered email, if
// any, is offered as the default.
func (a *App) Login(ctx context.Context) error {
	prompt := "Enter email"
	if remembered := a.authService.RememberedEmail(ctx); remembered != "" {
		prompt = "Enter email (Enter for " + remembered + ")"
	}
	email, err := getSimpleText(a.reader, prompt, os.Stdout)
	if err != nil {
		return err
	}
	if email == "" {
		email = a.authService.RememberedEmail(ctx)
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}

	rememberMe, err := getYesNo(a.reader, "Remember this email?", os.Stdout)
	if err != nil {
		return err
	}

	user, err := a.authService.Login(ctx, email, password, rememberMe)
	if err != nil {
		if errors.Is(err, common.ErrInvalidCredentials) {
			printlnFn("Invalid email or password")
			return err
		}
		printlnFn("Login failed:", err.Error())
		return err
	}

	printlnFn("Welcome,", user.Name)
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	a.authService.Logout(ctx)
	printlnFn("Logged out")
	return nil
}

// Profile shows the current user and optionally updates the free-form fields.
func (a *App) Profile(ctx context.Context) error {
	user, ok := a.authService.CurrentUser()
	if !ok {
		printlnFn("Not logged in")
		return common.ErrUnauthorized
	}

	printlnFn("Name: ", user.Name)
	printlnFn("Email:", user.Email)
	printlnFn("Role: ", string(user.Role))
	if user.Phone != "" {
		printlnFn("Phone:", user.Phone)
	}

	edit, err := getYesNo(a.reader, "Edit profile?", os.Stdout)
	if err != nil || !edit {
		return err
	}

	patch, err := a.readProfilePatch()
	if err != nil {
		return err
	}

	if _, err := a.authService.UpdateProfile(ctx, patch); err != nil {
		printlnFn("Update failed:", err.Error())
		return err
	}
	printlnFn("Profile updated")
	return nil
}
