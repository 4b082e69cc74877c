package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/strumind/console/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Login prompts the user for credentials and exchanges them for a session.
//
// The last successfully used username is offered as the default. On a
// rejected credential pair the session stays unauthenticated and nothing is
// persisted; on transport failure a generic message is shown and the user
// may re-trigger. The password byte slice is securely wiped before
// returning.
func (a *App) Login(ctx context.Context) error {
	prompt := "Enter username"
	if last := a.session.LastUsername(ctx); last != "" {
		prompt = fmt.Sprintf("Enter username [%s]", last)
	}
	userName, err := getSimpleText(a.reader, prompt, os.Stdout)
	if err != nil {
		return err
	}
	if userName == "" {
		userName = a.session.LastUsername(ctx)
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	user, err := a.session.Login(ctx, userName, string(password))
	if err != nil {
		switch {
		case errors.Is(err, common.ErrUnauthorized):
			printlnFn("Invalid username or password")
		case errors.Is(err, common.ErrUnavailable):
			printlnFn("Server unavailable, please try again")
		default:
			printlnFn("Login failed:", err.Error())
		}
		return err
	}

	printlnFn(fmt.Sprintf("Logged in as %s", user.Username))
	return nil
}

// Logout drops the persisted token and in-memory user state. No server
// call is made.
func (a *App) Logout(ctx context.Context) error {
	a.stopWatcher()
	if err := a.session.Logout(ctx); err != nil {
		printlnFn("Logout failed:", err.Error())
		return err
	}
	printlnFn("Logged out")
	return nil
}

// Whoami prints the authenticated account and the session expiry.
func (a *App) Whoami(ctx context.Context) error {
	u := a.session.User()
	if u == nil {
		printlnFn("Not logged in")
		return nil
	}
	printlnFn(fmt.Sprintf("%s <%s>", u.Username, u.Email))
	if u.FullName != "" {
		printlnFn("Name:", u.FullName)
	}
	if u.IsSuperuser {
		printlnFn("Role: superuser")
	}
	if exp, ok := a.session.ExpiresAt(); ok {
		printlnFn("Session expires:", exp.Local().Format(time.RFC1123))
	}
	return nil
}
