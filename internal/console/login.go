package console

import (
	"context"
	"fmt"

	"github.com/sensitive01/jobsstorm-admin-panel/internal/toast"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Login prompts for admin credentials, authenticates against the backend and
// persists the issued token so subsequent requests carry it.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter admin email", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}

	res, reply := a.gw.Login(ctx, email, string(password))
	if reply == nil {
		a.log.Warn(ctx, "login failed", "result", res.String())
		a.toasts.Show(res.Message, toast.Error)
		return nil
	}

	if err := a.sess.Set(reply.Token, email); err != nil {
		return fmt.Errorf("persisting session: %w", err)
	}

	msg := reply.Message
	if msg == "" {
		msg = "Logged in"
	}
	a.toasts.Show(msg, toast.Success)
	return nil
}

// Logout drops the session token.
func (a *App) Logout(ctx context.Context) error {
	if err := a.sess.Clear(); err != nil {
		return err
	}
	a.toasts.Show("Logged out", toast.Success)
	return nil
}
