package browser

import (
	"context"
	"errors"

	"github.com/rs/zerolog/log"

	apperrors "github.com/sbeardsley/archive-browser/internal/errors"
)

// Usernames manages the tracked-username list. Unlike page loading, these
// are user-initiated mutations, so failures are surfaced through the
// notifier rather than just logged.
type Usernames struct {
	client   *Client
	view     UsernameView
	notifier Notifier
}

// NewUsernames wires a username manager.
func NewUsernames(client *Client, view UsernameView, notifier Notifier) *Usernames {
	if view == nil {
		view = noopUsernameView{}
	}
	if notifier == nil {
		notifier = noopNotifier{}
	}
	return &Usernames{client: client, view: view, notifier: notifier}
}

// Load fetches the current list and renders it. Load failures are log-only;
// the list simply stays as it was.
func (u *Usernames) Load(ctx context.Context) error {
	usernames, err := u.client.ListUsernames(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("usernames: load failed")
		return err
	}
	u.view.RenderUsernames(usernames)
	return nil
}

// Add registers a username and reloads the list on success.
func (u *Usernames) Add(ctx context.Context, username string) error {
	if err := u.client.AddUsername(ctx, username); err != nil {
		u.notify("error adding username", err)
		return err
	}
	return u.Load(ctx)
}

// Delete removes a username and reloads the list on success.
func (u *Usernames) Delete(ctx context.Context, username string) error {
	if err := u.client.DeleteUsername(ctx, username); err != nil {
		u.notify("error deleting username", err)
		return err
	}
	return u.Load(ctx)
}

func (u *Usernames) notify(prefix string, err error) {
	var e *apperrors.Error
	msg := err.Error()
	if errors.As(err, &e) {
		msg = e.UserMessage()
	}
	u.notifier.Notify(prefix + ": " + msg)
}
