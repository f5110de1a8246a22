package browser

import (
	"github.com/rs/zerolog/log"

	"github.com/sbeardsley/archive-browser/internal/types"
)

// Notifier is the blocking-notification channel for user-initiated actions:
// batch operation failures, validation messages, success summaries. Page
// loading never goes through it; those failures are log-only.
type Notifier interface {
	Notify(message string)
}

type noopNotifier struct{}

func (noopNotifier) Notify(string) {}

// LogNotifier routes notifications to the diagnostic log. Useful default
// for headless use of the SDK.
type LogNotifier struct{}

// Notify implements Notifier.
func (LogNotifier) Notify(message string) {
	log.Info().Str("notification", message).Msg("user notification")
}

// SuggestionView renders the tag-suggestion dropdown. Each state is
// explicit: a successful empty result and a failed request look different.
type SuggestionView interface {
	ShowLoading()
	ShowTags(tags []string)
	ShowEmpty()
	ShowError()
	Hide()
}

type noopSuggestionView struct{}

func (noopSuggestionView) ShowLoading()      {}
func (noopSuggestionView) ShowTags([]string) {}
func (noopSuggestionView) ShowEmpty()        {}
func (noopSuggestionView) ShowError()        {}
func (noopSuggestionView) Hide()             {}

// UsernameView renders the tracked-username list.
type UsernameView interface {
	RenderUsernames(usernames []string)
}

type noopUsernameView struct{}

func (noopUsernameView) RenderUsernames([]string) {}

// StatsView receives queue-dashboard updates from the poller.
type StatsView interface {
	UpdateStats(stats types.QueueStats)
	UpdateActivity(activity []types.Activity)
}
