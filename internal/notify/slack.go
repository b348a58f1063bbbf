package notify

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/slack-go/slack"
	"github.com/spf13/viper"
)

// SlackNotifier posts ticket event messages to a Slack channel.
type SlackNotifier struct {
	client  *slack.Client
	channel string
}

// NewSlackNotifier creates a notifier for the given bot token and
// channel. Extra options are passed through to the Slack client, which
// lets tests point it at a local server.
func NewSlackNotifier(botToken, channel string, opts ...slack.Option) *SlackNotifier {
	return &SlackNotifier{
		client:  slack.New(botToken, opts...),
		channel: channel,
	}
}

// Notify posts the message to the configured channel.
func (s *SlackNotifier) Notify(ctx context.Context, message string) error {
	if s.client == nil {
		return fmt.Errorf("slack client is not configured")
	}

	_, _, err := s.client.PostMessageContext(ctx, s.channel, slack.MsgOptionText(message, false))
	if err != nil {
		return fmt.Errorf("failed to send slack notification: %w", err)
	}
	return nil
}

// FromConfig builds a notifier from viper settings, or nil when slack
// notifications are disabled or the bot token is missing.
func FromConfig() Notifier {
	if !viper.GetBool("notifications.slack.enabled") {
		return nil
	}

	botToken := os.Getenv("SLACK_BOT_USER_TOKEN")
	if botToken == "" {
		slog.Warn("SLACK_BOT_USER_TOKEN not set, slack notifications disabled")
		return nil
	}

	return NewSlackNotifier(botToken, viper.GetString("notifications.slack.channel"))
}
