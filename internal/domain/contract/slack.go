package contract

import "github.com/slack-go/slack"

// SlackClient defines the narrow Slack API surface the bot consumes.
// This allows mocking in tests while keeping the real implementation simple.
type SlackClient interface {
	// PostMessage sends a message to a Slack channel and returns the channel
	// and message timestamp assigned by Slack.
	PostMessage(channelID string, options ...slack.MsgOption) (string, string, error)

	// UpdateMessage edits a previously sent message.
	UpdateMessage(channelID, timestamp string, options ...slack.MsgOption) (string, string, string, error)

	// AddReaction attaches a reaction to a message.
	AddReaction(name string, item slack.ItemRef) error

	// GetConversationInfo looks up a channel, used as a capability pre-check
	// before posting.
	GetConversationInfo(input *slack.GetConversationInfoInput) (*slack.Channel, error)
}
