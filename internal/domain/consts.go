package domain

// Reaction emoji names recognized on line-up messages
const (
	AcceptEmoji  = "white_check_mark"
	DeclineEmoji = "x"
)

// Rendering and delivery limits
const (
	// MaxListedNames caps each participation list in a rendered line-up so the
	// message stays under Slack's size limits.
	MaxListedNames = 30

	// MentionChunkSize is the maximum number of user mentions per announcement
	// message.
	MentionChunkSize = 50
)

// Event labels used by scheduled announcements
const (
	SiegeLabel      = "Guild Siege"
	SecretRoomLabel = "Secret Room"
	WorldBossLabel  = "World Boss"
)
