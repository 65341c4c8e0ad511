package slack

import (
	"fmt"
	"strings"
)

type CommandType string

const (
	CmdSiege    CommandType = "siege"
	CmdSecret   CommandType = "secret"
	CmdPost     CommandType = "post"
	CmdNext     CommandType = "next"
	CmdBoss     CommandType = "boss"
	CmdStopBoss CommandType = "stopboss"
	CmdStatus   CommandType = "status"
	CmdHelp     CommandType = "help"
)

type Command struct {
	Type CommandType
	Args []string
	Raw  string
}

func ParseCommand(text string) (*Command, error) {
	parts := strings.Fields(strings.TrimSpace(text))
	if len(parts) == 0 {
		return &Command{Type: CmdHelp}, nil
	}

	cmd := &Command{
		Raw: text,
	}

	switch parts[0] {
	case "siege":
		cmd.Type = CmdSiege
		if len(parts) > 1 {
			cmd.Args = parts[1:]
		}
	case "secret", "secretroom":
		cmd.Type = CmdSecret
		if len(parts) > 1 {
			cmd.Args = parts[1:]
		}
	case "post":
		cmd.Type = CmdPost
		if len(parts) > 1 {
			cmd.Args = parts[1:]
		}
	case "next", "nextffa":
		cmd.Type = CmdNext
	case "boss", "worldboss", "wb":
		cmd.Type = CmdBoss
		if len(parts) > 1 {
			cmd.Args = parts[1:]
		}
	case "stopboss", "stop":
		cmd.Type = CmdStopBoss
	case "status":
		cmd.Type = CmdStatus
	case "help", "":
		cmd.Type = CmdHelp
	default:
		return nil, fmt.Errorf("unknown command: %s", parts[0])
	}

	return cmd, nil
}

// Text returns the free-form remainder of the command.
func (c *Command) Text() string {
	return strings.Join(c.Args, " ")
}

func GetHelpText() string {
	return `*Available Commands:*

*Line-ups:*
• ` + "`/lineup siege [text]`" + ` - Post a siege line-up (react ✅/❌ to join or decline)
• ` + "`/lineup secret [text]`" + ` - Post a secret room line-up
A time in the text (e.g. ` + "`8pm`" + ` or a Slack date token) schedules a start announcement.

*Timers:*
• ` + "`/lineup boss [duration]`" + ` - Start a world boss countdown (default 2h)
• ` + "`/lineup stopboss`" + ` - Cancel the countdown in this channel
• ` + "`/lineup next`" + ` - Show the next recurring announcement time

*Misc:*
• ` + "`/lineup post <text>`" + ` - Post a message as the bot
• ` + "`/lineup status`" + ` - Show bot status`
}
