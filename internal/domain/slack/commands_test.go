package slack

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCommand(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		wantType CommandType
		wantText string
		wantErr  bool
	}{
		{
			name:     "Should parse siege with free form text",
			text:     "siege tonight at 8pm",
			wantType: CmdSiege,
			wantText: "tonight at 8pm",
		},
		{
			name:     "Should parse siege without text",
			text:     "siege",
			wantType: CmdSiege,
		},
		{
			name:     "Should parse secret",
			text:     "secret bring keys",
			wantType: CmdSecret,
			wantText: "bring keys",
		},
		{
			name:     "Should accept the secretroom alias",
			text:     "secretroom",
			wantType: CmdSecret,
		},
		{
			name:     "Should parse post",
			text:     "post hello guild",
			wantType: CmdPost,
			wantText: "hello guild",
		},
		{
			name:     "Should parse next",
			text:     "next",
			wantType: CmdNext,
		},
		{
			name:     "Should accept the nextffa alias",
			text:     "nextffa",
			wantType: CmdNext,
		},
		{
			name:     "Should parse boss with duration",
			text:     "boss 90m",
			wantType: CmdBoss,
			wantText: "90m",
		},
		{
			name:     "Should accept the wb alias",
			text:     "wb",
			wantType: CmdBoss,
		},
		{
			name:     "Should parse stopboss",
			text:     "stopboss",
			wantType: CmdStopBoss,
		},
		{
			name:     "Should accept the stop alias",
			text:     "stop",
			wantType: CmdStopBoss,
		},
		{
			name:     "Should parse status",
			text:     "status",
			wantType: CmdStatus,
		},
		{
			name:     "Should default empty input to help",
			text:     "   ",
			wantType: CmdHelp,
		},
		{
			name:    "Should reject unknown commands",
			text:    "dance",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, err := ParseCommand(tt.text)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantType, cmd.Type)
			assert.Equal(t, tt.wantText, cmd.Text())
		})
	}
}

func TestGetHelpText(t *testing.T) {
	help := GetHelpText()
	assert.Contains(t, help, "/lineup siege")
	assert.Contains(t, help, "/lineup boss")
	assert.Contains(t, help, "/lineup stopboss")
}
