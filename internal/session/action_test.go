package session

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActionMetadata(t *testing.T) {
	require.Len(t, Actions, 9)
	assert.Equal(t, "Log Trash Collected", Actions[0].Label())
	assert.Equal(t, "Exit", Actions[len(Actions)-1].Label())

	assert.True(t, ActionLogTrash.NeedsInput())
	assert.False(t, ActionViewImpact.NeedsInput())
	assert.False(t, ActionExit.NeedsInput())
	assert.Equal(t, "Calcium Bicarbonate Added", ActionAddAdditive.NoticeTitle())
	assert.Equal(t, "unknown", Action(99).String())
}

func TestParseAction(t *testing.T) {
	for _, a := range Actions {
		got, err := ParseAction(strings.ToUpper(a.String()))
		require.NoError(t, err)
		assert.Equal(t, a, got)
	}

	_, err := ParseAction("dance")
	assert.ErrorIs(t, err, ErrUnknownAction)
}

func TestDo(t *testing.T) {
	s := New(DefaultConfig())
	require.NoError(t, s.Start("Ada"))

	out, err := s.Do(ActionLogTrash, "3")
	require.NoError(t, err)
	assert.Contains(t, out, "15 EcoCoins")

	_, err = s.Do(ActionLogTrash, "")
	assert.ErrorIs(t, err, ErrNoInput)

	_, err = s.Do(ActionAddAdditive, "-1")
	assert.ErrorIs(t, err, ErrInvalidAmount)

	out, err = s.Do(ActionAddFriend, "two")
	assert.ErrorIs(t, err, ErrUnknownFriend)
	assert.Equal(t, InvalidChoiceMessage, out)

	out, err = s.Do(ActionAddFriend, "2")
	require.NoError(t, err)
	assert.Contains(t, out, "Charlie")

	out, err = s.Do(ActionPostUpdate, "x")
	require.NoError(t, err)
	assert.Equal(t, "📝 Posted: x", out)

	out, err = s.Do(ActionViewFeed, "")
	require.NoError(t, err)
	assert.Equal(t, "=== Community Feed ===\n📢 x", out)

	out, err = s.Do(ActionExit, "")
	require.NoError(t, err)
	assert.Empty(t, out)

	_, err = s.Do(Action(42), "")
	assert.ErrorIs(t, err, ErrUnknownAction)
}
