package moderation

import (
	"testing"

	"github.com/stretchr/testify/require"

	"dispatch-lab/errors"
)

func TestModerator_Censor_ReplacesForbiddenWord(t *testing.T) {
	req := require.New(t)
	moderator, err := NewModerator([]string{"badword"}, '*')
	req.NoError(err)

	censored, found := moderator.Censor("this badword stays hidden")

	req.Equal("this ******* stays hidden", censored)
	req.Equal([]string{"badword"}, found)
}

func TestModerator_Censor_IsCaseInsensitive(t *testing.T) {
	req := require.New(t)
	moderator, err := NewModerator([]string{"badword"}, '*')
	req.NoError(err)

	censored, found := moderator.Censor("BadWord!")

	req.Equal("*******!", censored)
	req.Len(found, 1)
}

func TestModerator_Censor_MatchesThroughSeparators(t *testing.T) {
	req := require.New(t)
	moderator, err := NewModerator([]string{"badword"}, '*')
	req.NoError(err)

	// Separators inside the word do not defeat the automaton
	censored, found := moderator.Censor("b a d w o r d")

	req.Equal("* * * * * * *", censored)
	req.Len(found, 1)
}

func TestModerator_Censor_CleanTextUntouched(t *testing.T) {
	req := require.New(t)
	moderator, err := NewModerator([]string{"badword"}, '*')
	req.NoError(err)

	censored, found := moderator.Censor("hello there")

	req.Equal("hello there", censored)
	req.Empty(found)
}

func TestNewModerator_EmptyWordListRejected(t *testing.T) {
	req := require.New(t)

	_, err := NewModerator(nil, '*')

	req.ErrorIs(err, errors.ErrEmptyWords)
}
