package scenario

import (
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"

	"dispatch-lab/errors"
	"dispatch-lab/mediator"
	"dispatch-lab/moderation"
	"dispatch-lab/sink"
)

func runMediator(t *testing.T, input string, moderator *moderation.Moderator) (*sink.BufferSink, *mediator.Router, error) {
	t.Helper()
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	buffer := sink.NewBufferSink()
	router := mediator.NewRouter(log, buffer, moderator, nil)
	s := NewMediatorScenario(log, NewScannerSource(strings.NewReader(input)), router)
	return buffer, router, s.Run(context.Background())
}

func TestMediatorScenario_RelayExcludesSender(t *testing.T) {
	req := require.New(t)
	input := "3\nA\nB\nC\nA hi\n"

	buffer, _, err := runMediator(t, input, nil)

	req.NoError(err)
	req.Equal([]string{"B received: hi", "C received: hi"}, buffer.Lines())
}

func TestMediatorScenario_MultiWordBody(t *testing.T) {
	req := require.New(t)
	input := "2\nA\nB\nA hello there friend\n"

	buffer, _, err := runMediator(t, input, nil)

	req.NoError(err)
	req.Equal([]string{"B received: hello there friend"}, buffer.Lines())
}

func TestMediatorScenario_UnknownSenderIgnored(t *testing.T) {
	req := require.New(t)
	input := "2\nA\nB\nGhost boo\nA hi\n"

	buffer, _, err := runMediator(t, input, nil)

	req.NoError(err)
	req.Equal([]string{"B received: hi"}, buffer.Lines())
}

func TestMediatorScenario_StreamUntilEOF(t *testing.T) {
	req := require.New(t)
	input := "2\nA\nB\nA one\nB two\nA three\n"

	buffer, router, err := runMediator(t, input, nil)

	req.NoError(err)
	req.Equal([]string{
		"B received: one",
		"A received: two",
		"B received: three",
	}, buffer.Lines())

	a, ok := router.Lookup("A")
	req.True(ok)
	req.Len(a.Received(), 1)
	b, ok := router.Lookup("B")
	req.True(ok)
	req.Len(b.Received(), 2)
}

func TestMediatorScenario_ModeratedRelay(t *testing.T) {
	req := require.New(t)
	moderator, err := moderation.NewModerator([]string{"badword"}, '*')
	req.NoError(err)
	input := "2\nA\nB\nA say badword now\n"

	buffer, _, err := runMediator(t, input, &moderator)

	req.NoError(err)
	req.Equal([]string{"B received: say ******* now"}, buffer.Lines())
}

func TestMediatorScenario_SenderOnlyLineIsFatal(t *testing.T) {
	req := require.New(t)
	input := "1\nA\nA\n"

	_, _, err := runMediator(t, input, nil)

	req.ErrorIs(err, errors.ErrMalformedInput)
}
