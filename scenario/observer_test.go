package scenario

import (
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"

	"dispatch-lab/broadcast"
	"dispatch-lab/errors"
	"dispatch-lab/sink"
)

func runObserver(t *testing.T, input string) (*sink.BufferSink, error) {
	t.Helper()
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	buffer := sink.NewBufferSink()
	notifier := broadcast.NewNotifier(log, nil)
	s := NewObserverScenario(log, NewScannerSource(strings.NewReader(input)), buffer, notifier)
	return buffer, s.Run(context.Background())
}

func TestObserverScenario_TwoStudentsThreeAdvances(t *testing.T) {
	req := require.New(t)
	input := "2\nAmy\nBob\n3\n"

	buffer, err := runObserver(t, input)

	req.NoError(err)
	req.Equal([]string{
		"Amy 1", "Bob 1",
		"Amy 2", "Bob 2",
		"Amy 3", "Bob 3",
	}, buffer.Lines())
}

func TestObserverScenario_ZeroParticipants(t *testing.T) {
	req := require.New(t)

	buffer, err := runObserver(t, "0\n5\n")

	req.NoError(err)
	req.Empty(buffer.Lines())
}

func TestObserverScenario_WrapsPast24Advances(t *testing.T) {
	req := require.New(t)

	buffer, err := runObserver(t, "1\nAmy\n25\n")

	req.NoError(err)
	lines := buffer.Lines()
	req.Len(lines, 25)
	req.Equal("Amy 23", lines[22])
	req.Equal("Amy 0", lines[23])
	req.Equal("Amy 1", lines[24])
}

func TestObserverScenario_MissingCountFails(t *testing.T) {
	req := require.New(t)

	_, err := runObserver(t, "not-a-number\n")

	req.ErrorIs(err, errors.ErrMalformedInput)
}

func TestObserverScenario_DuplicateNameFails(t *testing.T) {
	req := require.New(t)

	_, err := runObserver(t, "2\nAmy\nAmy\n1\n")

	req.ErrorIs(err, errors.ErrDuplicateParticipant)
}
