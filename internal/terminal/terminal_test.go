package terminal

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"merry-go-round/internal/commands"
	"merry-go-round/internal/logger"
)

func TestSubmit(t *testing.T) {
	log := logger.NewWithWriter(&bytes.Buffer{}, "info")
	reg := commands.NewRegistry()
	ran := 0
	reg.Register("ping", "", nil, func() error { ran++; return nil })
	reg.Register("fail", "", nil, func() error { return errors.New("boom") })
	term := New(log, reg)
	assert.False(t, term.IsOpen())

	term.Submit("cmd ping")
	assert.Equal(t, 1, ran)

	term.Submit("cmd fail")
	term.Submit("hello")
	term.Submit("")

	lines := log.Lines()
	require.Len(t, lines, 5)
	assert.Contains(t, lines[0], "cmd ping")
	assert.Contains(t, lines[2], "boom")
	assert.Contains(t, lines[4], "cmd help")
}
