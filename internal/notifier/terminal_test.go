package notifier

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTerminalNotifier_Plain(t *testing.T) {
	var buf bytes.Buffer
	n, err := NewTerminalNotifier(&buf, false, 0)
	require.NoError(t, err)

	require.NoError(t, n.Send("## Title\n"))
	assert.Equal(t, "## Title\n", buf.String())
}

func TestTerminalNotifier_Styled(t *testing.T) {
	var buf bytes.Buffer
	n, err := NewTerminalNotifier(&buf, true, 60)
	require.NoError(t, err)

	require.NoError(t, n.Send("## Title\n\nSome **bold** text\n"))
	assert.Contains(t, buf.String(), "Title")
	assert.Contains(t, buf.String(), "bold")
	assert.NotEqual(t, "## Title\n\nSome **bold** text\n", buf.String())
}
