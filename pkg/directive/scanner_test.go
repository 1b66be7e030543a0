package directive

import (
	"strings"
	"testing"

	"github.com/arthur-debert/lollywiz/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScannerFind(t *testing.T) {
	text := "start.[##if cond1##]val1[##else##]val2[##endif##].end"
	s := NewScanner("test")

	m, ok, err := s.Find(text, "if", 0, -1)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, If, m.Kind)
	assert.Equal(t, []string{"cond1"}, m.Args)
	assert.Equal(t, 6, m.Start)
	assert.Equal(t, 20, m.End)

	m, ok, err = s.Find(text, "endif", m.End, -1)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, Endif, m.Kind)
	assert.Equal(t, len(text)-len(".end"), m.End)

	// else lies past the limit
	_, ok, err = s.Find(text, "else", 0, 25)
	require.NoError(t, err)
	assert.False(t, ok)

	_, ok, err = s.Find("no directives here", "if", 0, -1)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestScannerAbsorbsTrailingNewline(t *testing.T) {
	text := "a\n[##if x##]\nbody\n[##endif##]\r\nz"
	s := NewScanner("test")

	m, ok, err := s.Find(text, "if", 0, -1)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "body", text[m.End:m.End+4])

	m, ok, err = s.Find(text, "endif", 0, -1)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "z", text[m.End:])

	s.AbsorbNewlines = false
	m, _, _ = s.Find(text, "endif", 0, -1)
	assert.Equal(t, "\r\nz", text[m.End:])
}

func TestScannerErrors(t *testing.T) {
	s := NewScanner("broken.txt")

	_, _, err := s.Find("x [##if a", "if", 0, -1)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrSyntax))
	assert.Contains(t, err.Error(), "broken.txt")

	_, _, err = s.Find("x [##if [##a##]", "if", 0, -1)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrSyntax))

	_, _, err = s.Find(`x [##if "a##]`, "if", 0, -1)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrSyntax))
}

func TestScannerIterationCap(t *testing.T) {
	text := strings.Repeat("[##noise##]", MaxIterations+1) + "[##if a##]"
	_, _, err := NewScanner("noisy").Find(text, "if", 0, -1)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrProcedural))
}

func TestNoConditionals(t *testing.T) {
	s := NewScanner("test")

	ok, err := s.NoConditionals("plain [##other##] text", 0, -1)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = s.NoConditionals("a [##elif b##] c", 0, -1)
	require.NoError(t, err)
	assert.False(t, ok)

	m, found, err := s.FindConditional("[##x##] [##endif##]", 0, -1)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, Endif, m.Kind)
}
