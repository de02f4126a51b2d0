package wordlist_test

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/boggle/wordlist"
)

func TestRead(t *testing.T) {
	src := "Apple\n  app \n\napplication\r\napple\n\t\nx-ray\n"

	d, err := wordlist.Read(strings.NewReader(src))
	require.NoError(t, err)

	assert.Equal(t, []string{"app", "apple", "application", "x-ray"}, slices.Collect(d.Words()))
	assert.True(t, d.Contains("APP"))
	assert.False(t, d.Contains("appl"))
}

func TestRead_Empty(t *testing.T) {
	d, err := wordlist.Read(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, 0, d.Len())
}

func TestRead_ReaderError(t *testing.T) {
	boom := errors.New("boom")

	d, err := wordlist.Read(iotest.ErrReader(boom))
	assert.Nil(t, d)
	assert.ErrorIs(t, err, boom)
}

func TestRead_LineTooLong(t *testing.T) {
	long := strings.Repeat("a", 2<<20)

	_, err := wordlist.Read(strings.NewReader(long))
	assert.Error(t, err)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.txt")
	require.NoError(t, os.WriteFile(path, []byte("bat\ntab\n"), 0o600))

	d, err := wordlist.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 2, d.Len())
	assert.True(t, d.Contains("bat"))
}

func TestLoad_Missing(t *testing.T) {
	_, err := wordlist.Load(filepath.Join(t.TempDir(), "nope.txt"))
	assert.ErrorIs(t, err, fs.ErrNotExist)
}
