package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReadMessagesFromFlags(t *testing.T) {
	inputs, inputFile = []uint{3, 1, 4}, ""
	t.Cleanup(func() { inputs = nil })

	messages, err := readMessages()
	require.NoError(t, err)
	require.Equal(t, [][]uint64{{3, 1, 4}}, messages)

	inputs = nil
	_, err = readMessages()
	require.Error(t, err)
}

func TestReadMessagesFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "messages.txt")
	require.NoError(t, os.WriteFile(path, []byte("1,2,3\n\n 7 , 8\n2147483646\n"), 0644))

	inputFile = path
	t.Cleanup(func() { inputFile = "" })

	messages, err := readMessages()
	require.NoError(t, err)
	require.Equal(t, [][]uint64{{1, 2, 3}, {7, 8}, {2147483646}}, messages)

	require.NoError(t, os.WriteFile(path, []byte("1,2\n3,x\n"), 0644))
	_, err = readMessages()
	require.ErrorContains(t, err, ":2:")

	require.NoError(t, os.WriteFile(path, []byte("\n  \n\n"), 0644))
	_, err = readMessages()
	require.ErrorContains(t, err, "no message found")
}
