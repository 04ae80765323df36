package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/piijt/data-structures/linkedlist"
)

func runOutput(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	err := run(args, &out)
	return out.String(), err
}

func TestRunBuildsList(t *testing.T) {
	assert := assert.New(t)

	out, err := runOutput(t, "1", "2", "3")
	assert.NoError(err)
	assert.Equal("[1, 2, 3]\n", out)

	out, err = runOutput(t)
	assert.NoError(err)
	assert.Equal("[]\n", out)
}

func TestRunOperations(t *testing.T) {
	assert := assert.New(t)
	tests := []struct {
		args     []string
		expected string
	}{
		{[]string{"--dedupe", "1", "2", "3", "4", "5", "2"}, "[1, 2, 3, 4, 5]\n"},
		{[]string{"-r", "6", "10", "12", "3"}, "[3, 12, 10, 6]\n"},
		{[]string{"--prepend", "0", "1", "2"}, "[0, 1, 2]\n"},
		{[]string{"--insert", "1=9", "1", "2"}, "[1, 9, 2]\n"},
		{[]string{"--delete", `["foo","bar"]`, "1", `["foo","bar"]`, "2"}, "[1, 2]\n"},
		{[]string{"--concat", `["#1","#2"]`, "1"}, "[1, #1, #2]\n"},
		{[]string{"--rotate", "1", "1", "2", "3"}, "[2, 3, 1]\n"},
		{[]string{"--slice", "1:3", "1", "2", "3", "4"}, "[2, 3]\n"},
		{[]string{"--json", "-d", `{"foo":"bar","bar":"foo"}`, `{"bar":"foo","foo":"bar"}`, "6"}, `[{"bar":"foo","foo":"bar"},6]` + "\n"},
		{[]string{"--sum", "1", "2", `"x"`, "3.5"}, "[1, 2, x, 3.5]\nsum: 6.5\n"},
	}

	for _, test := range tests {
		out, err := runOutput(t, test.args...)
		assert.NoError(err, "args %v", test.args)
		assert.Equal(test.expected, out, "args %v", test.args)
	}
}

func TestRunErrors(t *testing.T) {
	assert := assert.New(t)

	_, err := runOutput(t, "--insert", "5=1", "1")
	assert.ErrorIs(err, linkedlist.ErrOutOfBounds)

	_, err = runOutput(t, "--slice", "0:9", "1")
	assert.ErrorIs(err, linkedlist.ErrOutOfBounds)

	_, err = runOutput(t, "--slice", "nope", "1")
	assert.ErrorContains(err, "invalid range")

	_, err = runOutput(t, "--delete", "7", "1")
	assert.ErrorContains(err, "not in list")

	_, err = runOutput(t, "{not json")
	assert.ErrorContains(err, "cannot parse")

	_, err = runOutput(t, "--no-such-flag")
	assert.Error(err)
}

func TestRunHelp(t *testing.T) {
	out, err := runOutput(t, "--help")
	assert.NoError(t, err)
	assert.Contains(t, out, "--dedupe")
}
