package main

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommandLayout(t *testing.T) {
	cmd := NewRootCommand()

	var names []string
	for _, c := range cmd.Commands() {
		names = append(names, c.Name())
	}
	assert.ElementsMatch(t, []string{"migrate", "sweep", "release-lock", "retry-job"}, names)

	timeout, err := cmd.PersistentFlags().GetDuration("timeout")
	require.NoError(t, err)
	assert.Equal(t, time.Minute, timeout)
}

func TestArgumentsAreCheckedBeforeConnecting(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"release-lock needs a user", []string{"release-lock"}},
		{"retry-job takes one id", []string{"retry-job", "a", "b"}},
		{"migrate takes none", []string{"migrate", "extra"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := NewRootCommand()
			cmd.SetArgs(tt.args)
			cmd.SetOut(&bytes.Buffer{})
			cmd.SetErr(&bytes.Buffer{})
			assert.Error(t, cmd.Execute())
		})
	}
}

func TestReport(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, report(&buf, &RootOptions{}, nil, "done"))
	assert.Equal(t, "done\n", buf.String())

	buf.Reset()
	require.NoError(t, report(&buf, &RootOptions{JSON: true}, map[string]int{"entries": 3}, "ignored"))
	assert.JSONEq(t, `{"entries":3}`, buf.String())
}
