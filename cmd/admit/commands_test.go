package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/admit/pkg/errors"
)

func TestCheckCmdAllows(t *testing.T) {
	cmd := newCheckCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"web01", "web02", "--whitelist", "web*"})

	err := cmd.Execute()
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "ALLOW")
	assert.Contains(t, lines[0], "web01")
	assert.Contains(t, lines[1], "ALLOW")
}

func TestCheckCmdDenies(t *testing.T) {
	cmd := newCheckCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"web01", "--blacklist", "web*"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrDenied))
	assert.Contains(t, out.String(), "DENY")
}

func TestCheckCmdBlacklistWins(t *testing.T) {
	cmd := newCheckCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"web01", "--whitelist", "web*", "--blacklist", "web01"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, out.String(), "DENY")
}

func TestCheckCmdUnknownPolicy(t *testing.T) {
	cmd := newCheckCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"web01", "--policy", "no-such-policy"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrPolicyNotFound))
}

func TestFilterCmd(t *testing.T) {
	cmd := newFilterCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetIn(strings.NewReader("/etc/hosts\n/etc/debian_chroot\n/var/log/syslog\n"))
	cmd.SetArgs([]string{"--include", "/etc/*", "--exclude", "E@chroot"})

	err := cmd.Execute()
	require.NoError(t, err)
	assert.Equal(t, "/etc/hosts\n", out.String())
}

func TestFilterCmdNoPatternsPassesEverything(t *testing.T) {
	cmd := newFilterCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetIn(strings.NewReader("a\nb\n"))
	cmd.SetArgs([]string{})

	err := cmd.Execute()
	require.NoError(t, err)
	assert.Equal(t, "a\nb\n", out.String())
}

func TestDocsCmd(t *testing.T) {
	cmd := newDocsCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"patterns"})

	err := cmd.Execute()
	require.NoError(t, err)
	assert.Contains(t, out.String(), "Pattern Syntax")
}

func TestGenConfigCmd(t *testing.T) {
	cmd := newGenConfigCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{})

	err := cmd.Execute()
	require.NoError(t, err)
	assert.Contains(t, out.String(), "[policies")
	assert.Contains(t, out.String(), "whitelist")
}

func TestVerdictLine(t *testing.T) {
	// Tests never run on a tty, so verdicts must be plain text.
	assert.Equal(t, "ALLOW web01", verdictLine("web01", true))
	assert.Equal(t, "DENY  db01", verdictLine("db01", false))
}
