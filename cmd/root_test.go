package cmd

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// executeCommand runs the root command with the given args and captures its
// output. HOME is pointed at a temp dir so user config never leaks in.
func executeCommand(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()

	t.Setenv("HOME", t.TempDir())

	resetCommandFlags(rootCmd)

	outBuf := new(bytes.Buffer)
	errBuf := new(bytes.Buffer)
	rootCmd.SetOut(outBuf)
	rootCmd.SetErr(errBuf)
	if args == nil {
		args = []string{}
	}
	rootCmd.SetArgs(args)

	err = rootCmd.Execute()
	return outBuf.String(), errBuf.String(), err
}

// resetCommandFlags undoes flag state left over from a previous execution.
func resetCommandFlags(cmd *cobra.Command) {
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if f.Changed {
			_ = f.Value.Set(f.DefValue)
			f.Changed = false
		}
	})
	for _, sub := range cmd.Commands() {
		resetCommandFlags(sub)
	}
}

func TestRootGreeting(t *testing.T) {
	t.Run("no arguments greets the world", func(t *testing.T) {
		stdout, _, err := executeCommand(t)
		require.NoError(t, err)
		assert.Equal(t, "Hello, World!\n", stdout)
	})

	t.Run("name flag", func(t *testing.T) {
		stdout, _, err := executeCommand(t, "--name", "Alice")
		require.NoError(t, err)
		assert.Equal(t, "Hello, Alice!\n", stdout)
	})

	t.Run("explicit empty name", func(t *testing.T) {
		stdout, _, err := executeCommand(t, "--name", "")
		require.NoError(t, err)
		assert.Equal(t, "Hello, !\n", stdout)
	})

	t.Run("environment variable default", func(t *testing.T) {
		t.Setenv("GOCLI_NAME", "Carol")
		stdout, _, err := executeCommand(t)
		require.NoError(t, err)
		assert.Equal(t, "Hello, Carol!\n", stdout)
	})

	t.Run("flag beats environment variable", func(t *testing.T) {
		t.Setenv("GOCLI_NAME", "Carol")
		stdout, _, err := executeCommand(t, "--name", "Alice")
		require.NoError(t, err)
		assert.Equal(t, "Hello, Alice!\n", stdout)
	})

	t.Run("positional arguments are rejected", func(t *testing.T) {
		_, _, err := executeCommand(t, "unexpected")
		assert.Error(t, err)
	})
}

func TestGreetCommand(t *testing.T) {
	t.Run("default name", func(t *testing.T) {
		stdout, _, err := executeCommand(t, "greet")
		require.NoError(t, err)
		assert.Equal(t, "Hello, World!\n", stdout)
	})

	t.Run("short name flag", func(t *testing.T) {
		stdout, _, err := executeCommand(t, "greet", "-n", "Bob")
		require.NoError(t, err)
		assert.Equal(t, "Hello, Bob!\n", stdout)
	})

	t.Run("long name flag", func(t *testing.T) {
		stdout, _, err := executeCommand(t, "greet", "--name", "Ada Lovelace")
		require.NoError(t, err)
		assert.Equal(t, "Hello, Ada Lovelace!\n", stdout)
	})
}
