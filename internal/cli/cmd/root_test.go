package cmd

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DylansGit/ClipSage/internal/cli"
)

func TestExecute_ClosesAppOnError(t *testing.T) {
	prev := app
	t.Cleanup(func() {
		app = prev
		rootCmd.SetArgs(nil)
		rootCmd.SetErr(nil)
	})

	app = &cli.App{}
	rootCmd.SetArgs([]string{"no-such-command"})
	rootCmd.SetErr(io.Discard)

	require.Error(t, execute())
	assert.Nil(t, app)
}

func TestCloseApp_Idempotent(t *testing.T) {
	prev := app
	t.Cleanup(func() { app = prev })

	app = &cli.App{}
	closeApp()
	assert.Nil(t, app)
	assert.NotPanics(t, closeApp)
}
