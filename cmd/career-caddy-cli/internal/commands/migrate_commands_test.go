//go:build integration
// +build integration

package commands

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
)

// A migrate run that cannot reach a usable database must surface the error
// through Execute, so the process exits non-zero and an init container stops
// the rollout.
func TestMigrateCmd_FailureExitsNonZero(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "rest-app.yaml")
	contents := `
database:
  type: oracle
  dsn: career_caddy.db
auth:
  debug: true
`
	require.NoError(t, os.WriteFile(configPath, []byte(contents), 0o600))

	rootCmd := &cobra.Command{Use: "career-caddy-cli"}
	rootCmd.PersistentFlags().StringP("config", "", "", "Path to the YAML configuration file")
	require.NoError(t, InitMigrateCommands(rootCmd))
	rootCmd.SilenceUsage = true
	rootCmd.SilenceErrors = true

	rootCmd.SetArgs([]string{"migrate", "--config", configPath})
	require.Error(t, rootCmd.Execute())
}

func TestMigrateCmd_AppliesSchema(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "rest-app.yaml")
	contents := `
database:
  type: sqlite
  dsn: ` + filepath.Join(dir, "career_caddy.db") + `
auth:
  debug: true
`
	require.NoError(t, os.WriteFile(configPath, []byte(contents), 0o600))

	rootCmd := &cobra.Command{Use: "career-caddy-cli"}
	rootCmd.PersistentFlags().StringP("config", "", "", "Path to the YAML configuration file")
	require.NoError(t, InitMigrateCommands(rootCmd))

	rootCmd.SetArgs([]string{"migrate", "--config", configPath})
	require.NoError(t, rootCmd.Execute())
}
