// Copyright © 2018 One Concern

package cmd

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Commands to manage the local nasadap configuration",
	Long:  "Commands to manage the nasadap configuration file used to set defaults for the CLI",
}

var configGenerateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a configuration file",
	Long: `Generate a nasadap configuration file from the values passed on the command line.

The file is written to $HOME/.nasadap/nasadap.yaml unless a target directory is given.
Values omitted here keep their built-in defaults.`,
	Run: func(cmd *cobra.Command, args []string) {
		generated := CLIConfig{
			Credential:  nasadapFlags.root.credFile,
			CacheDir:    nasadapFlags.cache.Dir,
			Concurrency: nasadapFlags.core.ConcurrencyFactor,
			Endpoint:    nasadapFlags.core.Endpoint,
		}
		dir := configTargetDir
		if dir == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				wrapFatalln("resolve home directory", err)
				return
			}
			dir = filepath.Join(home, ".nasadap")
		}
		if err := generated.write(dir); err != nil {
			wrapFatalln("generate config", err)
			return
		}
	},
}

var configTargetDir string

func init() {
	addCredentialFileFlag(configGenerateCmd)
	addCacheDirFlag(configGenerateCmd)
	addConcurrencyFactorFlag(configGenerateCmd)
	addEndpointFlag(configGenerateCmd)
	configGenerateCmd.Flags().StringVar(&configTargetDir, "target-dir", "", "The directory to write the configuration file to")

	configCmd.AddCommand(configGenerateCmd)
	rootCmd.AddCommand(configCmd)
}
