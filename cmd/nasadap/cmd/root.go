// Copyright © 2018 One Concern

package cmd

import (
	"fmt"
	"log"
	"os"
	"runtime/pprof"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "nasadap",
	Short: "Nasadap retrieves NASA precipitation data",
	Long: `Nasadap retrieves GPM IMERG precipitation granules from the NASA GES DISC
OPeNDAP archive into a local cache directory.

Granules are subset on the server side (bounding box and dataset variables),
downloaded concurrently, and cached as netCDF files mirroring the archive
layout. Re-running an unchanged fetch transfers nothing.

An Earthdata Login account is required: https://urs.earthdata.nasa.gov.
`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if nasadapFlags.root.cpuProf {
			f, err := os.Create("cpu.prof")
			if err != nil {
				log.Fatal(err)
			}
			_ = pprof.StartCPUProfile(f)
		}
	},
	// upstream api note:  *PostRun functions aren't called in case of a panic() in Run
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if nasadapFlags.root.cpuProf {
			pprof.StopCPUProfile()
		}
	},
}

var config *CLIConfig

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		osExit(1)
	}
}

func init() {
	log.SetFlags(0)
	cobra.OnInitialize(initConfig)

	addLogLevelFlag(rootCmd)
	addCPUProfFlag(rootCmd)
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	viper.SetDefault("cachedir", ".")
	viper.SetDefault("concurrency", 30)
	viper.SetDefault("loglevel", "info")
	if os.Getenv("NASADAP_CONFIG") != "" {
		// Use config file from the flag.
		viper.SetConfigFile(os.Getenv("NASADAP_CONFIG"))
	} else {
		viper.AddConfigPath(".")
		viper.AddConfigPath("$HOME/.nasadap")
		viper.AddConfigPath("/etc/nasadap")
		viper.SetConfigName("nasadap")
	}

	viper.AutomaticEnv() // read in environment variables that match
	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		log.Println("Using config file:", viper.ConfigFileUsed())
	}
	var err error
	config, err = newConfig()
	if err != nil {
		logFatalln(err)
	}
	config.setNasadapParams(&nasadapFlags)
}
