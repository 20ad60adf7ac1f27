// Copyright © 2018 One Concern

package cmd

import (
	"github.com/spf13/cobra"
)

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Commands to inspect the local granule cache",
	Long: `Commands to inspect the local granule cache.

The cache mirrors the archive layout: one netCDF file per granule, under
mission/product/version/year/day-of-year directories. A ledger records the
downloads performed, with their original URL and transferred size.`,
}

func init() {
	rootCmd.AddCommand(cacheCmd)
}
