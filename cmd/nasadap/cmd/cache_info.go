// Copyright © 2018 One Concern

package cmd

import (
	"time"

	"github.com/docker/go-units"
	"github.com/gosuri/uitable"
	"github.com/oneconcern/nasadap/pkg/core"
	"github.com/spf13/cobra"
)

var cacheInfo = &cobra.Command{
	Use:   "info",
	Short: "Report the downloads recorded in the cache ledger",
	Long: `Report the downloads recorded in the cache ledger: the original archive URL,
the transferred size, the number of attempts and the download time of each
cached granule.`,
	Run: func(cmd *cobra.Command, args []string) {
		ledger, err := core.NewBadgerLedger(paramsToLedgerPath())
		if err != nil {
			wrapFatalln("open cache ledger", err)
			return
		}
		defer func() {
			if err := ledger.Close(); err != nil {
				infoLogger.Println("close cache ledger:", err)
			}
		}()

		table := uitable.New()
		table.MaxColWidth = 120
		table.AddRow("GRANULE", "SIZE", "ATTEMPTS", "DOWNLOADED", "URL")
		var count int
		var total int64
		err = ledger.Apply(func(record core.Record) error {
			table.AddRow(record.CacheKey,
				units.HumanSize(float64(record.Size)),
				record.Attempts,
				record.Downloaded.Format(time.RFC3339),
				record.URL,
			)
			count++
			total += record.Size
			return nil
		})
		if err != nil {
			wrapFatalln("read cache ledger", err)
			return
		}
		infoLogger.Println(table)
		infoLogger.Printf("%d downloads recorded, %s transferred", count, units.HumanSize(float64(total)))
	},
}

func init() {
	addCacheDirFlag(cacheInfo)
	cacheCmd.AddCommand(cacheInfo)
}
