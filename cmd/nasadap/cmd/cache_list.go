// Copyright © 2018 One Concern

package cmd

import (
	"context"
	"strings"

	"github.com/docker/go-units"
	"github.com/gosuri/uitable"
	"github.com/oneconcern/nasadap/pkg/storage"
	"github.com/spf13/cobra"
)

var cacheList = &cobra.Command{
	Use:   "list",
	Short: "List the granules in the local cache",
	Long:  `List the granule files in the local cache, with their size`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		store := paramsToCacheStore()
		keys, err := store.KeysPrefix(ctx, nasadapFlags.cache.Prefix)
		if err != nil {
			wrapFatalln("list cache", err)
			return
		}
		sizer, _ := store.(storage.Sizer)
		table := uitable.New()
		table.MaxColWidth = 120
		table.AddRow("GRANULE", "SIZE")
		var total int64
		var count int
		for _, key := range keys {
			// the ledger lives under the cache dir too, only report granules
			if !strings.HasSuffix(key, ".nc4") {
				continue
			}
			count++
			size := int64(-1)
			if sizer != nil {
				if size, err = sizer.Size(ctx, key); err != nil {
					wrapFatalln("stat cache entry", err)
					return
				}
				total += size
			}
			table.AddRow(key, units.HumanSize(float64(size)))
		}
		infoLogger.Println(table)
		infoLogger.Printf("%d granules, %s", count, units.HumanSize(float64(total)))
	},
}

func init() {
	addCacheDirFlag(cacheList)
	addCachePrefixFlag(cacheList)
	cacheCmd.AddCommand(cacheList)
}
