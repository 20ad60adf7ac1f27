// Copyright © 2018 One Concern

package cmd

import (
	"context"

	"github.com/spf13/cobra"
)

var catalogList = &cobra.Command{
	Use:   "list",
	Short: "List the granules published for a date range",
	Long: `List the data URLs of the granules published for a date range, in
chronological order. With only --from, lists a single day.`,
	Example: `% nasadap catalog list --product 3IMERGHH --from 2019-06-01 --to 2019-06-02`,
	Run: func(cmd *cobra.Command, args []string) {
		mission, product := paramsToProduct()
		from, to := paramsToDates()
		urls, err := paramsToCatalog(mission, product).ListRange(context.Background(), from, to)
		if err != nil {
			wrapFatalln("list catalog", err)
			return
		}
		for _, url := range urls {
			infoLogger.Println(url)
		}
	},
}

func init() {
	addMissionFlag(catalogList)
	requireFlags(catalogList,
		addProductFlag(catalogList),
		addFromFlag(catalogList),
	)
	addToFlag(catalogList)
	addVersionFlag(catalogList)
	addEndpointFlag(catalogList)
	addConcurrencyFactorFlag(catalogList)
	addCredentialFileFlag(catalogList)
	catalogCmd.AddCommand(catalogList)
}
