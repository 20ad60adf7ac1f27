// Copyright © 2018 One Concern

package cmd

import (
	"context"

	"github.com/oneconcern/nasadap/pkg/model"
	"github.com/spf13/cobra"
)

var catalogRange = &cobra.Command{
	Use:   "range",
	Short: "Show the date range covered by a product",
	Long:  `Show the first and last dates for which the archive publishes granules of a product`,
	Example: `% nasadap catalog range --product 3IMERGHHE
2000-06-01 2026-08-29`,
	Run: func(cmd *cobra.Command, args []string) {
		mission, product := paramsToProduct()
		from, to, err := paramsToCatalog(mission, product).Range(context.Background())
		if err != nil {
			wrapFatalln("resolve catalog range", err)
			return
		}
		infoLogger.Println(from.Format(model.DateFormat), to.Format(model.DateFormat))
	},
}

func init() {
	addMissionFlag(catalogRange)
	requireFlags(catalogRange, addProductFlag(catalogRange))
	addVersionFlag(catalogRange)
	addEndpointFlag(catalogRange)
	addCredentialFileFlag(catalogRange)
	catalogCmd.AddCommand(catalogRange)
}
