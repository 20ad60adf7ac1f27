// Copyright © 2018 One Concern

package cmd

import (
	"strings"

	"github.com/gosuri/uitable"
	"github.com/oneconcern/nasadap/pkg/model"
	"github.com/spf13/cobra"
)

var productList = &cobra.Command{
	Use:   "list",
	Short: "List data products",
	Long:  `List the data products of a mission, with their file prefix and dataset variables`,
	Example: `% nasadap product list --mission gpm
MISSION  PRODUCT    VERSION  FILE PREFIX`,
	Run: func(cmd *cobra.Command, args []string) {
		mission := paramsToMission()
		table := uitable.New()
		table.MaxColWidth = 80
		table.Wrap = true
		table.AddRow("MISSION", "PRODUCT", "VERSION", "FILE PREFIX", "DATASETS")
		for _, product := range mission.Products {
			table.AddRow(mission.Name, product.Name, paramsToVersion(mission),
				product.FilePrefix, strings.Join(product.Datasets, ","))
		}
		infoLogger.Println(table)
	},
}

var productMissions = &cobra.Command{
	Use:   "missions",
	Short: "List the supported missions",
	Run: func(cmd *cobra.Command, args []string) {
		for _, name := range model.Missions() {
			infoLogger.Println(name)
		}
	},
}

func init() {
	addMissionFlag(productList)
	addVersionFlag(productList)
	addEndpointFlag(productList)
	productCmd.AddCommand(productList)
	productCmd.AddCommand(productMissions)
}
