// Copyright © 2018 One Concern

package cmd

import (
	"github.com/oneconcern/nasadap/pkg/model"
	"github.com/spf13/cobra"
)

var productCmd = &cobra.Command{
	Use:   "product",
	Short: "Commands to inspect the data products served by the archive",
	Long: `Commands to inspect the data products served by the archive.

A product groups the granules of one satellite mission algorithm, e.g. the
half-hourly IMERG runs of the GPM mission (3IMERGHHE, 3IMERGHHL, 3IMERGHH).`,
}

func init() {
	rootCmd.AddCommand(productCmd)
}

// paramsToMission resolves the mission selected by flags.
func paramsToMission() model.MissionDescriptor {
	mission, err := model.GetMission(nasadapFlags.product.Mission)
	if err != nil {
		wrapFatalln("resolve mission", err)
	}
	if nasadapFlags.core.Endpoint != "" {
		mission.BaseURL = nasadapFlags.core.Endpoint
	}
	return mission
}

// paramsToProduct resolves the mission and product selected by flags.
func paramsToProduct() (model.MissionDescriptor, model.ProductDescriptor) {
	mission := paramsToMission()
	product, err := mission.GetProduct(nasadapFlags.product.Name)
	if err != nil {
		wrapFatalln("resolve product", err)
	}
	return mission, product
}

func paramsToVersion(mission model.MissionDescriptor) int {
	if nasadapFlags.product.Version != 0 {
		return nasadapFlags.product.Version
	}
	return mission.Version
}
