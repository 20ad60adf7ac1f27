// Copyright © 2018 One Concern

package cmd

import (
	"github.com/spf13/cobra"
	yaml "gopkg.in/yaml.v2"
)

var productGet = &cobra.Command{
	Use:   "get",
	Short: "Get a data product descriptor",
	Long:  `Get the full descriptor of a data product, as yaml`,
	Example: `% nasadap product get --mission gpm --product 3IMERGHH
name: 3IMERGHH
filePrefix: 3B-HHR.MS.MRG.3IMERG
...`,
	Run: func(cmd *cobra.Command, args []string) {
		_, product := paramsToProduct()
		buf, err := yaml.Marshal(product)
		if err != nil {
			wrapFatalln("serialize product descriptor", err)
			return
		}
		infoLogger.Print(string(buf))
	},
}

func init() {
	addMissionFlag(productGet)
	requireFlags(productGet, addProductFlag(productGet))
	addEndpointFlag(productGet)
	productCmd.AddCommand(productGet)
}
