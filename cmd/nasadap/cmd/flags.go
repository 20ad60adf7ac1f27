// Copyright © 2018 One Concern

package cmd

import (
	"github.com/spf13/cobra"
)

type flagsT struct {
	product struct {
		Mission string
		Name    string
		Version int
	}
	fetch struct {
		From        string
		To          string
		MinLat      float64
		MaxLat      float64
		MinLon      float64
		MaxLon      float64
		Datasets    []string
		SkipOnError bool
		NoCatalog   bool
		NoLedger    bool
		RateLimit   float64
	}
	cache struct {
		Dir    string
		Prefix string
	}
	core struct {
		Endpoint          string
		ConcurrencyFactor int
	}
	root struct {
		credFile string
		logLevel string
		cpuProf  bool
	}
}

var nasadapFlags = flagsT{}

func addMissionFlag(cmd *cobra.Command) string {
	mission := "mission"
	cmd.Flags().StringVar(&nasadapFlags.product.Mission, mission, "gpm", "The mission served by the archive")
	return mission
}

func addProductFlag(cmd *cobra.Command) string {
	product := "product"
	cmd.Flags().StringVar(&nasadapFlags.product.Name, product, "", "The data product of the mission (e.g. 3IMERGHH)")
	return product
}

func addVersionFlag(cmd *cobra.Command) string {
	version := "product-version"
	cmd.Flags().IntVar(&nasadapFlags.product.Version, version, 0, "The product version, if not specified the mission default is used")
	return version
}

func addFromFlag(cmd *cobra.Command) string {
	from := "from"
	cmd.Flags().StringVar(&nasadapFlags.fetch.From, from, "", "The first date of the range, in the format 2000-01-01")
	return from
}

func addToFlag(cmd *cobra.Command) string {
	to := "to"
	cmd.Flags().StringVar(&nasadapFlags.fetch.To, to, "", "The last date of the range (inclusive), in the format 2000-01-01")
	return to
}

func addBoundsFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&nasadapFlags.fetch.MinLat, "min-lat", 0, "The minimum latitude to extract, in WGS84 decimal degrees")
	cmd.Flags().Float64Var(&nasadapFlags.fetch.MaxLat, "max-lat", 0, "The maximum latitude to extract, in WGS84 decimal degrees")
	cmd.Flags().Float64Var(&nasadapFlags.fetch.MinLon, "min-lon", 0, "The minimum longitude to extract, in WGS84 decimal degrees")
	cmd.Flags().Float64Var(&nasadapFlags.fetch.MaxLon, "max-lon", 0, "The maximum longitude to extract, in WGS84 decimal degrees")
}

func addDatasetsFlag(cmd *cobra.Command) string {
	datasets := "datasets"
	cmd.Flags().StringSliceVar(&nasadapFlags.fetch.Datasets, datasets, nil,
		"The dataset variables to extract from each granule. Defaults to every variable of the product")
	return datasets
}

func addSkipOnErrorFlag(cmd *cobra.Command) string {
	skipOnError := "skip-on-error"
	cmd.Flags().BoolVar(&nasadapFlags.fetch.SkipOnError, skipOnError, false,
		"Record failed granules and carry on instead of aborting the fetch on the first failure")
	return skipOnError
}

func addNoCatalogFlag(cmd *cobra.Command) string {
	noCatalog := "no-catalog"
	cmd.Flags().BoolVar(&nasadapFlags.fetch.NoCatalog, noCatalog, false,
		"Plan granule URLs from the archive naming scheme instead of listing the catalog")
	return noCatalog
}

func addNoLedgerFlag(cmd *cobra.Command) string {
	noLedger := "no-ledger"
	cmd.Flags().BoolVar(&nasadapFlags.fetch.NoLedger, noLedger, false,
		"Do not record downloads in the cache ledger")
	return noLedger
}

func addRateLimitFlag(cmd *cobra.Command) string {
	rateLimit := "rate-limit"
	cmd.Flags().Float64Var(&nasadapFlags.fetch.RateLimit, rateLimit, 0,
		"Cap on requests per second against the archive. 0 means no cap")
	return rateLimit
}

func addCacheDirFlag(cmd *cobra.Command) string {
	cacheDir := "cache-dir"
	cmd.Flags().StringVar(&nasadapFlags.cache.Dir, cacheDir, "",
		"The path to the cache dir. Defaults to the current working directory")
	return cacheDir
}

func addCachePrefixFlag(cmd *cobra.Command) string {
	prefix := "prefix"
	cmd.Flags().StringVar(&nasadapFlags.cache.Prefix, prefix, "",
		"Restrict the listing to cache keys starting with this prefix (e.g. GPM_L3/GPM_3IMERGHH.06/2019)")
	return prefix
}

func addEndpointFlag(cmd *cobra.Command) string {
	endpoint := "endpoint"
	cmd.Flags().StringVar(&nasadapFlags.core.Endpoint, endpoint, "",
		"Override the archive endpoint (e.g. a mirror). Defaults to the mission's GES DISC endpoint")
	return endpoint
}

func addConcurrencyFactorFlag(cmd *cobra.Command) string {
	concurrencyFactor := "concurrency-factor"
	cmd.Flags().IntVar(&nasadapFlags.core.ConcurrencyFactor, concurrencyFactor, 0,
		"Tunes the level of concurrency of archive requests")
	return concurrencyFactor
}

func addCredentialFileFlag(cmd *cobra.Command) string {
	credential := "credential"
	cmd.Flags().StringVar(&nasadapFlags.root.credFile, credential, "",
		"The path to the Earthdata credential file")
	return credential
}

func addLogLevelFlag(cmd *cobra.Command) string {
	loglevel := "loglevel"
	cmd.PersistentFlags().StringVar(&nasadapFlags.root.logLevel, loglevel, "info", "The logging level (info, debug or none)")
	return loglevel
}

func addCPUProfFlag(cmd *cobra.Command) string {
	cpuprof := "cpuprof"
	cmd.PersistentFlags().BoolVar(&nasadapFlags.root.cpuProf, cpuprof, false, "Toggle runtime profiling")
	return cpuprof
}

func requireFlags(cmd *cobra.Command, flags ...string) {
	for _, flag := range flags {
		if err := cmd.MarkFlagRequired(flag); err != nil {
			wrapFatalln("mark required flag", err)
		}
	}
}
