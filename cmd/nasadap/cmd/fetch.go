// Copyright © 2018 One Concern

package cmd

import (
	"context"
	"path/filepath"

	"github.com/docker/go-units"
	"github.com/oneconcern/nasadap/pkg/core"
	"github.com/oneconcern/nasadap/pkg/dap"
	"github.com/oneconcern/nasadap/pkg/storage"
	"github.com/oneconcern/nasadap/pkg/storage/localfs"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Fetch granules into the local cache",
	Long: `Fetch the granules of a product for a date range into the local cache.

Granules are subset on the server side to the requested bounding box and
dataset variables, then cached as netCDF files laid out like the archive.
Granules already in the cache are not transferred again, so an interrupted
fetch may simply be rerun.`,
	Example: `% nasadap fetch --product 3IMERGHHE --from 2019-06-01 --to 2019-06-30 \
    --min-lon -72 --max-lon -35 --min-lat -33 --max-lat 3 \
    --datasets precipitationCal --credential ~/.nasadap/credential.yaml`,
	Run: func(cmd *cobra.Command, args []string) {
		mission, product := paramsToProduct()
		from, to := paramsToDates()

		opts := []core.Option{
			core.Version(paramsToVersion(mission)),
			core.Datasets(nasadapFlags.fetch.Datasets),
			core.CacheStore(paramsToCacheStore()),
			core.HTTPClient(paramsToClient(mission)),
			core.SynthesizeURLs(nasadapFlags.fetch.NoCatalog),
			core.SkipOnError(nasadapFlags.fetch.SkipOnError),
			core.ConcurrentDownloads(nasadapFlags.core.ConcurrencyFactor),
			core.RateLimit(nasadapFlags.fetch.RateLimit),
			core.Logger(paramsToLogger()),
		}
		if bounds := paramsToBounds(); !bounds.IsFull() {
			opts = append(opts, core.Bounds(bounds))
		}
		if !nasadapFlags.fetch.NoLedger {
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
			opts = append(opts, core.WithLedger(ledger))
		}

		sync, err := core.New(mission, product, opts...)
		if err != nil {
			wrapFatalln("create fetch", err)
			return
		}
		result, err := sync.Fetch(context.Background(), from, to)
		if err != nil {
			wrapFatalln("fetch granules", err)
			return
		}
		for _, failure := range result.Failures {
			infoLogger.Println("failed:", failure.URL, failure.Err)
		}
		infoLogger.Printf("planned: %d, downloaded: %d (%s), cached: %d, failed: %d",
			result.Planned, result.Downloaded, units.HumanSize(float64(result.Bytes)),
			result.Skipped, result.Failed)
		if result.Failed > 0 {
			osExit(1)
		}
	},
}

func paramsToBounds() dap.Bounds {
	return dap.Box(
		nasadapFlags.fetch.MinLat, nasadapFlags.fetch.MaxLat,
		nasadapFlags.fetch.MinLon, nasadapFlags.fetch.MaxLon,
	)
}

func paramsToCacheStore() storage.Store {
	dir := nasadapFlags.cache.Dir
	if dir == "" {
		dir = "."
	}
	return localfs.New(afero.NewBasePathFs(afero.NewOsFs(), dir))
}

func paramsToLedgerPath() string {
	dir := nasadapFlags.cache.Dir
	if dir == "" {
		dir = "."
	}
	return filepath.Join(dir, ".nasadap", "ledger")
}

func init() {
	addMissionFlag(fetchCmd)
	requireFlags(fetchCmd,
		addProductFlag(fetchCmd),
		addFromFlag(fetchCmd),
	)
	addToFlag(fetchCmd)
	addVersionFlag(fetchCmd)
	addBoundsFlags(fetchCmd)
	addDatasetsFlag(fetchCmd)
	addSkipOnErrorFlag(fetchCmd)
	addNoCatalogFlag(fetchCmd)
	addNoLedgerFlag(fetchCmd)
	addRateLimitFlag(fetchCmd)
	addCacheDirFlag(fetchCmd)
	addEndpointFlag(fetchCmd)
	addConcurrencyFactorFlag(fetchCmd)
	addCredentialFileFlag(fetchCmd)
	rootCmd.AddCommand(fetchCmd)
}
