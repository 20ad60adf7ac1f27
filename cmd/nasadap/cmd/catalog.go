// Copyright © 2018 One Concern

package cmd

import (
	"context"
	"net/http"
	"time"

	"github.com/oneconcern/nasadap/pkg/auth"
	"github.com/oneconcern/nasadap/pkg/auth/urs"
	"github.com/oneconcern/nasadap/pkg/catalog"
	"github.com/oneconcern/nasadap/pkg/dlogger"
	"github.com/oneconcern/nasadap/pkg/model"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Commands to browse the archive catalog",
	Long: `Commands to browse the THREDDS catalog of the archive, which indexes the
granules published for each product, by year and day of year.`,
}

func init() {
	rootCmd.AddCommand(catalogCmd)
}

func paramsToLogger() *zap.Logger {
	logger, err := dlogger.GetLogger(nasadapFlags.root.logLevel)
	if err != nil {
		wrapFatalln("set log level", err)
	}
	return logger
}

// paramsToClient builds the HTTP client used against the archive.
// Authenticated whenever a credential file is configured: the session is
// checked against the mission's archive root so bad credentials fail before
// any granule is planned.
func paramsToClient(mission model.MissionDescriptor) *http.Client {
	if nasadapFlags.root.credFile == "" {
		return http.DefaultClient
	}
	credential, err := auth.FromFile(nasadapFlags.root.credFile)
	if err != nil {
		wrapFatalln("read credential file", err)
	}
	session, err := urs.New(credential, urs.Logger(paramsToLogger()))
	if err != nil {
		wrapFatalln("create Earthdata session", err)
	}
	if session != nil {
		checkURL := model.GetURLToArchivePath(mission, mission.ProcessLevel)
		if err := session.Check(context.Background(), checkURL); err != nil {
			wrapFatalln("check Earthdata session", err)
		}
		return session.Client()
	}
	return http.DefaultClient
}

func paramsToCatalog(mission model.MissionDescriptor, product model.ProductDescriptor) *catalog.Catalog {
	return catalog.New(mission, product, paramsToVersion(mission),
		catalog.Client(paramsToClient(mission)),
		catalog.ConcurrentListings(nasadapFlags.core.ConcurrencyFactor),
		catalog.Logger(paramsToLogger()),
	)
}

func paramsToDates() (time.Time, time.Time) {
	from, err := time.Parse(model.DateFormat, nasadapFlags.fetch.From)
	if err != nil {
		wrapFatalln("parse from date", err)
	}
	to := from
	if nasadapFlags.fetch.To != "" {
		to, err = time.Parse(model.DateFormat, nasadapFlags.fetch.To)
		if err != nil {
			wrapFatalln("parse to date", err)
		}
	}
	return from, to
}
