// Package model describes the base objects manipulated by nasadap.
//
// The package exposes a model for the GES DISC archive layout.
//
// The object model for nasadap is composed of:
//
//	Missions:
//	  A satellite mission served by the GES DISC OPeNDAP endpoint (e.g. gpm).
//	  A mission determines the base URL, the processing level and the default
//	  product version.
//
//	Products:
//	  A data product published for a mission (e.g. 3IMERGHH, the half-hourly
//	  IMERG merged precipitation analysis). A product determines the archive
//	  directory layout and the granule file naming scheme, as well as the set
//	  of dataset variables a granule carries.
//
//	Granules:
//	  A single archive file: one product at one half-hour time slot of one
//	  UTC day. Granules are the unit of download and of local caching.
//
// Archive paths and local cache keys are derived from these objects by the
// path builders in this package, so that every other package agrees on where
// a granule lives remotely and locally.
package model
