// Package cli holds the salesreport command tree.
//
// Every command loads the configuration, applies the persistent flags on
// top of it and hands the work to the operations manager:
//
//	salesreport run                   full pipeline
//	salesreport clean                 load, clean and export the data
//	salesreport bench                 sort and search timing table
//	salesreport search --value 42.5   timed lookup in the amount column
package cli
