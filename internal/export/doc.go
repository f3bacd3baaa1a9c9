// Package export writes extracted events to local JSON and CSV files.
package export
