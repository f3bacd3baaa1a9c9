// Package validate checks extracted events and builds the dataset report.
//
// Per-record validation enforces the required fields (name, date,
// registration URL); the dataset report adds extraction rates, the date
// range, duplicate detection on the (name, date) key, and state/distance
// frequency distributions. Date validity is relative to an injectable
// current year because events are required to be upcoming.
package validate
