// Package event defines the running-event record produced by the parser.
//
// An Event is a plain value record: the parser constructs it once and the
// validator and sinks only read it. Duplicate detection is keyed on the
// (name, date) pair via Event.Key.
package event
