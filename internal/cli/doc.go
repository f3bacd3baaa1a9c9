// Package cli implements the command-line interface for runners-list-scraper.
//
// The cli package provides the Cobra-based CLI that coordinates the browser,
// parser, validate, export, and api packages: fetch (or read) the listing
// page, extract and validate events, export them locally, print the
// validation report (text/JSON), and sync to the backend API when configured.
package cli
