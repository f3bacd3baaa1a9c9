// Package browser fetches the JavaScript-rendered listing page.
//
// The listing is built client-side, so a plain HTTP GET returns an empty
// shell. The fetcher drives headless Chrome, waits a fixed settle delay for
// the page scripts to run, and hands the rendered DOM to the parser.
package browser
