// Package scrape fetches specification documents and extracts dataset
// entries from them. Each standards organization family gets its own
// Extractor; a Resolver picks the extractor from the URL's host, and Resolve
// drives the fetch/extract loop, following "better URL" signals until an
// extractor settles on a canonical location.
package scrape
