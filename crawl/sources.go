package crawl

import (
	"sort"

	"github.com/gaurav-prasanna/specpipe/core/resolve"
)

// SourceURL returns the canonical URL for a source document filename.
func SourceURL(filename string) string {
	return resolve.SourceBaseURL + filename
}

// RoutedSources returns the filenames of every source document that maps to
// a non-empty internal module, sorted for a deterministic fetch order.
// Recognized-but-unroutable entries (index pages and the like) are skipped:
// the site never republishes them.
func RoutedSources(tables *resolve.Tables) []string {
	var files []string
	for file, module := range tables.Routes {
		if module != "" {
			files = append(files, file)
		}
	}
	sort.Strings(files)
	return files
}
