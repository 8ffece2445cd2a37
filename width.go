package vtscreen

import (
	"unicode/utf8"

	"github.com/rivo/uniseg"
	"github.com/unilibs/uniwidth"
)

// firstCluster splits off the first extended grapheme cluster of s and
// returns it, the remainder, and the cluster's display width in terminal
// columns (0, 1 or 2).
func firstCluster(s string) (cluster, rest string, width int) {
	cluster, rest, width, _ = uniseg.FirstGraphemeClusterInString(s, -1)
	if utf8.RuneCountInString(cluster) == 1 {
		r, _ := utf8.DecodeRuneInString(cluster)
		return cluster, rest, uniwidth.RuneWidth(r)
	}
	return cluster, rest, width
}

// clusterWidth returns the display width of a single cluster.
// The empty cluster is the wide-character continuation marker and has width 0.
func clusterWidth(cluster string) int {
	if cluster == "" {
		return 0
	}
	_, _, w := firstCluster(cluster)
	return w
}

// StringWidth returns the total display width of a string.
func StringWidth(s string) int {
	total := 0
	for s != "" {
		var w int
		_, s, w = firstCluster(s)
		total += w
	}
	return total
}
