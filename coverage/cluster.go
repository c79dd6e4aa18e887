package coverage

import "github.com/katalvlaran/sfcurve"

// Cluster merges ranges, a sorted and disjoint list of intervals such as
// the one sfcurve.Engine.TilesIntersecting returns, under opts.Tolerance.
// Two consecutive intervals merge when the gap between them
// (next.Min - cur.Max - 1, the count of keys strictly between them) is at
// most opts.Tolerance. The result is itself sorted, disjoint, and
// maximally coalesced under that relaxed adjacency — exactly one pass
// over ranges, the same greedy single-pass shape TilesIntersecting's own
// intervalList uses, generalized from "gap == 0" to "gap <= tolerance".
//
// ranges is never mutated; Cluster allocates and returns a new slice.
// An empty or nil ranges returns nil.
func Cluster(ranges []sfcurve.LongRange, opts Options) []sfcurve.LongRange {
	if len(ranges) == 0 {
		return nil
	}

	out := make([]sfcurve.LongRange, 0, len(ranges))
	cur := ranges[0]
	for _, r := range ranges[1:] {
		gap := r.Min - cur.Max - 1
		if gap <= opts.Tolerance {
			cur.Max = r.Max
			continue
		}
		out = append(out, cur)
		cur = r
	}
	out = append(out, cur)

	return out
}

// Stats summarizes a clustered interval list.
type Stats struct {
	// Clusters is len(ranges) after clustering.
	Clusters int
	// TileCount is the exact number of level-L tiles the unclustered
	// intervals covered (sum of each interval's width).
	TileCount uint64
	// ScanCount is the number of keys a caller visits if it linearly
	// scans every clustered interval in full, including tolerance gaps
	// folded in by Cluster. ScanCount >= TileCount; the difference is the
	// extra keys scanned to avoid extra seeks.
	ScanCount uint64
}

// Summarize computes Stats for clustered, the output of Cluster, against
// original, the pre-clustering list Cluster was given. original's exact
// tile count is preserved regardless of tolerance; clustered's ScanCount
// reflects what a caller actually pays when it scans the merged ranges.
func Summarize(original, clustered []sfcurve.LongRange) Stats {
	var tiles uint64
	for _, r := range original {
		tiles += uint64(r.Max-r.Min) + 1
	}

	var scan uint64
	for _, r := range clustered {
		scan += uint64(r.Max-r.Min) + 1
	}

	return Stats{
		Clusters:  len(clustered),
		TileCount: tiles,
		ScanCount: scan,
	}
}
