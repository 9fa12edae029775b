package tzcalc

import "sort"

// Coverage is a stretch of time during which the same members are available.
// Members holds indexes into the sets passed to BestCoverage.
type Coverage struct {
	Interval
	Members []int
}

// BestCoverage sweeps the members' availability within bounds and returns the
// longest stretch with the largest number of members available at once.
// Ties on length go to the earliest stretch. ok is false when nobody is
// available at any point inside bounds.
func BestCoverage(sets [][]Interval, bounds Interval) (best Coverage, ok bool) {
	points := []int64{bounds.Start.Unix(), bounds.End.Unix()}
	clipped := make([][]Interval, len(sets))
	for i, set := range sets {
		clipped[i] = ClipSet(Normalize(set), bounds)
		for _, iv := range clipped[i] {
			points = append(points, iv.Start.Unix(), iv.End.Unix())
		}
	}
	sort.Slice(points, func(i, j int) bool { return points[i] < points[j] })
	points = uniq(points)

	var segments []Coverage
	for k := 0; k+1 < len(points); k++ {
		seg := Interval{Start: unix(points[k], bounds), End: unix(points[k+1], bounds)}
		var members []int
		for i, set := range clipped {
			if SetCovers(set, seg) {
				members = append(members, i)
			}
		}
		if n := len(segments); n > 0 && segments[n-1].End.Equal(seg.Start) && sameMembers(segments[n-1].Members, members) {
			segments[n-1].End = seg.End
			continue
		}
		segments = append(segments, Coverage{Interval: seg, Members: members})
	}

	for _, seg := range segments {
		if len(seg.Members) == 0 {
			continue
		}
		switch {
		case !ok,
			len(seg.Members) > len(best.Members),
			len(seg.Members) == len(best.Members) && seg.Duration() > best.Duration():
			best, ok = seg, true
		}
	}
	return best, ok
}

func uniq(points []int64) []int64 {
	out := make([]int64, 0, len(points))
	for _, p := range points {
		if len(out) == 0 || out[len(out)-1] != p {
			out = append(out, p)
		}
	}
	return out
}

func sameMembers(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
