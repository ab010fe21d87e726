package scicalc

import (
	"math"
	"sort"
)

// Point is one plot sample.
type Point struct {
	X, Y float64
}

// Polyline is a maximal run of consecutive in-range samples, ordered by X,
// meant to be rendered as one connected curve.
type Polyline []Point

// defaultPlotDepth bounds the adaptive refinement. The Δy and viewport-cull
// stop conditions terminate every bounded graph on their own; the depth cap
// only cuts off pathologies those conditions cannot see, such as NaN
// plateaus, where the recursion would otherwise never bottom out.
const defaultPlotDepth = 32

// sampleSet is the x→y mapping accumulated while sweeping the variable.
// Refinement inserts midpoints out of order; ordered sorts them back.
type sampleSet map[float64]float64

func (g sampleSet) merge(other sampleSet) {
	for x, y := range other {
		g[x] = y
	}
}

func (g sampleSet) ordered() []Point {
	xs := make([]float64, 0, len(g))
	for x := range g {
		xs = append(xs, x)
	}
	sort.Float64s(xs)
	points := make([]Point, len(xs))
	for i, x := range xs {
		points[i] = Point{X: x, Y: g[x]}
	}
	return points
}

// cut splits the sample set into polylines at samples whose y falls outside
// [ylo, yhi]. Out-of-range samples are dropped; each gap closes the current
// polyline and the next in-range sample opens a new one.
func (g sampleSet) cut(ylo, yhi float64) []Polyline {
	var lines []Polyline
	var current Polyline
	for _, p := range g.ordered() {
		if p.Y >= ylo && p.Y <= yhi {
			current = append(current, p)
		} else if len(current) > 0 {
			lines = append(lines, current)
			current = nil
		}
	}
	if len(current) > 0 {
		lines = append(lines, current)
	}
	return lines
}

// graphs sweeps the variable across [xlo, xhi] with step 1/xpix — xpix is
// pixels per X unit, not pixels per viewport — evaluating the expression at
// each sample. Wherever consecutive samples differ by more than one vertical
// pixel (1/ypix), the interval is refined recursively. Every sample is
// written to the variable cell as a hex float so the recorded x and the
// evaluated x agree exactly.
//
// Any evaluation failure aborts the whole plot.
func (s *Session) graphs(xlo, xhi float64, xpix int, ylo, yhi float64, ypix int) ([]Polyline, error) {
	graph := make(sampleSet)
	dx := 1 / float64(xpix)
	dy := 1 / float64(ypix)
	var prevX, prevY float64
	for x := xlo; x <= xhi; x += dx {
		s.variable = losslessDouble(x)
		y, err := s.solve()
		if err != nil {
			return nil, err
		}
		graph[x] = y
		if x != xlo && math.Abs(y-prevY) > dy {
			sub, err := s.refine(prevX, x, dy, prevY, y, ylo, yhi, s.plotDepth)
			if err != nil {
				return nil, err
			}
			graph.merge(sub)
		}
		prevX, prevY = x, y
	}
	return graph.cut(ylo, yhi), nil
}

// refine bisects [xmin, xmax] and recurses into both halves. It stops when
// the midpoint is within Δy of the left endpoint, or when both endpoints sit
// beyond the same edge of the visible Y range with the midpoint between
// them — the function is firmly out of the viewport there, and refining
// further near a vertical asymptote would never converge. The depth counter
// is a last-resort bound for intervals none of those conditions settle.
func (s *Session) refine(xmin, xmax, dy, ymin, ymax, ylo, yhi float64, depth int) (sampleSet, error) {
	result := make(sampleSet)
	xmid := (xmin + xmax) / 2
	s.variable = losslessDouble(xmid)
	ymid, err := s.solve()
	if err != nil {
		return nil, err
	}
	result[xmid] = ymid
	if depth <= 0 ||
		math.Abs(ymid-ymin) < dy ||
		(ymin < ymid && ymin > yhi) || (ymax < ymid && ymax > yhi) ||
		(ymax > ymid && ymax < ylo) || (ymin > ymid && ymin < ylo) {
		return result, nil
	}
	left, err := s.refine(xmin, xmid, dy, ymin, ymid, ylo, yhi, depth-1)
	if err != nil {
		return nil, err
	}
	result.merge(left)
	right, err := s.refine(xmid, xmax, dy, ymid, ymax, ylo, yhi, depth-1)
	if err != nil {
		return nil, err
	}
	result.merge(right)
	return result, nil
}
