package sref

import "github.com/geoconv/sref/ellipsoid"

// Datum binds a named horizontal datum to its reference ellipsoid and
// a canonical-datum code. Datums that are mere renamings of each other
// (e.g. "NAD83" and "WGS84" for most practical purposes) share a
// canonical code so SYNONYM shifts and registry lookups treat them as
// identical.
type Datum struct {
	Code               string
	Ellipsoid          ellipsoid.Ellipsoid
	CanonicalDatumCode string
}

// canonicalGraph is a union-find over datum codes, generalizing the
// teacher's Cartesian.ConvertDatum special case ("from/to WGS84, or
// neither") into an explicit synonym graph: any chain of SYNONYM shifts
// registered between two datums merges their canonical groups, so two
// datums are interchangeable (no shift needed) whenever they resolve
// to the same canonical root.
type canonicalGraph struct {
	parent map[string]string
}

func newCanonicalGraph() *canonicalGraph {
	return &canonicalGraph{parent: map[string]string{}}
}

func (g *canonicalGraph) find(code string) string {
	root, ok := g.parent[code]
	if !ok {
		g.parent[code] = code
		return code
	}
	if root == code {
		return code
	}
	r := g.find(root)
	g.parent[code] = r
	return r
}

func (g *canonicalGraph) union(a, b string) {
	ra, rb := g.find(a), g.find(b)
	if ra != rb {
		g.parent[ra] = rb
	}
}

// canonical returns the canonical root datum code for a code, which
// may not yet have been explicitly registered.
func (g *canonicalGraph) canonical(code string) string {
	return g.find(code)
}
