package sref

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalGraphFindDefaultsToSelf(t *testing.T) {
	g := newCanonicalGraph()
	assert.Equal(t, "X", g.canonical("X"))
}

func TestCanonicalGraphUnionMergesRoots(t *testing.T) {
	g := newCanonicalGraph()
	g.union("A", "B")
	assert.Equal(t, g.canonical("A"), g.canonical("B"))
}

func TestCanonicalGraphTransitiveChain(t *testing.T) {
	g := newCanonicalGraph()
	g.union("A", "B")
	g.union("B", "C")
	assert.Equal(t, g.canonical("A"), g.canonical("C"))
}

func TestCanonicalGraphUnrelatedCodesStaySeparate(t *testing.T) {
	g := newCanonicalGraph()
	g.union("A", "B")
	assert.NotEqual(t, g.canonical("A"), g.canonical("Z"))
}
