/*
	graph package builds the self-contained link graph that the PageRank
	solver operates on.
*/

package graph

import (
	"fmt"

	"github.com/mycok/uRank/webpage"
)

// Graph is an immutable directed graph in adjacency-list form. Every
// document of the set it was built from is a vertex, edges only point to
// vertices of the graph, self-loops never occur and each edge appears at
// most once.
type Graph struct {
	uris  []string
	index map[string]int
	// edges[i] holds the destination vertex indices of the edges
	// originating from uris[i], in first-occurrence order.
	edges     [][]int
	edgeCount int
}

// Build converts a document set into a Graph. Links that point outside the
// set, links from a page to itself and repeated links to the same target
// are dropped. Pages without any remaining link are kept as dangling
// vertices. A nil set yields an empty graph.
func Build(set *webpage.Set) *Graph {
	if set == nil {
		return &Graph{index: make(map[string]int)}
	}

	n := set.Len()
	g := &Graph{
		uris:  set.URIs(),
		index: make(map[string]int, n),
		edges: make([][]int, n),
	}

	for i, uri := range g.uris {
		g.index[uri] = i
	}

	for src := 0; src < n; src++ {
		page := set.At(src)
		seen := make(map[int]struct{}, len(page.Links))

		for _, link := range page.Links {
			dst, exists := g.index[link]
			if !exists || dst == src {
				continue
			}

			if _, dup := seen[dst]; dup {
				continue
			}

			seen[dst] = struct{}{}
			g.edges[src] = append(g.edges[src], dst)
		}

		g.edgeCount += len(g.edges[src])
	}

	return g
}

// Len returns the number of vertices in the graph.
func (g *Graph) Len() int { return len(g.uris) }

// EdgeCount returns the total number of edges in the graph.
func (g *Graph) EdgeCount() int { return g.edgeCount }

// URIs returns the vertex URIs in document order.
func (g *Graph) URIs() []string {
	return append(make([]string, 0, len(g.uris)), g.uris...)
}

// Contains reports whether uri is a vertex of the graph.
func (g *Graph) Contains(uri string) bool {
	_, exists := g.index[uri]

	return exists
}

// Edges returns the destination URIs of the edges originating from uri.
func (g *Graph) Edges(uri string) ([]string, error) {
	src, exists := g.index[uri]
	if !exists {
		return nil, fmt.Errorf("edges of %q: %w", uri, webpage.ErrNotFound)
	}

	dsts := make([]string, len(g.edges[src]))
	for i, dst := range g.edges[src] {
		dsts[i] = g.uris[dst]
	}

	return dsts, nil
}

// OutDegree returns the number of edges originating from uri.
func (g *Graph) OutDegree(uri string) (int, error) {
	src, exists := g.index[uri]
	if !exists {
		return 0, fmt.Errorf("out degree of %q: %w", uri, webpage.ErrNotFound)
	}

	return len(g.edges[src]), nil
}

// HasEdge reports whether the graph contains an edge from src to dst.
func (g *Graph) HasEdge(src, dst string) bool {
	srcIdx, srcExists := g.index[src]
	dstIdx, dstExists := g.index[dst]
	if !srcExists || !dstExists {
		return false
	}

	for _, e := range g.edges[srcIdx] {
		if e == dstIdx {
			return true
		}
	}

	return false
}

// Dangling returns the number of vertices without outgoing edges.
func (g *Graph) Dangling() int {
	var count int
	for _, dsts := range g.edges {
		if len(dsts) == 0 {
			count++
		}
	}

	return count
}

// Vertices invokes visitFn with the vertex position, URI and destination
// positions of every vertex in document order. The dsts slice is shared
// with the graph and must not be modified.
func (g *Graph) Vertices(visitFn func(idx int, uri string, dsts []int) error) error {
	for i, uri := range g.uris {
		if err := visitFn(i, uri, g.edges[i]); err != nil {
			return err
		}
	}

	return nil
}
