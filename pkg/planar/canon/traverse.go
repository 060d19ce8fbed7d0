package canon

import (
	"fmt"
	"slices"

	"github.com/bgabrovsek/classification-bonded-knots-sub001/pkg/planar"
)

// candidates returns the start endpoints to minimize over: nodes of
// globally minimal degree filtered to the minimal BFS layer profile,
// contributing every position for vertices and the two under positions for
// degree-4 kinds.
func candidates(d *planar.Diagram) []planar.Slot {
	names := d.Nodes()
	minDeg := -1
	for _, n := range names {
		if deg, err := d.Degree(n); err == nil && (minDeg < 0 || deg < minDeg) {
			minDeg = deg
		}
	}

	var nodes []planar.Name
	var bestProfile []int
	for _, n := range names {
		if deg, err := d.Degree(n); err != nil || deg != minDeg {
			continue
		}
		p := layerProfile(d, n)
		switch c := slices.Compare(p, bestProfile); {
		case bestProfile == nil || c < 0:
			bestProfile, nodes = p, []planar.Name{n}
		case c == 0:
			nodes = append(nodes, n)
		}
	}

	var slots []planar.Slot
	for _, n := range nodes {
		kind, err := d.KindOf(n)
		if err != nil {
			continue
		}
		if kind == planar.KindVertex {
			deg, _ := d.Degree(n)
			for pos := 0; pos < deg; pos++ {
				slots = append(slots, planar.At(n, pos))
			}
			continue
		}
		slots = append(slots, planar.At(n, 0), planar.At(n, 2))
	}
	return slots
}

// layerProfile returns the BFS layer sizes from start: element i counts the
// nodes first reached at distance i. Layers stop before the first empty
// one, so the profile of a connected diagram sums to its node count.
func layerProfile(d *planar.Diagram, start planar.Name) []int {
	visited := map[planar.Name]bool{start: true}
	frontier := []planar.Name{start}
	profile := []int{1}
	for len(frontier) > 0 {
		var next []planar.Name
		for _, n := range frontier {
			deg, err := d.Degree(n)
			if err != nil {
				continue
			}
			for pos := 0; pos < deg; pos++ {
				t, err := d.Twin(planar.At(n, pos))
				if err != nil {
					continue
				}
				if m := t.Slot.Node; !visited[m] {
					visited[m] = true
					next = append(next, m)
				}
			}
		}
		if len(next) == 0 {
			break
		}
		profile = append(profile, len(next))
		frontier = next
	}
	return profile
}

// traverse walks the diagram breadth-first from the start endpoint. Nodes
// are named from the alphabetic supply in first-visit order and their entry
// positions recorded; on naming a node its remaining positions are queued
// counterclockwise from the entry, and every dequeued endpoint crosses its
// arc to continue the walk. Each slot enters the queue once.
func traverse(d *planar.Diagram, start planar.Slot) (map[planar.Name]planar.Name, map[planar.Name]int, error) {
	names := make(map[planar.Name]planar.Name)
	entry := make(map[planar.Name]int)
	seen := map[planar.Slot]bool{start: true}
	queue := []planar.Slot{start}
	ord := 0
	for len(queue) > 0 {
		s := queue[0]
		queue = queue[1:]
		if _, named := names[s.Node]; !named {
			ord++
			names[s.Node] = planar.AlphabeticName(ord)
			entry[s.Node] = s.Pos
			deg, err := d.Degree(s.Node)
			if err != nil {
				return nil, nil, fmt.Errorf("canonical: %w", err)
			}
			for k := 1; k < deg; k++ {
				p := planar.At(s.Node, (s.Pos+k)%deg)
				if !seen[p] {
					seen[p] = true
					queue = append(queue, p)
				}
			}
		}
		t, err := d.Twin(s)
		if err != nil {
			return nil, nil, fmt.Errorf("canonical: endpoint %s unset: %w", s, planar.ErrStructure)
		}
		if !seen[t.Slot] {
			seen[t.Slot] = true
			queue = append(queue, t.Slot)
		}
	}
	return names, entry, nil
}
