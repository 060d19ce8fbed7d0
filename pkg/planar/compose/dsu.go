package compose

import "github.com/bgabrovsek/classification-bonded-knots-sub001/pkg/planar"

// dsu is a union-find over node names with path halving and union by rank.
type dsu struct {
	parent map[planar.Name]planar.Name
	rank   map[planar.Name]int
}

func newDSU(names []planar.Name) *dsu {
	u := &dsu{
		parent: make(map[planar.Name]planar.Name, len(names)),
		rank:   make(map[planar.Name]int, len(names)),
	}
	for _, n := range names {
		u.parent[n] = n
	}
	return u
}

func (u *dsu) find(n planar.Name) planar.Name {
	for u.parent[n] != n {
		u.parent[n] = u.parent[u.parent[n]]
		n = u.parent[n]
	}
	return n
}

func (u *dsu) union(a, b planar.Name) {
	ra, rb := u.find(a), u.find(b)
	if ra == rb {
		return
	}
	if u.rank[ra] < u.rank[rb] {
		ra, rb = rb, ra
	}
	u.parent[rb] = ra
	if u.rank[ra] == u.rank[rb] {
		u.rank[ra]++
	}
}
