// Package catalog stores classified diagrams keyed by the digest of their
// canonical form.
//
// A Record pairs the digest with opaque summary data about the diagram;
// the catalog never stores a parseable diagram encoding. Backends
// implement the Store interface:
//   - memory: in-process storage for tests and single runs
//   - file: JSON files under a directory, for CLI usage
//   - redis: shared storage for concurrent classification runs
//   - mongo: durable storage for long-running classifications
package catalog

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"maps"
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/bgabrovsek/classification-bonded-knots-sub001/pkg/planar"
	"github.com/bgabrovsek/classification-bonded-knots-sub001/pkg/planar/canon"
)

// ErrNotFound is returned when no record exists for a digest.
var ErrNotFound = errors.New("not found")

// Record is one catalogued diagram: the canonical digest plus summary
// fields for listings. Form is the canonical adjacency rendering, kept
// for display only.
type Record struct {
	ID        string    `json:"id" bson:"_id"`
	Digest    string    `json:"digest" bson:"digest"`
	Family    string    `json:"family,omitempty" bson:"family,omitempty"`
	Form      string    `json:"form" bson:"form"`
	Nodes     int       `json:"nodes" bson:"nodes"`
	Arcs      int       `json:"arcs" bson:"arcs"`
	Crossings int       `json:"crossings" bson:"crossings"`
	Oriented  bool      `json:"oriented,omitempty" bson:"oriented,omitempty"`
	Framed    bool      `json:"framed,omitempty" bson:"framed,omitempty"`
	Framing   int       `json:"framing,omitempty" bson:"framing,omitempty"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}

// Store is the interface catalog backends implement. Get returns
// [ErrNotFound] for an unknown digest. Put never overwrites: it reports
// whether the digest was newly added, so the first record for a canonical
// form wins. List returns records sorted by digest.
type Store interface {
	Get(ctx context.Context, digest string) (Record, error)
	Put(ctx context.Context, rec Record) (bool, error)
	List(ctx context.Context) ([]Record, error)
	Delete(ctx context.Context, digest string) error
	Close() error
}

// NewRecord canonicalizes the diagram and fills a record from the
// canonical form. The caller may tag the record with the family it was
// generated from.
func NewRecord(d *planar.Diagram, family string) (Record, error) {
	c, err := canon.Canonical(d)
	if err != nil {
		return Record{}, fmt.Errorf("catalog record: %w", err)
	}
	rec := Record{
		ID:        uuid.NewString(),
		Digest:    digest(c),
		Family:    family,
		Form:      c.String(),
		Nodes:     c.NodeCount(),
		Arcs:      c.ArcCount(),
		Crossings: len(c.Crossings()) + len(c.VirtualCrossings()),
		Oriented:  c.IsOriented(),
		CreatedAt: time.Now().UTC(),
	}
	if f, ok := c.Framing(); ok {
		rec.Framed, rec.Framing = true, f
	}
	return rec, nil
}

// Digest returns the catalog key of a diagram: the hex SHA-256 over a
// deterministic walk of its canonical form covering adjacency,
// orientation classes, attributes and framing. Two diagrams share a
// digest exactly when their canonical forms are equal.
func Digest(d *planar.Diagram) (string, error) {
	c, err := canon.Canonical(d)
	if err != nil {
		return "", fmt.Errorf("digest: %w", err)
	}
	return digest(c), nil
}

func digest(c *planar.Diagram) string {
	sum := sha256.Sum256(canonicalBytes(c))
	return hex.EncodeToString(sum[:])
}

// canonicalBytes renders every structural detail of a canonical form in a
// fixed order. The output is hash input, not an interchange format.
func canonicalBytes(c *planar.Diagram) []byte {
	var b bytes.Buffer
	if f, ok := c.Framing(); ok {
		fmt.Fprintf(&b, "framing %d\n", f)
	}
	writeAttrs(&b, c.Attrs())
	for _, name := range c.Nodes() {
		kind, _ := c.KindOf(name)
		degree, _ := c.Degree(name)
		fmt.Fprintf(&b, "%s %s/%d", name, kind, degree)
		attrs, _ := c.NodeAttrs(name)
		writeAttrs(&b, attrs)
		for pos := 0; pos < degree; pos++ {
			t, err := c.Twin(planar.At(name, pos))
			if err != nil {
				b.WriteString(" _")
				continue
			}
			fmt.Fprintf(&b, " %s/%s", t.Slot, t.Orient)
			writeAttrs(&b, t.Attrs)
		}
		b.WriteByte('\n')
	}
	return b.Bytes()
}

func writeAttrs(b *bytes.Buffer, attrs planar.Attrs) {
	if len(attrs) == 0 {
		b.WriteByte('\n')
		return
	}
	for _, k := range slices.Sorted(maps.Keys(attrs)) {
		fmt.Fprintf(b, " %s=%s", k, attrs[k])
	}
	b.WriteByte('\n')
}
