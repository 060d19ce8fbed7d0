package render

import (
	"strings"
	"testing"

	"github.com/bgabrovsek/classification-bonded-knots-sub001/pkg/planar"
	"github.com/bgabrovsek/classification-bonded-knots-sub001/pkg/planar/build"
)

func TestToDOT(t *testing.T) {
	tests := []struct {
		name    string
		diagram func(t *testing.T) *planar.Diagram
		opts    Options
		want    string
	}{
		{
			name: "Path",
			diagram: func(t *testing.T) *planar.Diagram {
				d, err := build.Path(2)
				if err != nil {
					t.Fatalf("Path(2): %v", err)
				}
				return d
			},
			want: `graph G {
  bgcolor="transparent";
  node [shape=ellipse, style=filled, fillcolor=white, fontsize=14];
  edge [fontsize=10];

  "a" [label="a"];
  "b" [label="b"];

  "a" -- "b";
}
`,
		},
		{
			name: "Trefoil",
			diagram: func(t *testing.T) *planar.Diagram {
				d, err := build.Trefoil()
				if err != nil {
					t.Fatalf("Trefoil: %v", err)
				}
				return d
			},
			want: `graph G {
  bgcolor="transparent";
  node [shape=ellipse, style=filled, fillcolor=white, fontsize=14];
  edge [fontsize=10];

  "a" [label="a", shape=box];
  "b" [label="b", shape=box];
  "c" [label="c", shape=box];

  "a" -- "c";
  "a" -- "c";
  "a" -- "b";
  "a" -- "b";
  "b" -- "c";
  "b" -- "c";
}
`,
		},
		{
			name: "OrientedLoopDetailed",
			diagram: func(t *testing.T) *planar.Diagram {
				d := planar.New(nil)
				a := planar.NameOf("a")
				if err := d.AddVertex(a, 2, nil); err != nil {
					t.Fatalf("add vertex: %v", err)
				}
				if err := d.SetOrientedArc(planar.At(a, 0), planar.At(a, 1)); err != nil {
					t.Fatalf("set arc: %v", err)
				}
				return d
			},
			opts: Options{Detailed: true},
			want: `digraph G {
  bgcolor="transparent";
  node [shape=ellipse, style=filled, fillcolor=white, fontsize=14];
  edge [fontsize=10];

  "a" [label="a\nVertex, degree 2"];

  "a" -> "a" [taillabel="0", headlabel="1"];
}
`,
		},
		{
			name: "OrientedEdgeFollowsStrand",
			diagram: func(t *testing.T) *planar.Diagram {
				d := planar.New(nil)
				a, b := planar.NameOf("a"), planar.NameOf("b")
				for _, n := range []planar.Name{a, b} {
					if err := d.AddVertex(n, 1, nil); err != nil {
						t.Fatalf("add vertex: %v", err)
					}
				}
				if err := d.SetOrientedArc(planar.At(b, 0), planar.At(a, 0)); err != nil {
					t.Fatalf("set arc: %v", err)
				}
				return d
			},
			want: `digraph G {
  bgcolor="transparent";
  node [shape=ellipse, style=filled, fillcolor=white, fontsize=14];
  edge [fontsize=10];

  "a" [label="a"];
  "b" [label="b"];

  "b" -> "a";
}
`,
		},
		{
			name: "ShapesColorsAndFraming",
			diagram: func(t *testing.T) *planar.Diagram {
				d := planar.New(nil)
				d.SetFraming(2)
				a, b, v := planar.NameOf("a"), planar.NameOf("b"), planar.NameOf("v")
				if err := d.AddVertex(a, 1, planar.Attrs{planar.AttrColor: planar.StringValue("tomato")}); err != nil {
					t.Fatalf("add vertex: %v", err)
				}
				if err := d.AddVertex(b, 1, nil); err != nil {
					t.Fatalf("add vertex: %v", err)
				}
				if err := d.AddVirtualCrossing(v, nil); err != nil {
					t.Fatalf("add virtual crossing: %v", err)
				}
				if err := d.SetArc(planar.At(a, 0), planar.At(v, 0)); err != nil {
					t.Fatalf("set arc: %v", err)
				}
				if err := d.SetArc(planar.At(b, 0), planar.At(v, 3)); err != nil {
					t.Fatalf("set arc: %v", err)
				}
				bond := planar.Attrs{planar.AttrColor: planar.StringValue("blue")}
				if err := d.SetEndpoint(planar.At(v, 1), planar.At(v, 2), planar.Unoriented, bond); err != nil {
					t.Fatalf("set endpoint: %v", err)
				}
				if err := d.SetEndpoint(planar.At(v, 2), planar.At(v, 1), planar.Unoriented, bond); err != nil {
					t.Fatalf("set endpoint: %v", err)
				}
				return d
			},
			want: `graph G {
  bgcolor="transparent";
  label="framing 2";
  node [shape=ellipse, style=filled, fillcolor=white, fontsize=14];
  edge [fontsize=10];

  "a" [label="a", fillcolor="tomato"];
  "b" [label="b"];
  "v" [label="v", shape=diamond];

  "a" -- "v";
  "b" -- "v";
  "v" -- "v" [color="blue"];
}
`,
		},
		{
			name: "DetailedNodeAttrs",
			diagram: func(t *testing.T) *planar.Diagram {
				d := planar.New(nil)
				attrs := planar.Attrs{
					planar.AttrColor: planar.StringValue("red"),
					"weight":         planar.IntValue(3),
				}
				if err := d.AddVertex(planar.NameOf("q"), 0, attrs); err != nil {
					t.Fatalf("add vertex: %v", err)
				}
				return d
			},
			opts: Options{Detailed: true},
			want: `graph G {
  bgcolor="transparent";
  node [shape=ellipse, style=filled, fillcolor=white, fontsize=14];
  edge [fontsize=10];

  "q" [label="q\nVertex, degree 0\ncolor: \"red\"\nweight: 3", fillcolor="red"];

}
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ToDOT(tt.diagram(t), tt.opts)
			if got != tt.want {
				t.Errorf("ToDOT mismatch\ngot:\n%s\nwant:\n%s", got, tt.want)
			}
		})
	}
}

func TestToDOTDeterministic(t *testing.T) {
	d, err := build.FigureEight()
	if err != nil {
		t.Fatalf("FigureEight: %v", err)
	}
	first := ToDOT(d, Options{Detailed: true})
	for i := 0; i < 5; i++ {
		if got := ToDOT(d, Options{Detailed: true}); got != first {
			t.Fatalf("run %d differs from first render", i)
		}
	}
	if !strings.Contains(first, "shape=box") {
		t.Errorf("crossings should render as boxes:\n%s", first)
	}
}
