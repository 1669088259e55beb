package render_test

import (
	"bufio"
	"bytes"
	"strings"
	"testing"

	"github.com/quadric/torus"
	"github.com/quadric/torus/mesh"
	"github.com/quadric/torus/render"
)

func TestWriteOBJ(t *testing.T) {
	m, err := torus.NewMesh(torus.Params{
		MajorRadius:   1,
		MinorRadius:   0.25,
		MajorSegments: 4,
		MinorSegments: 4,
	})
	if err != nil {
		t.Fatal(err)
	}
	var b bytes.Buffer
	if err := render.WriteOBJ(&b, m); err != nil {
		t.Fatal(err)
	}
	var nv, nvt, nf int
	var firstFace string
	sc := bufio.NewScanner(&b)
	for sc.Scan() {
		line := sc.Text()
		switch {
		case strings.HasPrefix(line, "v "):
			nv++
		case strings.HasPrefix(line, "vt "):
			nvt++
		case strings.HasPrefix(line, "f "):
			if nf == 0 {
				firstFace = line
			}
			nf++
		}
	}
	if err := sc.Err(); err != nil {
		t.Fatal(err)
	}
	if nv != len(m.Vertices()) {
		t.Errorf("%d v records, want %d", nv, len(m.Vertices()))
	}
	if nvt != m.NumLoops() {
		t.Errorf("%d vt records, want %d", nvt, m.NumLoops())
	}
	if nf != len(m.Faces()) {
		t.Errorf("%d f records, want %d", nf, len(m.Faces()))
	}
	// First quad is (0,4,5,1) with loop UVs 0..3, all 1-based in OBJ.
	if want := "f 1/1 5/2 6/3 2/4"; firstFace != want {
		t.Errorf("first face %q, want %q", firstFace, want)
	}
}

func TestWriteOBJNoUV(t *testing.T) {
	verts, faces := torus.Generate(torus.Params{
		MajorRadius:   1,
		MinorRadius:   0.5,
		MajorSegments: 3,
		MinorSegments: 3,
	})
	m, err := mesh.New(verts, faces)
	if err != nil {
		t.Fatal(err)
	}
	var b bytes.Buffer
	if err := render.WriteOBJ(&b, m); err != nil {
		t.Fatal(err)
	}
	out := b.String()
	if strings.Contains(out, "vt ") {
		t.Error("vt records written without a UV layer")
	}
	if strings.Contains(out, "/") {
		t.Error("face elements reference texture indices without a UV layer")
	}
}
