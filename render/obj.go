package render

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/quadric/torus/mesh"
)

// WriteOBJ writes m to w in Wavefront OBJ format with native quad faces.
// When m carries a UV layer one vt record is emitted per face corner and
// referenced from the face elements; OBJ is the only format in this package
// that round-trips the per-loop UV layer.
func WriteOBJ(w io.Writer, m *mesh.Mesh) error {
	bw := bufio.NewWriter(w)
	for _, v := range m.Vertices() {
		fmt.Fprintf(bw, "v %g %g %g\n", v.X, v.Y, v.Z)
	}
	uv := m.UV()
	for _, t := range uv {
		fmt.Fprintf(bw, "vt %g %g\n", t.X, t.Y)
	}
	for fi, f := range m.Faces() {
		if uv == nil {
			fmt.Fprintf(bw, "f %d %d %d %d\n", f[0]+1, f[1]+1, f[2]+1, f[3]+1)
			continue
		}
		// OBJ indices are 1-based; vt records were written in loop order.
		loop := m.LoopStart(fi)
		fmt.Fprintf(bw, "f %d/%d %d/%d %d/%d %d/%d\n",
			f[0]+1, loop+1,
			f[1]+1, loop+2,
			f[2]+1, loop+3,
			f[3]+1, loop+4)
	}
	return bw.Flush()
}

// CreateOBJ writes m to an OBJ file at path.
func CreateOBJ(path string, m *mesh.Mesh) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	return WriteOBJ(file, m)
}
