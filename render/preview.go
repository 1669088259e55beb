package render

import (
	"image"

	"github.com/fogleman/fauxgl"
	"github.com/nfnt/resize"
	"github.com/quadric/torus/internal/d3"
	"github.com/quadric/torus/mesh"
	"gonum.org/v1/gonum/spatial/r3"
)

// ViewConfig positions the preview camera.
type ViewConfig struct {
	// what position (point) to look at
	Lookat r3.Vec
	// which way is up (direction)
	Up r3.Vec
	// where the camera/eye located at (point)
	Eyepos r3.Vec
	Far    float64
	Near   float64
}

// DefaultView looks down at the origin from a corner with Z up.
func DefaultView() ViewConfig {
	return ViewConfig{
		Up:     r3.Vec{Z: 1},
		Eyepos: d3.Elem(3),
		Near:   1,
		Far:    10,
	}
}

// RenderImage rasterizes a shaded preview of m using the fauxgl software
// renderer. The mesh is fit to a bi-unit cube centered at the origin before
// rendering, so view configs need not depend on model scale.
func RenderImage(m *mesh.Mesh, view ViewConfig) image.Image {
	const (
		width, height = 1920, 1080 // output width and height in pixels
		scale         = 1          // optional supersampling
		fovy          = 30         // vertical field of view in degrees
	)
	var (
		eye    = fauxgl.V(view.Eyepos.X, view.Eyepos.Y, view.Eyepos.Z)
		center = fauxgl.V(view.Lookat.X, view.Lookat.Y, view.Lookat.Z)
		up     = fauxgl.V(view.Up.X, view.Up.Y, view.Up.Z)
		light  = fauxgl.V(-0.75, 1, 0.25).Normalize() // light direction
		color  = fauxgl.HexColor("#468966")           // object color
	)

	triangles := make([]*fauxgl.Triangle, 0, 2*len(m.Faces()))
	for _, tri := range m.Triangles() {
		triangles = append(triangles, fauxgl.NewTriangleForPoints(
			fauxgl.V(tri[0].X, tri[0].Y, tri[0].Z),
			fauxgl.V(tri[1].X, tri[1].Y, tri[1].Z),
			fauxgl.V(tri[2].X, tri[2].Y, tri[2].Z),
		))
	}
	fmesh := fauxgl.NewTriangleMesh(triangles)
	// fit mesh in a bi-unit cube centered at the origin
	fmesh.BiUnitCube()

	context := fauxgl.NewContext(width*scale, height*scale)
	context.ClearColorBufferWith(fauxgl.HexColor("#FFF8E3"))
	aspect := float64(width) / float64(height)
	matrix := fauxgl.LookAt(eye, center, up).Perspective(fovy, aspect, view.Near, view.Far)
	shader := fauxgl.NewPhongShader(matrix, light, eye)
	shader.ObjectColor = color
	context.Shader = shader
	context.DrawMesh(fmesh)

	// downsample image for antialiasing
	return resize.Resize(width, height, context.Image(), resize.Bilinear)
}

// SavePNG writes a shaded PNG preview of m to path.
func SavePNG(path string, m *mesh.Mesh, view ViewConfig) error {
	return fauxgl.SavePNG(path, RenderImage(m, view))
}
