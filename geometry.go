package learngl

// ColorVertex is a position with a per-vertex RGB colour.
type ColorVertex struct {
	Position [3]float32
	Color    [3]float32
}

// Vertex is a position, a per-vertex RGB colour and a texture coordinate.
// Its memory layout is checked by LayoutOf, see LayoutTextured.
type Vertex struct {
	Position [3]float32
	Color    [3]float32
	TexCoord [2]float32
}

// Layouts for the vertex types above.
var (
	LayoutPosition = Packed(Position3)
	LayoutColored  = MustLayoutOf(ColorVertex{})
	LayoutTextured = MustLayoutOf(Vertex{})
)

// Triangle is a single triangle as flat xyz positions.
var Triangle = []float32{
	-0.5, -0.5, 0, // left
	0.5, -0.5, 0, // right
	0, 0.5, 0, // top
}

// TwinTriangles are two triangles side by side, each uploaded to its own
// vertex array.
var TwinTriangles = [2][]float32{
	{
		-1, -0.5, 0,
		0, -0.5, 0,
		-0.5, 0.5, 0,
	},
	{
		0, -0.5, 0,
		1, -0.5, 0,
		0.5, 0.5, 0,
	},
}

// ColoredTriangle has red, blue and green corners.
var ColoredTriangle = []ColorVertex{
	{Position: [3]float32{-0.5, -0.5, 0}, Color: [3]float32{1, 0, 0}}, // left
	{Position: [3]float32{0.5, -0.5, 0}, Color: [3]float32{0, 0, 1}},  // right
	{Position: [3]float32{0, 0.5, 0}, Color: [3]float32{0, 1, 0}},     // top
}

// Quad is a unit square centred at the origin drawn with QuadIndices.
var Quad = []Vertex{
	{Position: [3]float32{0.5, 0.5, 0}, Color: [3]float32{1, 0, 0}, TexCoord: [2]float32{1, 1}},   // top right
	{Position: [3]float32{0.5, -0.5, 0}, Color: [3]float32{0, 1, 0}, TexCoord: [2]float32{1, 0}},  // bottom right
	{Position: [3]float32{-0.5, -0.5, 0}, Color: [3]float32{0, 0, 1}, TexCoord: [2]float32{0, 0}}, // bottom left
	{Position: [3]float32{-0.5, 0.5, 0}, Color: [3]float32{1, 1, 0}, TexCoord: [2]float32{0, 1}},  // top left
}

// QuadIndices splits Quad into two triangles.
var QuadIndices = []uint32{
	0, 1, 3,
	1, 2, 3,
}

// Cube builds a unit cube centred at the origin. Each face has its own four
// vertices because texture coordinates differ per face, so 24 vertices and
// 36 indices.
func Cube() ([]Vertex, []uint32) {
	type face [4][3]float32
	faces := []face{
		{{0.5, 0.5, 0.5}, {0.5, -0.5, 0.5}, {-0.5, -0.5, 0.5}, {-0.5, 0.5, 0.5}},     // front
		{{0.5, 0.5, -0.5}, {0.5, -0.5, -0.5}, {-0.5, -0.5, -0.5}, {-0.5, 0.5, -0.5}}, // back
		{{0.5, 0.5, -0.5}, {0.5, -0.5, -0.5}, {0.5, -0.5, 0.5}, {0.5, 0.5, 0.5}},     // right
		{{-0.5, 0.5, 0.5}, {-0.5, -0.5, 0.5}, {-0.5, -0.5, -0.5}, {-0.5, 0.5, -0.5}}, // left
		{{0.5, 0.5, -0.5}, {0.5, 0.5, 0.5}, {-0.5, 0.5, 0.5}, {-0.5, 0.5, -0.5}},     // top
		{{0.5, -0.5, 0.5}, {0.5, -0.5, -0.5}, {-0.5, -0.5, -0.5}, {-0.5, -0.5, 0.5}}, // bottom
	}
	colors := [4][3]float32{{0, 0, 0}, {0, 0, 1}, {0, 1, 0}, {0, 1, 1}}

	vertices := make([]Vertex, 0, len(faces)*4)
	indices := make([]uint32, 0, len(faces)*6)
	for i, f := range faces {
		base := uint32(i * 4)
		for j := range f {
			vertices = append(vertices, Vertex{
				Position: f[j],
				Color:    colors[j],
				TexCoord: Quad[j].TexCoord,
			})
		}
		for _, idx := range QuadIndices {
			indices = append(indices, base+idx)
		}
	}
	return vertices, indices
}
