package learngl_test

import (
	"strings"
	"testing"
	"unsafe"

	"github.com/go-theft-auto/learngl"
)

func TestLayoutOfVertex(t *testing.T) {
	l, err := learngl.LayoutOf(learngl.Vertex{})
	if err != nil {
		t.Fatalf("LayoutOf: %v", err)
	}

	if l.Stride != int32(unsafe.Sizeof(learngl.Vertex{})) {
		t.Errorf("expected stride %d, got %d", unsafe.Sizeof(learngl.Vertex{}), l.Stride)
	}
	if l.Stride != 8*4 {
		t.Errorf("expected stride of 8 floats, got %d bytes", l.Stride)
	}

	want := []struct {
		name       string
		location   uint32
		components int32
		offset     uintptr
	}{
		{"Position", 0, 3, unsafe.Offsetof(learngl.Vertex{}.Position)},
		{"Color", 1, 3, unsafe.Offsetof(learngl.Vertex{}.Color)},
		{"TexCoord", 2, 2, unsafe.Offsetof(learngl.Vertex{}.TexCoord)},
	}
	if len(l.Attributes) != len(want) {
		t.Fatalf("expected %d attributes, got %d", len(want), len(l.Attributes))
	}
	for i, w := range want {
		a := l.Attributes[i]
		if a.Name != w.name || a.Location != w.location || a.Components != w.components || a.Offset != w.offset {
			t.Errorf("attribute %d: got %+v, want %+v", i, a, w)
		}
		if a.Type != learngl.Float32 {
			t.Errorf("attribute %d: expected float32, got %s", i, a.Type)
		}
	}
}

func TestLayoutOfMatchesPacked(t *testing.T) {
	packed := learngl.Packed(learngl.Position3, learngl.Color3, learngl.TexCoord2)
	reflected := learngl.LayoutTextured

	if packed.Stride != reflected.Stride {
		t.Fatalf("stride mismatch: packed %d, reflected %d", packed.Stride, reflected.Stride)
	}
	for i := range packed.Attributes {
		if packed.Attributes[i].Offset != reflected.Attributes[i].Offset {
			t.Errorf("attribute %d: packed offset %d, reflected %d",
				i, packed.Attributes[i].Offset, reflected.Attributes[i].Offset)
		}
	}
}

func TestLayoutOfTags(t *testing.T) {
	type uiVertex struct {
		Pos   [2]float32 `location:"3"`
		Color [4]uint8   `location:"5" gl:"normalized"`
	}
	l, err := learngl.LayoutOf(&uiVertex{})
	if err != nil {
		t.Fatalf("LayoutOf: %v", err)
	}
	if l.Stride != 12 {
		t.Errorf("expected stride 12, got %d", l.Stride)
	}
	color, ok := l.Attribute("Color")
	if !ok {
		t.Fatal("expected Color attribute")
	}
	if color.Location != 5 || !color.Normalized || color.Type != learngl.Uint8 || color.Offset != 8 {
		t.Errorf("unexpected color attribute: %+v", color)
	}
}

func TestLayoutOfRejects(t *testing.T) {
	type padded struct {
		A uint8
		B float32
	}
	type trailing struct {
		A float32
		B uint8
	}
	type nested struct {
		Pos struct{ X, Y float32 }
	}
	type wide struct {
		M [16]float32
	}

	tests := []struct {
		name   string
		vertex any
		want   string
	}{
		{"nil", nil, "nil vertex"},
		{"not a struct", 1.5, "not a struct"},
		{"padding", padded{}, "padding before"},
		{"trailing padding", trailing{}, "trailing padding"},
		{"nested struct", nested{}, "unsupported component type"},
		{"too many components", wide{}, "outside 1..4"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := learngl.LayoutOf(tt.vertex)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("expected error containing %q, got %v", tt.want, err)
			}
		})
	}
}

func TestLayoutValidate(t *testing.T) {
	ok := learngl.Packed(learngl.Position2, learngl.ColorRGBA)
	if err := ok.Validate(); err != nil {
		t.Errorf("packed layout should be valid: %v", err)
	}

	overlap := learngl.VertexLayout{
		Stride: 16,
		Attributes: []learngl.Attribute{
			{Name: "a", Location: 0, Components: 3, Type: learngl.Float32, Offset: 0},
			{Name: "b", Location: 1, Components: 2, Type: learngl.Float32, Offset: 8},
		},
	}
	if err := overlap.Validate(); err == nil {
		t.Error("expected overlap error")
	}

	sameLoc := learngl.VertexLayout{
		Stride: 8,
		Attributes: []learngl.Attribute{
			{Name: "a", Location: 0, Components: 1, Type: learngl.Float32, Offset: 0},
			{Name: "b", Location: 0, Components: 1, Type: learngl.Float32, Offset: 4},
		},
	}
	if err := sameLoc.Validate(); err == nil {
		t.Error("expected duplicate location error")
	}

	pastStride := learngl.VertexLayout{
		Stride: 8,
		Attributes: []learngl.Attribute{
			{Name: "a", Location: 0, Components: 3, Type: learngl.Float32, Offset: 0},
		},
	}
	if err := pastStride.Validate(); err == nil {
		t.Error("expected past-stride error")
	}

	if err := (learngl.VertexLayout{}).Validate(); err == nil {
		t.Error("expected error for empty layout")
	}
}

func TestVertexCount(t *testing.T) {
	l := learngl.LayoutPosition
	size, err := learngl.DataSize(learngl.Triangle)
	if err != nil {
		t.Fatalf("DataSize: %v", err)
	}
	n, err := l.VertexCount(size)
	if err != nil || n != 3 {
		t.Errorf("expected 3 vertices, got %d (%v)", n, err)
	}
	if _, err := l.VertexCount(size + 4); err == nil {
		t.Error("expected error for partial vertex")
	}
}

func TestDataSize(t *testing.T) {
	tests := []struct {
		name string
		data any
		want int
	}{
		{"float slice", []float32{1, 2, 3}, 12},
		{"vertex slice", learngl.Quad, 4 * 32},
		{"index slice", learngl.QuadIndices, 24},
		{"array", [4]uint16{}, 8},
		{"pointer to array", &[2]float32{}, 8},
	}
	for _, tt := range tests {
		got, err := learngl.DataSize(tt.data)
		if err != nil {
			t.Errorf("%s: %v", tt.name, err)
			continue
		}
		if got != tt.want {
			t.Errorf("%s: expected %d bytes, got %d", tt.name, tt.want, got)
		}
	}

	if _, err := learngl.DataSize("nope"); err == nil {
		t.Error("expected error for string data")
	}
}

func TestLayoutValidateAnyOrder(t *testing.T) {
	l := learngl.VertexLayout{
		Stride: 32,
		Attributes: []learngl.Attribute{
			{Name: "texCoord", Location: 2, Components: 2, Type: learngl.Float32, Offset: 24},
			{Name: "position", Location: 0, Components: 3, Type: learngl.Float32, Offset: 0},
		},
	}
	if err := l.Validate(); err != nil {
		t.Errorf("attributes listed out of offset order should be valid: %v", err)
	}

	l.Attributes = append(l.Attributes, learngl.Attribute{Name: "color", Location: 1, Components: 3, Type: learngl.Float32, Offset: 20})
	if err := l.Validate(); err == nil {
		t.Error("expected overlap error for color running into texCoord")
	}
}

func TestLayoutCheckData(t *testing.T) {
	cube, _ := learngl.Cube()
	var quadArray [4]learngl.Vertex
	copy(quadArray[:], learngl.Quad)

	tests := []struct {
		name    string
		layout  learngl.VertexLayout
		data    any
		wantErr string
	}{
		{"textured cube", learngl.LayoutTextured, cube, ""},
		{"colored triangle", learngl.LayoutColored, learngl.ColoredTriangle, ""},
		{"flat positions", learngl.LayoutPosition, learngl.Triangle, ""},
		{"pointer to array", learngl.LayoutTextured, &quadArray, ""},
		{"position only of a textured vertex", learngl.VertexLayout{
			Stride:     32,
			Attributes: []learngl.Attribute{{Name: "position", Components: 3, Type: learngl.Float32}},
		}, cube, ""},
		{"cube with colored layout", learngl.LayoutColored, cube, "stride is 24"},
		{"shifted attribute", learngl.VertexLayout{
			Stride:     32,
			Attributes: []learngl.Attribute{{Name: "position", Components: 3, Type: learngl.Float32, Offset: 4}},
		}, cube, "matches no field"},
		{"wrong component type", learngl.VertexLayout{
			Stride:     32,
			Attributes: []learngl.Attribute{{Name: "position", Components: 3, Type: learngl.Uint32}},
		}, cube, "matches no field"},
		{"flat data with odd stride", learngl.Packed(learngl.Format{Name: "p", Components: 3, Type: learngl.Uint16}), learngl.Triangle, "whole number"},
		{"strings", learngl.LayoutPosition, []string{"a"}, "unsupported component type"},
		{"nil", learngl.LayoutPosition, nil, "nil"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.layout.CheckData(tt.data)
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("CheckData: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("expected error containing %q, got %v", tt.wantErr, err)
			}
		})
	}
}
