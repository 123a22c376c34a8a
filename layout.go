package learngl

import (
	"errors"
	"fmt"
	"reflect"
	"slices"
	"strconv"
)

// ComponentType is the numeric type of a single vertex attribute component.
type ComponentType int

const (
	Float32 ComponentType = iota
	Uint8
	Uint16
	Uint32
)

// Size returns the component size in bytes.
func (t ComponentType) Size() int {
	switch t {
	case Uint8:
		return 1
	case Uint16:
		return 2
	default:
		return 4
	}
}

func (t ComponentType) String() string {
	switch t {
	case Float32:
		return "float32"
	case Uint8:
		return "uint8"
	case Uint16:
		return "uint16"
	case Uint32:
		return "uint32"
	default:
		return "ComponentType(" + strconv.Itoa(int(t)) + ")"
	}
}

// Attribute describes one per-vertex input slot.
type Attribute struct {
	Name       string
	Location   uint32
	Components int32 // 1 to 4
	Type       ComponentType
	Normalized bool
	Offset     uintptr // bytes from the start of the vertex
}

// Size returns the attribute size in bytes.
func (a Attribute) Size() int {
	return int(a.Components) * a.Type.Size()
}

// VertexLayout maps the bytes of one interleaved vertex to attribute slots.
type VertexLayout struct {
	Attributes []Attribute
	Stride     int32
}

// Format is an attribute without a location or offset, used with Packed.
type Format struct {
	Name       string
	Components int32
	Type       ComponentType
	Normalized bool
}

// Common attribute formats.
var (
	Position2 = Format{Name: "position", Components: 2, Type: Float32}
	Position3 = Format{Name: "position", Components: 3, Type: Float32}
	Color3    = Format{Name: "color", Components: 3, Type: Float32}
	Color4    = Format{Name: "color", Components: 4, Type: Float32}
	ColorRGBA = Format{Name: "color", Components: 4, Type: Uint8, Normalized: true}
	TexCoord2 = Format{Name: "texCoord", Components: 2, Type: Float32}
)

// Packed builds a layout for tightly packed interleaved attributes.
// Attribute i gets location i and starts right after attribute i-1.
func Packed(formats ...Format) VertexLayout {
	var l VertexLayout
	var offset uintptr
	for i, f := range formats {
		a := Attribute{
			Name:       f.Name,
			Location:   uint32(i),
			Components: f.Components,
			Type:       f.Type,
			Normalized: f.Normalized,
			Offset:     offset,
		}
		l.Attributes = append(l.Attributes, a)
		offset += uintptr(a.Size())
	}
	l.Stride = int32(offset)
	return l
}

// LayoutOf derives a layout from a vertex struct using its real Go memory
// layout. Supported field types are float32, uint8, uint16, uint32 and arrays
// of 1 to 4 of them. Fields are assigned consecutive locations unless tagged
// with `location:"n"`; `gl:"normalized"` marks integer fields as normalized.
//
// Structs with implicit padding are rejected: the GPU would read the padding
// bytes as the next attribute.
func LayoutOf(vertex any) (VertexLayout, error) {
	t := reflect.TypeOf(vertex)
	if t == nil {
		return VertexLayout{}, errors.New("vertex layout: nil vertex")
	}
	for t.Kind() == reflect.Pointer || t.Kind() == reflect.Slice || t.Kind() == reflect.Array {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return VertexLayout{}, fmt.Errorf("vertex layout: %s is not a struct", t)
	}

	var l VertexLayout
	var next uintptr
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		components, ct, err := fieldFormat(f.Type)
		if err != nil {
			return VertexLayout{}, fmt.Errorf("vertex layout: field %s.%s: %w", t.Name(), f.Name, err)
		}
		if f.Offset != next {
			return VertexLayout{}, fmt.Errorf("vertex layout: field %s.%s: %d bytes of padding before it", t.Name(), f.Name, f.Offset-next)
		}

		loc := uint32(i)
		if tag, ok := f.Tag.Lookup("location"); ok {
			n, err := strconv.ParseUint(tag, 10, 32)
			if err != nil {
				return VertexLayout{}, fmt.Errorf("vertex layout: field %s.%s: bad location tag %q", t.Name(), f.Name, tag)
			}
			loc = uint32(n)
		}

		l.Attributes = append(l.Attributes, Attribute{
			Name:       f.Name,
			Location:   loc,
			Components: components,
			Type:       ct,
			Normalized: f.Tag.Get("gl") == "normalized",
			Offset:     f.Offset,
		})
		next = f.Offset + f.Type.Size()
	}
	if next != t.Size() {
		return VertexLayout{}, fmt.Errorf("vertex layout: %s has %d bytes of trailing padding", t.Name(), t.Size()-next)
	}
	l.Stride = int32(t.Size())
	return l, l.Validate()
}

// MustLayoutOf is like LayoutOf but panics on error.
// Use it for package-level vertex types whose layout is fixed at compile time.
func MustLayoutOf(vertex any) VertexLayout {
	l, err := LayoutOf(vertex)
	if err != nil {
		panic(err)
	}
	return l
}

func fieldFormat(t reflect.Type) (int32, ComponentType, error) {
	n := int32(1)
	if t.Kind() == reflect.Array {
		n = int32(t.Len())
		t = t.Elem()
		if n < 1 || n > 4 {
			return 0, 0, fmt.Errorf("array length %d outside 1..4", n)
		}
	}
	switch t.Kind() {
	case reflect.Float32:
		return n, Float32, nil
	case reflect.Uint8:
		return n, Uint8, nil
	case reflect.Uint16:
		return n, Uint16, nil
	case reflect.Uint32:
		return n, Uint32, nil
	default:
		return 0, 0, fmt.Errorf("unsupported component type %s", t)
	}
}

// Validate checks that every attribute fits inside the stride, that
// attributes do not overlap and that no location is used twice.
func (l VertexLayout) Validate() error {
	if len(l.Attributes) == 0 {
		return errors.New("vertex layout: no attributes")
	}
	if l.Stride <= 0 {
		return fmt.Errorf("vertex layout: invalid stride %d", l.Stride)
	}
	seen := make(map[uint32]string, len(l.Attributes))
	for _, a := range l.Attributes {
		if a.Components < 1 || a.Components > 4 {
			return fmt.Errorf("vertex layout: attribute %q has %d components", a.Name, a.Components)
		}
		if prev, ok := seen[a.Location]; ok {
			return fmt.Errorf("vertex layout: attributes %q and %q share location %d", prev, a.Name, a.Location)
		}
		seen[a.Location] = a.Name
	}

	// Attributes may be listed in any order; overlap is checked by offset.
	byOffset := slices.Clone(l.Attributes)
	slices.SortFunc(byOffset, func(a, b Attribute) int {
		return int(a.Offset) - int(b.Offset)
	})
	var end uintptr
	var prev string
	for _, a := range byOffset {
		if a.Offset < end {
			return fmt.Errorf("vertex layout: attribute %q at offset %d overlaps attribute %q", a.Name, a.Offset, prev)
		}
		end = a.Offset + uintptr(a.Size())
		prev = a.Name
		if end > uintptr(l.Stride) {
			return fmt.Errorf("vertex layout: attribute %q ends at byte %d past stride %d", a.Name, end, l.Stride)
		}
	}
	return nil
}

// CheckData reports whether data, a slice, array or pointer of vertices,
// is laid out in memory the way l describes. For struct vertices the
// struct size must equal the stride and every attribute must line up with
// a field of the same offset, component count and type. Flat scalar data
// must divide the stride into whole elements.
func (l VertexLayout) CheckData(data any) error {
	t := reflect.TypeOf(data)
	if t == nil {
		return errors.New("vertex data: nil")
	}
	for t.Kind() == reflect.Pointer || t.Kind() == reflect.Slice || t.Kind() == reflect.Array {
		t = t.Elem()
	}

	if t.Kind() != reflect.Struct {
		if _, _, err := fieldFormat(t); err != nil {
			return fmt.Errorf("vertex data: %w", err)
		}
		if l.Stride <= 0 || int(l.Stride)%int(t.Size()) != 0 {
			return fmt.Errorf("vertex data: stride %d is not a whole number of %s values", l.Stride, t)
		}
		return nil
	}

	fields, err := LayoutOf(reflect.Zero(t).Interface())
	if err != nil {
		return fmt.Errorf("vertex data: %w", err)
	}
	if fields.Stride != l.Stride {
		return fmt.Errorf("vertex data: %s is %d bytes but the layout stride is %d", t, fields.Stride, l.Stride)
	}
	for _, a := range l.Attributes {
		if !slices.ContainsFunc(fields.Attributes, func(f Attribute) bool {
			return f.Offset == a.Offset && f.Components == a.Components && f.Type == a.Type
		}) {
			return fmt.Errorf("vertex data: attribute %q (%d x %s at offset %d) matches no field of %s",
				a.Name, a.Components, a.Type, a.Offset, t)
		}
	}
	return nil
}

// Attribute returns the attribute with the given name.
func (l VertexLayout) Attribute(name string) (Attribute, bool) {
	for _, a := range l.Attributes {
		if a.Name == name {
			return a, true
		}
	}
	return Attribute{}, false
}

// VertexCount returns how many whole vertices fit in byteSize bytes.
func (l VertexLayout) VertexCount(byteSize int) (int, error) {
	if l.Stride <= 0 {
		return 0, fmt.Errorf("vertex layout: invalid stride %d", l.Stride)
	}
	if byteSize%int(l.Stride) != 0 {
		return 0, fmt.Errorf("vertex data of %d bytes is not a multiple of stride %d", byteSize, l.Stride)
	}
	return byteSize / int(l.Stride), nil
}

// DataSize returns the size in bytes of a slice or array of fixed-size
// values, as passed to a buffer upload.
func DataSize(data any) (int, error) {
	v := reflect.ValueOf(data)
	switch v.Kind() {
	case reflect.Slice:
		return v.Len() * int(v.Type().Elem().Size()), nil
	case reflect.Array:
		return int(v.Type().Size()), nil
	case reflect.Pointer:
		if v.IsNil() {
			return 0, errors.New("nil data")
		}
		return int(v.Type().Elem().Size()), nil
	default:
		return 0, fmt.Errorf("unsupported data type %T", data)
	}
}
