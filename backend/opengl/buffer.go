package opengl

import (
	"errors"
	"fmt"
	"reflect"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/go-theft-auto/learngl"
)

// glError drains the GL error queue and returns the first error, or nil.
func glError() error {
	var first uint32
	for {
		code := gl.GetError()
		if code == gl.NO_ERROR {
			break
		}
		if first == 0 {
			first = code
		}
	}
	if first == 0 {
		return nil
	}
	return fmt.Errorf("GL error 0x%04X (%s)", first, glErrorName(first))
}

func glErrorName(code uint32) string {
	switch code {
	case gl.INVALID_ENUM:
		return "invalid enum"
	case gl.INVALID_VALUE:
		return "invalid value"
	case gl.INVALID_OPERATION:
		return "invalid operation"
	case gl.INVALID_FRAMEBUFFER_OPERATION:
		return "invalid framebuffer operation"
	case gl.OUT_OF_MEMORY:
		return "out of memory"
	default:
		return "unknown"
	}
}

// checkGL reports the pending GL error, if any, for operation op.
func checkGL(op string) error {
	if err := glError(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// VertexArray is a vertex array object: the bound buffers plus the
// attribute layout describing them.
type VertexArray struct {
	id uint32
}

// NewVertexArray allocates a vertex array object.
func NewVertexArray() (VertexArray, error) {
	var id uint32
	gl.GenVertexArrays(1, &id)
	if id == 0 {
		return VertexArray{}, fmt.Errorf("gen vertex array: %w", errors.Join(errZeroName, glError()))
	}
	return VertexArray{id: id}, nil
}

// ID returns the GL name.
func (v VertexArray) ID() uint32 { return v.id }

// Bind makes the vertex array current.
func (v VertexArray) Bind() { gl.BindVertexArray(v.id) }

// Delete releases the vertex array. Safe to call on a zero value.
func (v *VertexArray) Delete() {
	if v.id != 0 {
		gl.DeleteVertexArrays(1, &v.id)
		v.id = 0
	}
}

var errZeroName = errors.New("driver returned object name 0")

// Buffer is a GL buffer object bound to one target.
type Buffer struct {
	id     uint32
	target uint32
	size   int
}

// NewBuffer allocates a buffer for target (gl.ARRAY_BUFFER or
// gl.ELEMENT_ARRAY_BUFFER) and uploads data to it once with STATIC_DRAW.
// data is a non-empty slice of fixed-size values, or a pointer to one such
// value or to an array of them. The buffer is left bound.
func NewBuffer(target uint32, data any) (Buffer, error) {
	ptr, size, err := uploadData(data)
	if err != nil {
		return Buffer{}, fmt.Errorf("buffer data: %w", err)
	}

	var id uint32
	gl.GenBuffers(1, &id)
	if id == 0 {
		return Buffer{}, fmt.Errorf("gen buffer: %w", errors.Join(errZeroName, glError()))
	}
	b := Buffer{id: id, target: target}
	gl.BindBuffer(target, id)
	gl.BufferData(target, size, ptr, gl.STATIC_DRAW)
	if err := checkGL("buffer data"); err != nil {
		b.Delete()
		return Buffer{}, err
	}

	var got int32
	gl.GetBufferParameteriv(target, gl.BUFFER_SIZE, &got)
	if int(got) != size {
		b.Delete()
		return Buffer{}, fmt.Errorf("buffer data: uploaded %d of %d bytes", got, size)
	}
	b.size = size
	return b, nil
}

// uploadData returns the address and byte size of data. Everything is
// checked before any GL object exists, so bad input never leaks a name.
func uploadData(data any) (unsafe.Pointer, int, error) {
	v := reflect.ValueOf(data)
	var elem reflect.Type
	switch v.Kind() {
	case reflect.Slice:
		elem = v.Type().Elem()
	case reflect.Pointer:
		if v.IsNil() {
			return nil, 0, errors.New("nil pointer")
		}
		elem = v.Type().Elem()
	case reflect.Array:
		return nil, 0, fmt.Errorf("pass a slice or pointer, not %T", data)
	default:
		return nil, 0, fmt.Errorf("unsupported data type %T", data)
	}
	if !plainData(elem) {
		return nil, 0, fmt.Errorf("%s contains pointers or non-numeric fields", elem)
	}

	size, err := learngl.DataSize(data)
	if err != nil {
		return nil, 0, err
	}
	if size == 0 {
		return nil, 0, errors.New("empty")
	}
	return v.UnsafePointer(), size, nil
}

// plainData reports whether t is made only of numbers, so its bytes can
// be handed to the driver as they are.
func plainData(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Int8, reflect.Uint8, reflect.Int16, reflect.Uint16,
		reflect.Int32, reflect.Uint32, reflect.Int64, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	case reflect.Array:
		return plainData(t.Elem())
	case reflect.Struct:
		for i := 0; i < t.NumField(); i++ {
			if !plainData(t.Field(i).Type) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// ID returns the GL name.
func (b Buffer) ID() uint32 { return b.id }

// Size returns the number of bytes uploaded.
func (b Buffer) Size() int { return b.size }

// Bind binds the buffer to its target.
func (b Buffer) Bind() { gl.BindBuffer(b.target, b.id) }

// Delete releases the buffer. Safe to call on a zero value.
func (b *Buffer) Delete() {
	if b.id != 0 {
		gl.DeleteBuffers(1, &b.id)
		b.id = 0
	}
}

func glComponentType(t learngl.ComponentType) uint32 {
	switch t {
	case learngl.Uint8:
		return gl.UNSIGNED_BYTE
	case learngl.Uint16:
		return gl.UNSIGNED_SHORT
	case learngl.Uint32:
		return gl.UNSIGNED_INT
	default:
		return gl.FLOAT
	}
}

// SetLayout describes each attribute of layout for the bound vertex array
// and array buffer and enables it.
func SetLayout(layout learngl.VertexLayout) error {
	if err := layout.Validate(); err != nil {
		return err
	}
	for _, a := range layout.Attributes {
		gl.VertexAttribPointerWithOffset(a.Location, a.Components, glComponentType(a.Type), a.Normalized, layout.Stride, a.Offset)
		gl.EnableVertexAttribArray(a.Location)
		if err := checkGL(fmt.Sprintf("attribute %q", a.Name)); err != nil {
			return err
		}
	}
	return nil
}

// Mesh is static geometry uploaded once: a vertex array, its vertex
// buffer and an optional index buffer.
type Mesh struct {
	vao      VertexArray
	vbo      Buffer
	ebo      Buffer
	vertices int32
	indices  int32
	mode     uint32
}

// NewMesh uploads vertices (a slice of vertex structs or a flat []float32)
// described by layout, and indices when non-empty. The vertex type must
// match layout, see VertexLayout.CheckData. Every allocation and upload is
// checked; on failure everything allocated so far is released.
func NewMesh(vertices any, indices []uint32, layout learngl.VertexLayout) (_ *Mesh, err error) {
	if err := layout.Validate(); err != nil {
		return nil, fmt.Errorf("mesh layout: %w", err)
	}
	if err := layout.CheckData(vertices); err != nil {
		return nil, fmt.Errorf("mesh vertices: %w", err)
	}
	size, err := learngl.DataSize(vertices)
	if err != nil {
		return nil, fmt.Errorf("mesh vertices: %w", err)
	}
	count, err := layout.VertexCount(size)
	if err != nil {
		return nil, fmt.Errorf("mesh vertices: %w", err)
	}
	for _, idx := range indices {
		if int(idx) >= count {
			return nil, fmt.Errorf("mesh indices: index %d out of range for %d vertices", idx, count)
		}
	}

	m := &Mesh{vertices: int32(count), indices: int32(len(indices)), mode: gl.TRIANGLES}
	defer func() {
		if err != nil {
			gl.BindVertexArray(0)
			m.Delete()
		}
	}()

	if m.vao, err = NewVertexArray(); err != nil {
		return nil, err
	}
	m.vao.Bind()

	if m.vbo, err = NewBuffer(gl.ARRAY_BUFFER, vertices); err != nil {
		return nil, fmt.Errorf("mesh vertices: %w", err)
	}
	if len(indices) > 0 {
		// The element buffer binding is stored in the vertex array.
		if m.ebo, err = NewBuffer(gl.ELEMENT_ARRAY_BUFFER, indices); err != nil {
			return nil, fmt.Errorf("mesh indices: %w", err)
		}
	}
	if err = SetLayout(layout); err != nil {
		return nil, fmt.Errorf("mesh layout: %w", err)
	}

	// The attribute pointers captured the array buffer, so it can be unbound.
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)
	glLogger.Debug("mesh uploaded", "vao", m.vao.id, "vertices", count, "indices", len(indices), "stride", layout.Stride)
	return m, nil
}

// VertexCount returns the number of vertices uploaded.
func (m *Mesh) VertexCount() int32 { return m.vertices }

// IndexCount returns the number of indices uploaded, 0 for non-indexed meshes.
func (m *Mesh) IndexCount() int32 { return m.indices }

// Bind binds the mesh's vertex array.
func (m *Mesh) Bind() { m.vao.Bind() }

// Draw binds the mesh and draws all of it as triangles.
func (m *Mesh) Draw() {
	m.vao.Bind()
	if m.indices > 0 {
		gl.DrawElementsWithOffset(m.mode, m.indices, gl.UNSIGNED_INT, 0)
		return
	}
	gl.DrawArrays(m.mode, 0, m.vertices)
}

// Delete releases the vertex array and buffers.
func (m *Mesh) Delete() {
	m.ebo.Delete()
	m.vbo.Delete()
	m.vao.Delete()
}
