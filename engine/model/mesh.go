package model

// mesh is the implementation of the Mesh interface.
type mesh struct {
	name     string
	vertices []GPUVertex
	lit      []GPULitVertex
	indices  []uint32
}

// Mesh defines the interface for static mesh geometry: an immutable list of
// vertices and triangle indices owned by the asset that created it. The
// shading core reads vertex data through the marshaled buffers only; meshes
// are never mutated after construction.
//
// A mesh carries either basic vertices (position + UV) or lit vertices
// (position + UV + tangent frame), matching the pipeline variant it is drawn
// with. The accessor for the other variant returns nil.
type Mesh interface {
	// Name retrieves the mesh identifier.
	//
	// Returns:
	//   - string: the name of the mesh
	Name() string

	// Vertices retrieves the basic vertex list, or nil for a lit mesh.
	//
	// Returns:
	//   - []GPUVertex: the basic vertices or nil
	Vertices() []GPUVertex

	// LitVertices retrieves the lit vertex list, or nil for a basic mesh.
	//
	// Returns:
	//   - []GPULitVertex: the lit vertices or nil
	LitVertices() []GPULitVertex

	// Indices retrieves the triangle index list.
	//
	// Returns:
	//   - []uint32: the triangle indices
	Indices() []uint32

	// IndexCount returns the number of indices, used for draw calls.
	//
	// Returns:
	//   - int: the index count
	IndexCount() int

	// MarshalVertices serializes the vertex list (basic or lit, whichever is
	// present) into a byte buffer suitable for GPU vertex buffer upload.
	//
	// Returns:
	//   - []byte: the serialized vertex data
	MarshalVertices() []byte

	// MarshalIndices serializes the index list into a byte buffer suitable for
	// GPU index buffer upload (uint32 little-endian).
	//
	// Returns:
	//   - []byte: the serialized index data
	MarshalIndices() []byte
}

var _ Mesh = &mesh{}

// NewMesh creates a basic mesh from position/UV vertices and triangle indices.
//
// Parameters:
//   - name: the mesh identifier
//   - vertices: the basic vertex list
//   - indices: the triangle index list
//
// Returns:
//   - Mesh: the constructed mesh
func NewMesh(name string, vertices []GPUVertex, indices []uint32) Mesh {
	return &mesh{
		name:     name,
		vertices: vertices,
		indices:  indices,
	}
}

// NewLitMesh creates a lit mesh from tangent-frame vertices and triangle indices.
//
// Parameters:
//   - name: the mesh identifier
//   - vertices: the lit vertex list (position, UV, normal, tangent, bitangent)
//   - indices: the triangle index list
//
// Returns:
//   - Mesh: the constructed mesh
func NewLitMesh(name string, vertices []GPULitVertex, indices []uint32) Mesh {
	return &mesh{
		name:    name,
		lit:     vertices,
		indices: indices,
	}
}

func (m *mesh) Name() string {
	return m.name
}

func (m *mesh) Vertices() []GPUVertex {
	return m.vertices
}

func (m *mesh) LitVertices() []GPULitVertex {
	return m.lit
}

func (m *mesh) Indices() []uint32 {
	return m.indices
}

func (m *mesh) IndexCount() int {
	return len(m.indices)
}

func (m *mesh) MarshalVertices() []byte {
	if m.lit != nil {
		buf := make([]byte, 0, len(m.lit)*56)
		for i := range m.lit {
			buf = append(buf, m.lit[i].Marshal()...)
		}
		return buf
	}
	buf := make([]byte, 0, len(m.vertices)*20)
	for i := range m.vertices {
		buf = append(buf, m.vertices[i].Marshal()...)
	}
	return buf
}

func (m *mesh) MarshalIndices() []byte {
	buf := make([]byte, len(m.indices)*4)
	for i, idx := range m.indices {
		buf[i*4] = byte(idx)
		buf[i*4+1] = byte(idx >> 8)
		buf[i*4+2] = byte(idx >> 16)
		buf[i*4+3] = byte(idx >> 24)
	}
	return buf
}
