package extrude

// LODRange is an inclusive interval of integer detail levels over which a
// mesh is valid to render.
type LODRange struct {
	Min, Max int
}

// Contains reports whether level lies within the range.
func (r LODRange) Contains(level int) bool {
	return level >= r.Min && level <= r.Max
}

// FullLODRange covers every valid detail level.
func FullLODRange() LODRange {
	return LODRange{Min: minLOD, Max: maxLOD}
}

// Mesh owns pre-triangulated geometry plus a material and a declared LOD
// range. Meshes are drawn through DrawMesh, which filters them against the
// target's configured level of detail.
type Mesh struct {
	Material Material
	Geometry Geometry
	LODRange LODRange
}

// LODRangeContains reports whether the mesh should render at level.
func (m Mesh) LODRangeContains(level int) bool {
	return m.LODRange.Contains(level)
}
