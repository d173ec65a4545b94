package main

// gridPoint is a single point of the static lattice, normalized to [-1, 1]
// per axis.
type gridPoint struct {
	x, y, z float32
}

// latticeCoord maps lattice index i in [0, dim) onto [-1, 1].
func latticeCoord(i, dim int) float32 {
	if dim <= 1 {
		return -1
	}
	return -1 + 2*float32(i)/float32(dim-1)
}

// buildGrid produces the dim^3 lattice covering [-1,1]^3, iterating z in the
// outer loop and x in the inner loop. The renderer addresses the slice with
// this same ordering, so the first point is (-1,-1,-1) and the last is
// (+1,+1,+1). Built once at startup and immutable thereafter.
func buildGrid(dim int) []gridPoint {
	points := make([]gridPoint, 0, dim*dim*dim)
	for z := 0; z < dim; z++ {
		for y := 0; y < dim; y++ {
			for x := 0; x < dim; x++ {
				points = append(points, gridPoint{
					x: latticeCoord(x, dim),
					y: latticeCoord(y, dim),
					z: latticeCoord(z, dim),
				})
			}
		}
	}
	return points
}
