/*
Package ringsphere builds faceted spheres out of stacked horizontal rings of vertices.

Each ring (a tier) sits at a height and radius derived from an arc constant
measured from the top pole. Consecutive rings are stitched with outward wound
faces: a triangle fan against a pole, a quad strip between rings of equal
size and an uneven triangle stitch between rings of different size.

The coordinate system is right-handed with Z pointing up.

	m, err := ringsphere.Generate(ringsphere.Hemisphere())
	if err != nil {
		log.Fatal(err)
	}
	err = render.CreateOBJ(render.DefaultOBJPath, m)
*/
package ringsphere
