package geom

type BBox struct {
	MinX float64
	MinY float64
	MaxX float64
	MaxY float64
}

func (b *BBox) extend(pt [2]float64, first bool) {
	if first {
		*b = BBox{MinX: pt[0], MinY: pt[1], MaxX: pt[0], MaxY: pt[1]}
		return
	}
	if pt[0] < b.MinX {
		b.MinX = pt[0]
	}
	if pt[1] < b.MinY {
		b.MinY = pt[1]
	}
	if pt[0] > b.MaxX {
		b.MaxX = pt[0]
	}
	if pt[1] > b.MaxY {
		b.MaxY = pt[1]
	}
}

// Shape is one named landmass outline. Each polygon carries its rings
// (first outer, following holes); points are [lng, lat].
type Shape struct {
	Name     string
	Polygons [][][][2]float64
}

// Basemap is the background shape collection drawn under the markers.
type Basemap struct {
	Shapes []Shape
	BBox   BBox
}
