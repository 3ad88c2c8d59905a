package otquery

import (
	"fmt"

	"golang.org/x/image/font/sfnt"
)

// BoundingBox describes the bounding box of a glyph, in font design units.
type BoundingBox struct {
	MinX, MinY sfnt.Units
	MaxX, MaxY sfnt.Units
}

// IsEmpty reports whether this box has zero area.
func (bbox BoundingBox) IsEmpty() bool {
	return bbox.MaxX-bbox.MinX == 0 || bbox.MaxY-bbox.MinY == 0
}

// Dx returns the horizontal extent of this box.
func (bbox BoundingBox) Dx() sfnt.Units {
	return bbox.MaxX - bbox.MinX
}

// Dy returns the vertical extent of this box.
func (bbox BoundingBox) Dy() sfnt.Units {
	return bbox.MaxY - bbox.MinY
}

func (bbox BoundingBox) String() string {
	return fmt.Sprintf("x: [%d, %d]  y: [%d, %d]", bbox.MinX, bbox.MaxX, bbox.MinY, bbox.MaxY)
}
