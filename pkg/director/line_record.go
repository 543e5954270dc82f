package director

import (
	"github.com/lintang-b-s/netgraph/pkg/geo"
)

// LineRecord one polyline feature from the source layer: the geometry plus
// the attribute row, fields ordered the way the layer orders them.
type LineRecord struct {
	geometry   []geo.Coordinate
	attributes []string
}

func NewLineRecord(geometry []geo.Coordinate, attributes []string) LineRecord {
	return LineRecord{
		geometry:   geometry,
		attributes: attributes,
	}
}

func (r *LineRecord) GetGeometry() []geo.Coordinate {
	return r.geometry
}

func (r *LineRecord) GetAttribute(i int) string {
	if i < 0 || i >= len(r.attributes) {
		return ""
	}
	return r.attributes[i]
}

func (r *LineRecord) NumAttributes() int {
	return len(r.attributes)
}
