package costfunction

// RecordAttributes attribute-table view of a line record, indexed the way the
// source layer orders its fields.
type RecordAttributes interface {
	GetAttribute(i int) string
	NumAttributes() int
}

// Strategy assign a scalar weight to a graph edge built from a line record
// segment of the given length.
type Strategy interface {
	Cost(distanceMeter float64, rec RecordAttributes) float64
	Name() string
}
