package datastructure

import "testing"

func TestFloatComparators(t *testing.T) {
	if !Eq(1.0, 1.0+1e-9) {
		t.Error("values within eps should be equal")
	}
	if Eq(1.0, 1.0+1e-3) {
		t.Error("values beyond eps should not be equal")
	}
	if Lt(1.0, 1.0+1e-9) {
		t.Error("Lt must not fire within eps")
	}
	if !Lt(1.0, 1.1) {
		t.Error("1.0 < 1.1")
	}
	if !Ge(1.0+1e-9, 1.0) || !Ge(1.1, 1.0) {
		t.Error("Ge should hold for equal-within-eps and greater values")
	}
	if !Le(1.0, 1.0+1e-9) || !Le(1.0, 1.1) {
		t.Error("Le should hold for equal-within-eps and smaller values")
	}
	if Gt(1.0+1e-9, 1.0) {
		t.Error("Gt must not fire within eps")
	}
}
