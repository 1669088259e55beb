package torus

import "testing"

func TestSeamWrap(t *testing.T) {
	const (
		minorSeg = 4
		totVerts = 12 // 3 major rings of 4
	)
	for _, tc := range []struct {
		name  string
		idx   int
		twist int
		want  int
	}{
		{name: "inside range untouched", idx: 11, twist: 3, want: 11},
		{name: "zero untouched", idx: 0, twist: 3, want: 0},
		{name: "no twist wraps straight", idx: 12, twist: 0, want: 0},
		{name: "no twist keeps minor offset", idx: 14, twist: 0, want: 2},
		{name: "twist offsets wrap", idx: 12, twist: 1, want: 1},
		{name: "max twist below segment count", idx: 14, twist: minorSeg - 1, want: 1},
		{name: "twist equal to segment count", idx: 12, twist: minorSeg, want: 0},
		{name: "twist above segment count", idx: 13, twist: 9, want: 2},
	} {
		if got := seamWrap(tc.idx, totVerts, minorSeg, tc.twist); got != tc.want {
			t.Errorf("%s: seamWrap(%d, %d, %d, %d) = %d, want %d",
				tc.name, tc.idx, totVerts, minorSeg, tc.twist, got, tc.want)
		}
	}
}
