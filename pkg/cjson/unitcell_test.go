package cjson_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/macropower/chemicaljson/pkg/cjson"
)

func TestUnitCell(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		cell       *cjson.UnitCell
		want       [3][3]float64
		wantVolume float64
		wantCell   bool
	}{
		"Cubic": {
			cell:       cjson.NewUnitCell(2, 3, 4, 90, 90, 90),
			want:       [3][3]float64{{2, 0, 0}, {0, 3, 0}, {0, 0, 4}},
			wantVolume: 24,
		},
		"Hexagonal": {
			cell: cjson.NewUnitCell(1, 1, 2, 90, 90, 120),
			want: [3][3]float64{
				{1, 0, 0},
				{-0.5, 0.8660254037844386, 0},
				{0, 0, 2},
			},
			wantVolume: 1.7320508075688772,
		},
		"CellVectors": {
			cell: &cjson.UnitCell{
				A: 1, B: 1, C: 1, Alpha: 90, Beta: 90, Gamma: 90,
				CellVectors: []float64{5, 0, 0, 1, 5, 0, 0, 0, 5},
			},
			want:       [3][3]float64{{5, 0, 0}, {1, 5, 0}, {0, 0, 5}},
			wantVolume: 125,
			wantCell:   true,
		},
		"ShortCellVectors": {
			cell: &cjson.UnitCell{
				A: 1, B: 1, C: 1, Alpha: 90, Beta: 90, Gamma: 90,
				CellVectors: []float64{5, 0, 0},
			},
			want:       [3][3]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}},
			wantVolume: 1,
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.wantCell, tc.cell.HasCellVectors())

			got := tc.cell.Vectors()
			for i := range got {
				assert.InDeltaSlice(t, tc.want[i][:], got[i][:], 1e-9, "vector %d", i)
			}

			assert.InDelta(t, tc.wantVolume, tc.cell.Volume(), 1e-9)
		})
	}
}

func TestNewUnitCellDefaults(t *testing.T) {
	t.Parallel()

	cell := cjson.NewUnitCell(1, 2, 3, 90, 90, 90)
	assert.Len(t, cell.CellVectors, cjson.CellVectorsLength)
	assert.False(t, cell.HasCellVectors())
}
