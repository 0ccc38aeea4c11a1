package cjson_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/macropower/chemicaljson/pkg/cjson"
)

func TestCoords(t *testing.T) {
	t.Parallel()

	c := cjson.Coords{
		XYZ:     []float64{0, 0, 0, 1, 2, 3, 9},
		XYZSets: [][]float64{{1, 1, 1}},
	}

	assert.Equal(t, [][3]float64{{0, 0, 0}, {1, 2, 3}}, c.Positions())

	conf, ok := c.Conformer(0)
	assert.True(t, ok)
	assert.Equal(t, [][3]float64{{1, 1, 1}}, conf)

	_, ok = c.Conformer(1)
	assert.False(t, ok)

	_, ok = c.Conformer(-1)
	assert.False(t, ok)
}

func TestBonds(t *testing.T) {
	t.Parallel()

	b := cjson.Bonds{
		Connections: cjson.Connections{Index: []int{0, 1, 0, 2}},
		Order:       []int{1, 2},
	}

	assert.Equal(t, 2, b.Count())
	assert.Equal(t, [][2]int{{0, 1}, {0, 2}}, b.Pairs())
	assert.Empty(t, cjson.Bonds{}.Pairs())
}

func TestPartialCharges(t *testing.T) {
	t.Parallel()

	p := cjson.PartialCharges{
		"Mulliken":  {-0.8, 0.4, 0.4},
		"Gasteiger": {-0.41, 0.205, 0.205},
		"mulliken":  {1, 2, 3},
	}

	assert.Equal(t, []string{"Gasteiger", "Mulliken", "mulliken"}, p.Methods())

	got, ok := p.Get("Mulliken")
	assert.True(t, ok)
	assert.Equal(t, []float64{-0.8, 0.4, 0.4}, got)

	got, ok = p.Get("mulliken")
	assert.True(t, ok)
	assert.Equal(t, []float64{1, 2, 3}, got)

	got, ok = p.Get("GASTEIGER")
	assert.True(t, ok)
	assert.Equal(t, []float64{-0.41, 0.205, 0.205}, got)

	_, ok = p.Get("EEM")
	assert.False(t, ok)

	var empty cjson.PartialCharges
	assert.Empty(t, empty.Methods())
}

func TestLayerStyles(t *testing.T) {
	t.Parallel()

	l := cjson.Layer{
		Enable: cjson.Enable{
			BallAndStick: []bool{true},
			VanDerWaals:  []bool{false},
		},
		Settings: cjson.Settings{Cartoons: []string{"x"}},
		Visible:  []bool{true},
	}

	assert.Equal(t, 1, l.Count())
	assert.Equal(t, map[string][]bool{
		"Ball and Stick": {true},
		"Van der Waals":  {false},
	}, l.Enable.Styles())
	assert.Equal(t, map[string][]string{"Cartoons": {"x"}}, l.Settings.Styles())
}

func TestOrbitals(t *testing.T) {
	t.Parallel()

	assert.False(t, cjson.Orbitals{MOCoefficients: []float64{1}}.OpenShell())
	assert.True(t, cjson.Orbitals{AlphaCoefficients: []float64{1}}.OpenShell())
	assert.True(t, cjson.Orbitals{BetaCoefficients: []float64{1}}.OpenShell())
}

func TestVersion(t *testing.T) {
	t.Parallel()

	assert.True(t, cjson.IsSupportedVersion(cjson.CurrentVersion))
	assert.False(t, cjson.IsSupportedVersion(0))
	assert.False(t, cjson.IsSupportedVersion(2))
}

func TestVibrations(t *testing.T) {
	t.Parallel()

	v := cjson.Vibrations{Frequencies: []float64{1, 2, 3}}
	assert.Equal(t, 3, v.Count())
}
