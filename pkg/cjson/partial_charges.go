package cjson

import "strings"

// MullikenMethod is the charge-assignment method every partialCharges object
// carries, spelled "Mulliken" or "mulliken". Other method names are accepted
// alongside it.
const MullikenMethod = "Mulliken"

// PartialCharges maps a charge-assignment method name (e.g. "Mulliken",
// "Gasteiger") to one partial charge per atom.
type PartialCharges map[string][]float64

// Methods returns the method names in sorted order.
func (p PartialCharges) Methods() []string {
	return sortedKeys(map[string][]float64(p))
}

// Get returns the charges for method. An exact key match is preferred,
// otherwise the first case-insensitive match in sorted key order is used, so
// "mulliken" resolves a "Mulliken" entry.
func (p PartialCharges) Get(method string) ([]float64, bool) {
	if v, ok := p[method]; ok {
		return v, true
	}

	for _, k := range p.Methods() {
		if strings.EqualFold(k, method) {
			return p[k], true
		}
	}

	return nil, false
}
