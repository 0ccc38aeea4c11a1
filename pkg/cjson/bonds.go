package cjson

// Bonds describes covalent bonds between atoms.
type Bonds struct {
	Connections Connections `json:"connections" jsonschema:"required" jsonschema_description:"Atom index pairs for each bond."`
	Order       []int       `json:"order"       jsonschema:"required" jsonschema_description:"List of bond orders, one per bond."`
}

// Connections lists the atom index pairs of each bond, flattened, so its
// length is twice the bond count.
type Connections struct {
	Index []int `json:"index" jsonschema:"required" jsonschema_description:"Flattened atom index pairs [ a1, b1, a2, b2, ... ]"`
}

// Count returns the number of bonds described by the connection pairs.
func (b Bonds) Count() int {
	return len(b.Connections.Index) / 2
}

// Pairs returns the atom index pair of each bond.
func (b Bonds) Pairs() [][2]int {
	idx := b.Connections.Index
	out := make([][2]int, 0, len(idx)/2)

	for i := 0; i+1 < len(idx); i += 2 {
		out = append(out, [2]int{idx[i], idx[i+1]})
	}

	return out
}
