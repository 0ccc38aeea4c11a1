// Package cjson implements the Chemical JSON (CJSON) document model.
//
// A CJSON document describes exactly one molecular or periodic system:
// atoms, bonds, properties, spectra, orbitals, unit cells and the layer
// settings used by visualization tools. Store multiple systems as separate
// documents.
//
// The package exposes two operations on the model:
//
//   - [Validate] (and [ValidateJSON]) parse an untyped JSON value into a
//     [Document], failing with a [*StructuralError] when a required member is
//     missing, a member has the wrong type, or a fixed-arity array such as
//     unitCell.cellVectors has the wrong length.
//   - [EmitSchema] (and [Schema]) describe the full model as a Draft-07 JSON
//     Schema.
//
// # Wire Names
//
// Members whose wire names are not Go identifiers ("3d", "3dFractional",
// "3dSets", "Ball and Stick", "Close Contacts", "Van der Waals") are mapped
// through `json` struct tags only. Decoding accepts only the wire name and
// encoding writes only the wire name.
//
// # Defaults and Nulls
//
// Defaults apply when a member is absent: chemicalJson is 1,
// properties.totalCharge is 0, properties.totalSpinMultiplicity is 1 and
// unitCell.cellVectors is nine zeros. [Validate] treats an explicit null
// object member as absent, so defaults also apply to nulls.
//
// # Semantic Checks
//
// Cross-member rules (every per-atom array agrees on the atom count, orbitals
// need a basis set, the version is understood, ...) are not part of the
// schema. [Document.Check] reports them as [SemanticWarning] values, and
// [WithStrict] makes [Validate] fail on any of them.
package cjson
