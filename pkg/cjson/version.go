package cjson

import "slices"

// CurrentVersion is the chemicalJson format version written by this package.
// It only changes for backwards-incompatible changes to the format.
const CurrentVersion = 1

// SupportedVersions lists the chemicalJson versions whose member meanings
// this package understands.
var SupportedVersions = []int{CurrentVersion}

// IsSupportedVersion reports whether v is a known chemicalJson version.
func IsSupportedVersion(v int) bool {
	return slices.Contains(SupportedVersions, v)
}
