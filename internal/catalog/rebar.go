package catalog

import "slices"

// rebarDiameters are the bar sizes (mm) available to the detailing stage.
var rebarDiameters = []int{6, 8, 10, 12, 14, 16, 18, 20, 22, 25, 28, 32}

// RebarDiameters returns a copy of the available bar sizes.
func RebarDiameters() []int {
	return slices.Clone(rebarDiameters)
}

// ValidDiameter reports whether d is a stocked bar size.
func ValidDiameter(d int) bool {
	_, ok := slices.BinarySearch(rebarDiameters, d)
	return ok
}
