package testcases

// All contains all shape test cases, grouped by category.
// The category name is used as a prefix in reference image filenames.
var All = map[string][]TestCase{
	"capsule":   capsuleCases,
	"roundrect": roundRectCases,
}

// Fills contains the paths used to test the rasteriser directly.
var Fills = fillCases
