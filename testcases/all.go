package testcases

// All contains all test cases, grouped by category.
// The category name is used as a prefix in output filenames.
var All = map[string][]TestCase{
	"fill":      fillCases,
	"curve":     curveCases,
	"subpath":   subpathCases,
	"complex":   complexCases,
	"ctm":       ctmCases,
	"large":     largeCases,
	"precision": precisionCases,
}
