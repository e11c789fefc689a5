package template

// subset of genericMap from https://github.com/Masterminds/sprig/blob/master/functions.go
// only deterministic string and path helpers make sense in a page path
var allowedSprigFunctions = map[string]interface{}{
	// Strings
	"trunc":      nil,
	"trim":       nil,
	"upper":      nil,
	"lower":      nil,
	"title":      nil,
	"substr":     nil,
	"trimAll":    nil,
	"trimSuffix": nil,
	"trimPrefix": nil,
	"nospace":    nil,
	"snakecase":  nil,
	"camelcase":  nil,
	"kebabcase":  nil,
	"contains":   nil,
	"hasPrefix":  nil,
	"hasSuffix":  nil,
	"cat":        nil,
	"replace":    nil,
	"toString":   nil,

	"split":     nil,
	"splitList": nil,
	"join":      nil,

	// Defaults
	"default":  nil,
	"empty":    nil,
	"coalesce": nil,
	"ternary":  nil,

	// Paths:
	"base":  nil,
	"dir":   nil,
	"clean": nil,
	"ext":   nil,

	// Flow Control:
	"fail": nil,

	// Regex
	"regexMatch":             nil,
	"regexReplaceAll":        nil,
	"regexReplaceAllLiteral": nil,
}
