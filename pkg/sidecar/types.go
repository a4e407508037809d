package sidecar

// Category is the domain type for the top-level groupings of the MediaHaven
// sidecar metadata model. The set is closed: adding a category is a schema
// change to this package, not runtime configuration.
type Category string

// Category constants (typed).
const (
	CategoryDynamic   Category = "Dynamic"
	CategoryTechnical Category = "Technical"
)

// categoryOrder fixes the order categories are emitted in so that output is
// reproducible regardless of map iteration order.
var categoryOrder = []Category{CategoryDynamic, CategoryTechnical}

// Metadata maps a category to its field name/value pairs. Field values are
// written to the document verbatim, beyond standard XML text escaping.
type Metadata map[Category]map[string]string

// MediaHaven metadata model constants. Both namespace URIs embed the model
// version, which is also carried as the root element's version attribute.
const (
	Version = "19.4"

	NamespaceMHS = "https://zeticon.mediahaven.com/metadata/" + Version + "/mhs/"
	NamespaceMH  = "https://zeticon.mediahaven.com/metadata/" + Version + "/mh/"

	prefixMHS = "mhs"
	prefixMH  = "mh"

	xmlEncoding = "UTF-8"
)

// fieldPrefix returns the namespace prefix for field elements of c. Technical
// fields live in the mh namespace; Dynamic fields carry a bare local name.
// The asymmetry is the downstream consumer's parsing contract, not a choice.
func (c Category) fieldPrefix() string {
	switch c {
	case CategoryTechnical:
		return prefixMH
	case CategoryDynamic:
		return ""
	}
	return ""
}

func (c Category) known() bool {
	switch c {
	case CategoryDynamic, CategoryTechnical:
		return true
	}
	return false
}
