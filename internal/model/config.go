package model

// DefaultPrefix and DefaultRepo are used when the schema does not configure
// its own namespace.
const (
	DefaultPrefix = "md"
	DefaultRepo   = "http://mdmodel.net/"
)

// Config is the namespace table of a schema: the primary prefix under which
// canonical terms are minted, the repository IRI that prefix resolves to,
// additional semantic prefixes, and XML namespace bindings.
type Config struct {
	// Prefix is the primary prefix; the canonical type term of an object is
	// "<prefix>:<ObjectName>".
	Prefix string `json:"prefix,omitempty" yaml:"prefix,omitempty"`
	// Repo is the IRI the primary prefix resolves to.
	Repo string `json:"repo,omitempty" yaml:"repo,omitempty"`
	// Prefixes is the ordered prefix → IRI table copied verbatim into the
	// namespace portion of every emitted context map.
	Prefixes OrderedMap `json:"prefixes,omitempty" yaml:"prefixes,omitempty"`
	// NSMap is the ordered XML namespace table used by the XML backends.
	NSMap OrderedMap `json:"nsmap,omitempty" yaml:"nsmap,omitempty"`
}

// Normalized returns a copy with defaults applied and the primary prefix
// guaranteed to appear at the head of the prefix table.
func (c Config) Normalized() Config {
	out := c
	if out.Prefix == "" {
		out.Prefix = DefaultPrefix
	}
	if out.Repo == "" {
		out.Repo = DefaultRepo
	}
	if _, ok := out.Prefixes.Get(out.Prefix); !ok {
		out.Prefixes = append(OrderedMap{{Key: out.Prefix, Value: out.Repo}}, out.Prefixes...)
	}
	return out
}
