// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

// The tag registry: per-document handle -> URI-prefix resolution, plus the
// fixed set of well-known tag URIs.

package core

const (
	NonSpecificQuestionTag = "?" // unknown, resolved by content
	NonSpecificBangTag     = "!" // non-plain implicit

	StrTag       = "tag:yaml.org,2002:str"
	SeqTag       = "tag:yaml.org,2002:seq"
	MapTag       = "tag:yaml.org,2002:map"
	NullTag      = "tag:yaml.org,2002:null"
	BoolTag      = "tag:yaml.org,2002:bool"
	IntTag       = "tag:yaml.org,2002:int"
	FloatTag     = "tag:yaml.org,2002:float"
	TimestampTag = "tag:yaml.org,2002:timestamp"
	BinaryTag    = "tag:yaml.org,2002:binary"
	OMapTag      = "tag:yaml.org,2002:omap"
	PairsTag     = "tag:yaml.org,2002:pairs"
	SetTag       = "tag:yaml.org,2002:set"
	MergeTag     = "tag:yaml.org,2002:merge"
	ValueTag     = "tag:yaml.org,2002:value"
	YamlTag      = "tag:yaml.org,2002:yaml"

	// CoreNamespaceTag is this library's own tag namespace, used for
	// extensions that have no YAML-core equivalent.
	CoreNamespaceTag = "tag:streamyaml.dev,2025:"

	DefaultScalarTag   = StrTag
	DefaultSequenceTag = SeqTag
	DefaultMappingTag  = MapTag
)

// TagDirective is one %TAG directive: a handle ("!", "!!" or "!foo!") and
// the URI prefix it expands to.
type TagDirective struct {
	Handle string
	Prefix string
}

// TagRegistry maps %TAG handles to URI prefixes for the current document.
// It is owned by the parser context, never shared across documents, and
// reset at every document boundary (§4.3).
type TagRegistry struct {
	handles map[string]string
	order   []string // declaration order, for directivesEnd==ifNecessary bookkeeping
}

// newTagRegistry returns a registry pre-populated with the two built-in
// handles.
func newTagRegistry() *TagRegistry {
	r := &TagRegistry{handles: make(map[string]string, 4)}
	r.handles["!"] = "!"
	r.handles["!!"] = "tag:yaml.org,2002:"
	return r
}

// reset restores the registry to its just-constructed state; called at
// every document boundary.
func (r *TagRegistry) reset() {
	r.handles = map[string]string{"!": "!", "!!": "tag:yaml.org,2002:"}
	r.order = nil
}

// declare registers an additional handle. It reports an error if the
// handle was already declared in this document (each handle may appear in
// at most one %TAG directive per document, §4.4).
func (r *TagRegistry) declare(handle, prefix string) error {
	if _, ok := r.handles[handle]; ok && handle != "!" && handle != "!!" {
		return &ParserError{Message: "duplicate %TAG directive for handle " + handle}
	}
	if _, wasDefault := r.handles[handle]; wasDefault && (handle == "!" || handle == "!!") {
		// redeclaring a default handle is allowed exactly once; track via order.
		for _, h := range r.order {
			if h == handle {
				return &ParserError{Message: "duplicate %TAG directive for handle " + handle}
			}
		}
	}
	r.handles[handle] = prefix
	r.order = append(r.order, handle)
	return nil
}

// resolve expands a handle+suffix shorthand tag into a full tag URI.
// Unknown handles are a parser error.
func (r *TagRegistry) resolve(handle, suffix string) (string, error) {
	prefix, ok := r.handles[handle]
	if !ok {
		return "", &ParserError{Message: "found undefined tag handle " + handle}
	}
	return prefix + suffix, nil
}

// directives returns the non-default %TAG directives declared so far, in
// declaration order, for presenting or for DocStart.Handles.
func (r *TagRegistry) directives() []TagDirective {
	out := make([]TagDirective, 0, len(r.order))
	for _, h := range r.order {
		out = append(out, TagDirective{Handle: h, Prefix: r.handles[h]})
	}
	return out
}
