// Package sourcemap accumulates the raw mapping entries the emitter
// produces alongside generated Go source: source files, interned names,
// and per-position correspondences. Per spec.md §6, VLQ-encoding these
// into a conventional `.map` payload is left to a downstream tool; this
// package only owns the pre-encoding bookkeeping (version, sources,
// names, mappings, sourcesContent).
package sourcemap

// Mapping is one generated-position -> original-position correspondence.
type Mapping struct {
	GeneratedLine   int
	GeneratedColumn int
	SourceIndex     int
	OriginalLine    int
	OriginalColumn  int
	NameIndex       int // -1 when the mapping carries no symbol name
}

// Map is the raw, unencoded source-map payload for one emitted module.
type Map struct {
	Version        int
	Sources        []string
	SourcesContent []string
	Names          []string
	Mappings       []Mapping
}

// New creates an empty map at source-map version 3.
func New() *Map {
	return &Map{Version: 3}
}

// AddSource registers a source file, returning its index for use in
// Record. Re-adding the same path returns the existing index.
func (m *Map) AddSource(path, content string) int {
	for i, s := range m.Sources {
		if s == path {
			return i
		}
	}
	m.Sources = append(m.Sources, path)
	m.SourcesContent = append(m.SourcesContent, content)
	return len(m.Sources) - 1
}

// AddName registers a symbol name, returning its index for use in Record.
func (m *Map) AddName(name string) int {
	for i, n := range m.Names {
		if n == name {
			return i
		}
	}
	m.Names = append(m.Names, name)
	return len(m.Names) - 1
}

// Record appends one mapping entry. Pass -1 for nameIndex when the
// mapping carries no symbol name.
func (m *Map) Record(genLine, genCol, sourceIndex, origLine, origCol, nameIndex int) {
	m.Mappings = append(m.Mappings, Mapping{
		GeneratedLine:   genLine,
		GeneratedColumn: genCol,
		SourceIndex:     sourceIndex,
		OriginalLine:    origLine,
		OriginalColumn:  origCol,
		NameIndex:       nameIndex,
	})
}
