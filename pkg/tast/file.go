package tast

import (
	"encoding/json"
	"fmt"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// ImportSpec is one imported binding within an Import statement.
type ImportSpec struct {
	ImportedName string `json:"importedName"`
	LocalName    string `json:"localName"`
	IsDefault    bool   `json:"isDefault,omitempty"`
	IsNamespace  bool   `json:"isNamespace,omitempty"`
}

// Import is a single `import ... from "source"` statement.
type Import struct {
	Loc        Location     `json:"loc"`
	Source     string       `json:"source"`
	Specifiers []ImportSpec `json:"specifiers,omitempty"`
}

// ExportSpec is one exported binding within an Export statement.
type ExportSpec struct {
	LocalName    string `json:"localName"`
	ExportedName string `json:"exportedName"`
}

// Export is a single `export ...` statement.
type Export struct {
	Loc        Location     `json:"loc"`
	Decl       *Declaration `json:"decl,omitempty"`
	Specifiers []ExportSpec `json:"specifiers,omitempty"`
	Source     string       `json:"source,omitempty"`
	IsDefault  bool         `json:"isDefault,omitempty"`
}

// TopLevelItem is one item of a File's source-ordered body: exactly one of
// Decl, Export, or Stmt is set. Keeping top-level order explicit (rather
// than bucketing into separate Declarations/Exports slices up front)
// matters because the emitter's blank-line policy and DCE both need the
// original source order, and because a bare top-level expression
// statement (later dropped by lowering) has to survive the round trip
// to lowering to be deliberately dropped there, not silently never parsed.
type TopLevelItem struct {
	Decl   *Declaration `json:"decl,omitempty"`
	Export *Export      `json:"export,omitempty"`
	Stmt   *Statement   `json:"stmt,omitempty"`
}

// File is the root typed-AST node for one source file — what the frontend
// hands to internal/lowering.
type File struct {
	Name    string         `json:"name"`
	Path    string         `json:"path"`
	Items   []TopLevelItem `json:"items"`
	Imports []Import       `json:"imports,omitempty"`
}

// ParseFile decodes a File from the JSON a frontend would emit.
func ParseFile(data []byte) (*File, error) {
	var f File
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("tast: decode file: %w", err)
	}
	return &f, nil
}

// LoadFromGJSON decodes a File from a raw typed-AST JSON payload emitted by
// a lenient frontend that may omit empty optional fields entirely (no
// "items" array at all for an empty file, no "imports" for a file with
// none). ParseFile's plain json.Unmarshal handles that fine for fields with
// Go zero values, but a caller driving `ts2go lower --format=raw-json` wants
// the raw document inspected and repaired before it's trusted — this walks
// it with gjson and backfills missing top-level fields with sjson before
// decoding, so a minimal `{"path":"x.ts"}` document round-trips the same as
// a fully-populated one.
func LoadFromGJSON(data []byte) (*File, error) {
	normalized := data
	var err error
	if !gjson.GetBytes(normalized, "items").Exists() {
		normalized, err = sjson.SetRawBytes(normalized, "items", []byte("[]"))
		if err != nil {
			return nil, fmt.Errorf("tast: backfill items: %w", err)
		}
	}
	if !gjson.GetBytes(normalized, "name").Exists() {
		normalized, err = sjson.SetBytes(normalized, "name", "")
		if err != nil {
			return nil, fmt.Errorf("tast: backfill name: %w", err)
		}
	}
	return ParseFile(normalized)
}

// QueryPath extracts a single field from a raw typed-AST JSON payload using
// a gjson path, without decoding the whole document into a File. Used by
// `ts2go lower --dump-path=...` to let a caller inspect exactly what a
// frontend sent for one node without building a throwaway struct.
func QueryPath(data []byte, path string) (string, error) {
	res := gjson.GetBytes(data, path)
	if !res.Exists() {
		return "", fmt.Errorf("tast: path %q not found", path)
	}
	return res.Raw, nil
}
