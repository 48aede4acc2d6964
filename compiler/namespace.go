package compiler

import (
	"encoding/hex"
	"path/filepath"

	"golang.org/x/crypto/blake2b"
)

// namespaceTag derives the 8 hex-character suffix an imported file's labels
// and data symbols are tagged with, so that two imported files whose block
// counters both happen to reach the same number do not collide in the final
// NASM text. The root file of a compile is never tagged: it keeps bare
// labels such as `.Lexit3:`.
//
// BLAKE2b-256 over the canonicalized path is overkill for collision
// avoidance at this scale, but a fixed-width tag is simpler to reason about
// than anything derived from the path's own length or contents.
func namespaceTag(canonicalPath string) (string, error) {
	h, err := blake2b.New256(nil)
	if err != nil {
		return "", err
	}
	if _, err := h.Write([]byte(filepath.ToSlash(canonicalPath))); err != nil {
		return "", err
	}
	sum := h.Sum(nil)
	return hex.EncodeToString(sum[:4]), nil
}

// suffixed appends a namespace tag to a label or data symbol, unless tag is
// empty (the root file's own symbols are never suffixed).
func suffixed(name, tag string) string {
	if tag == "" {
		return name
	}
	return name + "_" + tag
}
