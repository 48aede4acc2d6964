package compiler

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// loadedFile is one entry on the loader's visited set: its canonicalized
// path (the cycle-detection key) and the namespace tag its labels and data
// symbols are suffixed with.
type loadedFile struct {
	canonical string
	tag       string
}

// moduleLoader walks the import graph rooted at the file passed to Compile,
// parsing each file exactly once and handing its Program to the Compiler in
// import order: every file's imports are loaded and lowered before the file
// itself.
type moduleLoader struct {
	visited []loadedFile
	// visiting is the current load path, used for cycle detection: a file
	// reached again while still on this stack is a cycle, not a diamond.
	visiting map[string]bool
}

func newModuleLoader() *moduleLoader {
	return &moduleLoader{visiting: make(map[string]bool)}
}

// resolveImportPath appends the .nmt suffix imports are written without, and
// resolves it relative to the importing file's own directory.
func resolveImportPath(fromFile, importPath string) string {
	if !strings.HasSuffix(importPath, ".nmt") {
		importPath += ".nmt"
	}
	if filepath.IsAbs(importPath) {
		return importPath
	}
	return filepath.Join(filepath.Dir(fromFile), importPath)
}

// load parses path and recursively loads its imports, returning the ordered
// list of (program, tag) pairs to lower: every import this file reaches,
// each exactly once, followed by the file itself. isRoot controls whether
// the file's own symbols are tagged (the root file never is).
func (m *moduleLoader) load(path string, exportFilter []string, isRoot bool) ([]loadedProgram, error) {
	canonical, err := filepath.Abs(path)
	if err == nil {
		if resolved, rerr := filepath.EvalSymlinks(canonical); rerr == nil {
			canonical = resolved
		}
	} else {
		canonical = path
	}

	if m.visiting[canonical] {
		return nil, errAt(ErrImportCycle, Pos{File: path}, "import cycle detected at %s", path)
	}
	for _, lf := range m.visited {
		if lf.canonical == canonical {
			// Already loaded via another import path (a diamond, not a
			// cycle): load nothing new.
			return nil, nil
		}
	}

	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	prog, err := parseProgram(path, string(src))
	if err != nil {
		return nil, err
	}

	m.visiting[canonical] = true
	defer delete(m.visiting, canonical)

	var tag string
	if !isRoot {
		tag, err = namespaceTag(canonical)
		if err != nil {
			return nil, err
		}
	}
	m.visited = append(m.visited, loadedFile{canonical: canonical, tag: tag})

	var result []loadedProgram
	for _, item := range prog.Items {
		if item.Import == nil {
			continue
		}
		childPath := resolveImportPath(path, item.Import.Path)
		children, err := m.load(childPath, item.Import.Names, false)
		if err != nil {
			return nil, err
		}
		result = append(result, children...)
	}

	result = append(result, loadedProgram{
		Program:      prog,
		Tag:          tag,
		ExportFilter: exportFilter,
		IsRoot:       isRoot,
		File:         path,
	})
	return result, nil
}

// loadedProgram is one file's parsed contents plus the metadata the lowerer
// needs to place its functions and statics into the whole-module namespace.
type loadedProgram struct {
	Program *Program
	Tag     string
	// ExportFilter restricts which top-level functions of an imported file
	// actually get lowered. The root file lowers everything; an imported
	// file with a nil filter (an import with no name list) lowers none of
	// its functions.
	ExportFilter []string
	IsRoot       bool
	File         string
}

func (lp loadedProgram) exported(name string) bool {
	if lp.IsRoot {
		return true
	}
	for _, n := range lp.ExportFilter {
		if n == name {
			return true
		}
	}
	return false
}
