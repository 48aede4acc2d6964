package compiler

import "fmt"

// debugSymbols, when enabled, interleaves a source-line comment with every
// statement's emitted instructions. Package-level rather than
// threaded through every lowering call because it is a whole-compile,
// set-once-at-startup option, not per-call state.
var debugSymbols bool

// EnableDebugSymbols turns on source-line comments in emitted assembly.
// Intended to be called once, before Compile, from the CLI driver.
func EnableDebugSymbols() {
	debugSymbols = true
}

// Compiler is the whole lowering engine: one instance is built per call to
// Compile and lowers every file the module loader reaches into a single
// pair of NASM text buffers, using the smaller named collaborators (symtab,
// functab, frame, buffer) the rest of this package defines instead of one
// flat struct of maps and counters.
type Compiler struct {
	instr *buffer
	data  *buffer
	bss   *buffer

	vars  *symtab
	funcs *functab

	fr *frame

	// tag is the current file's namespace suffix (empty for the root
	// file), consulted whenever a label or generated data symbol is
	// emitted.
	tag string

	// dataCounter numbers string-literal data symbols (data0, data1, ...)
	// across the whole compile.
	dataCounter int
}

func newCompiler() *Compiler {
	return &Compiler{
		instr: &buffer{},
		data:  &buffer{},
		bss:   &buffer{},
		vars:  newSymtab(),
		funcs: newFunctab(),
		fr:    newFrame(),
	}
}

// Compile lowers the Nemet program rooted at path, following its imports,
// into three NASM text fragments: the instruction stream, the data
// section's literal definitions, and the bss reservations of uninitialized
// statics. Callers that want a complete assembly file hand all three to the
// writer package.
func Compile(path string) (instrText, dataText, bssText string, err error) {
	loader := newModuleLoader()
	files, err := loader.load(path, nil, true)
	if err != nil {
		return "", "", "", err
	}

	c := newCompiler()

	// Pass one: register every function's signature up front, so a call
	// site anywhere in the module graph can resolve a callee regardless of
	// load order (imports are loaded before the importer, but the importer
	// may itself be imported by something loaded earlier in a diamond).
	for _, lf := range files {
		for _, item := range lf.Program.Items {
			if item.Func == nil {
				continue
			}
			if !lf.exported(item.Func.Name) {
				continue
			}
			c.funcs.declare(item.Func.Name, &funcSig{Params: item.Func.Params, Return: item.Func.Return})
		}
	}

	for _, lf := range files {
		c.tag = lf.Tag
		for _, item := range lf.Program.Items {
			switch {
			case item.Static != nil:
				if err := c.lowerStatic(item.Static); err != nil {
					return "", "", "", err
				}
			case item.Func != nil:
				if !lf.exported(item.Func.Name) {
					continue
				}
				if err := c.lowerFunction(item.Func); err != nil {
					return "", "", "", err
				}
			}
		}
	}

	if len(c.vars.scopes) != 0 {
		return "", "", "", errAt(ErrInternal, Pos{}, "scope stack not empty at end of compile")
	}

	return c.instr.String(), c.data.String(), c.bss.String(), nil
}

func (c *Compiler) label(tag string) string {
	return suffixed(c.fr.label(tag), c.tag)
}

// funcLabel is the symbol a function's body is emitted under: main always
// becomes the ELF entry point, everything else keeps its source name
// (namespacing only applies to the compiler-generated local labels, string
// data and static variables, never to a function's own public name, so two imports can
// still call each other by name).
func funcLabel(name string) string {
	if name == "main" {
		return "_start"
	}
	return name
}

func dataSymbol(id int, tag string) string {
	return suffixed(fmt.Sprintf("data%d", id), tag)
}

func lenSymbol(id int, tag string) string {
	return suffixed(fmt.Sprintf("len%d", id), tag)
}
