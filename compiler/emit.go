package compiler

import "fmt"

// memWord names the NASM size-override keyword for a memory operand of the
// given byte width. Nemet only ever moves 1, 2, 4 or 8 bytes at a time.
func memWord(size int) string {
	switch size {
	case 1:
		return "byte"
	case 2:
		return "word"
	case 4:
		return "dword"
	case 8:
		return "qword"
	default:
		panic(fmt.Sprintf("emit: unsupported operand size %d", size))
	}
}

// regSub returns the sub-register name for one of the System V general
// purpose registers at the given width, e.g. regSub("a", 4) == "eax".
// Transcribed register-family by register-family rather than collapsed
// into one generic rule, because the naming scheme genuinely differs
// between the a/b/c/d family, the sp/bp and si/di families, and the
// r8-r11 family.
func regSub(register string, size int) string {
	switch register {
	case "a", "b", "c", "d":
		switch size {
		case 1:
			return register + "l"
		case 2:
			return register + "x"
		case 4:
			return "e" + register + "x"
		case 8:
			return "r" + register + "x"
		}
	case "sp", "bp", "si", "di":
		switch size {
		case 1:
			return register + "l"
		case 2:
			return register
		case 4:
			return "e" + register
		case 8:
			return "r" + register
		}
	case "r8", "r9", "r10", "r11":
		switch size {
		case 1:
			return register + "b"
		case 2:
			return register + "w"
		case 4:
			return register + "d"
		case 8:
			return register
		}
	}
	panic(fmt.Sprintf("emit: unsupported register/size combination %s/%d", register, size))
}

// argRegister returns the System V integer argument register for position n
// (0-based) at the given width. Nemet only ever lowers direct calls with a
// statically known arity, so there is no varargs or stack-spill case to
// cover beyond the six register slots the ABI provides.
func argRegister(n, size int) string {
	switch n {
	case 0:
		return regSub("di", size)
	case 1:
		return regSub("si", size)
	case 2:
		return regSub("d", size)
	case 3:
		return regSub("c", size)
	case 4:
		return regSub("r8", size)
	case 5:
		return regSub("r9", size)
	default:
		panic(fmt.Sprintf("emit: argument position %d exceeds the six-register convention", n))
	}
}

// buffer is the growing list of NASM text lines the lowerer appends to.
// Three of these exist per compile: one for instructions, one for the data
// section's literal definitions, one for uninitialized statics. Entries
// can be rewritten in place by index after the fact, which stmt.go uses
// for a function's prologue slots.
type buffer struct {
	lines []string
}

// emit appends one indented instruction line, terminated with a newline so
// the final buffer concatenates directly into valid assembly text.
func (b *buffer) emit(format string, args ...any) {
	b.lines = append(b.lines, "    "+fmt.Sprintf(format, args...)+"\n")
}

// emitLabel appends an unindented label line, e.g. ".Lbody3:".
func (b *buffer) emitLabel(label string) {
	b.lines = append(b.lines, label+":\n")
}

func (b *buffer) emitRaw(line string) {
	b.lines = append(b.lines, line+"\n")
}

// reserve appends a blank placeholder line and returns its index, so the
// caller can come back and fill it in once information that is only known
// after lowering the rest of a block (e.g. a function's final frame size)
// becomes available.
func (b *buffer) reserve() int {
	b.lines = append(b.lines, "")
	return len(b.lines) - 1
}

func (b *buffer) patch(index int, format string, args ...any) {
	b.lines[index] = "    " + fmt.Sprintf(format, args...) + "\n"
}

func (b *buffer) String() string {
	out := ""
	for _, l := range b.lines {
		out += l
	}
	return out
}
