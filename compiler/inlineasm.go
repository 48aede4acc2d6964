package compiler

import (
	"strings"
	"unicode"
)

// lowerInlineAsm passes each line of an asm{} block through to the
// instruction buffer more or less verbatim, except that any `%identifier`
// token is rewritten to that local variable's current frame-offset memory
// operand. This is an escape hatch for hand-written assembly that still
// needs to reach into the enclosing function's locals.
func (c *Compiler) lowerInlineAsm(lines []string) error {
	for _, line := range lines {
		rewritten, err := c.substituteInlineAsmVars(line)
		if err != nil {
			return err
		}
		c.instr.emit("%s", rewritten)
	}
	return nil
}

func (c *Compiler) substituteInlineAsmVars(line string) (string, error) {
	if !strings.ContainsRune(line, '%') {
		return line, nil
	}

	var out strings.Builder
	runes := []rune(line)
	i := 0
	for i < len(runes) {
		if runes[i] != '%' {
			out.WriteRune(runes[i])
			i++
			continue
		}
		start := i
		i++
		var ident strings.Builder
		for i < len(runes) && (unicode.IsLetter(runes[i]) || unicode.IsDigit(runes[i]) || runes[i] == '_') {
			ident.WriteRune(runes[i])
			i++
		}
		if ident.Len() == 0 {
			return "", errAt(ErrBadInlineAsm, Pos{}, "stray %% with no following identifier at %q", string(runes[start:]))
		}
		name := ident.String()
		v, ok := c.vars.find(name)
		if !ok {
			return "", errAt(ErrBadInlineAsm, Pos{}, "could not find variable %q in this scope", name)
		}
		if v.Static {
			out.WriteString("[" + v.Label + "]")
		} else {
			out.WriteString("qword [rbp-" + itoa(v.Offset+v.Type.ByteSize()) + "]")
		}
	}
	return out.String(), nil
}
