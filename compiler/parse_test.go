package compiler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, src string) *Program {
	t.Helper()
	prog, err := parseProgram("t.nmt", src)
	require.NoError(t, err)
	return prog
}

func TestParseFunctionSignature(t *testing.T) {
	prog := mustParse(t, `func add(a@int, b@int) @int { return a + b; }`)
	require.Len(t, prog.Items, 1)
	fn := prog.Items[0].Func
	require.NotNil(t, fn)
	assert.Equal(t, "add", fn.Name)
	require.Len(t, fn.Params, 2)
	assert.Equal(t, "a", fn.Params[0].Name)
	assert.Equal(t, TInt, fn.Params[0].Type.Kind)
	require.NotNil(t, fn.Return)
	assert.Equal(t, TInt, fn.Return.Kind)
}

func TestParseDeclMutability(t *testing.T) {
	cases := []struct {
		src     string
		mutable bool
		hasInit bool
	}{
		{"var x := 1;", false, true},
		{"var x = 1;", true, true},
		{"var x;", true, false},
	}
	for _, tc := range cases {
		prog := mustParse(t, "func f() { "+tc.src+" }")
		decl := prog.Items[0].Func.Body.Stmts[0].Decl
		assert.Equal(t, tc.mutable, decl.Mutable, "source %q", tc.src)
		assert.Equal(t, tc.hasInit, decl.Init != nil, "source %q", tc.src)
	}
}

func TestParseArrayType(t *testing.T) {
	prog := mustParse(t, `func f() { var x @[int, 4]; }`)
	decl := prog.Items[0].Func.Body.Stmts[0].Decl
	require.NotNil(t, decl.Type)
	assert.Equal(t, TArray, decl.Type.Kind)
	assert.Equal(t, 4, decl.Type.Length)
	assert.Equal(t, TInt, decl.Type.Elem.Kind)
}

func TestParseExpressionPrecedence(t *testing.T) {
	prog := mustParse(t, `func f() { var x := 1 + 2 * 3; }`)
	decl := prog.Items[0].Func.Body.Stmts[0].Decl
	e := *decl.Init
	require.Equal(t, EBinary, e.Kind)
	assert.Equal(t, BAdd, e.BinOp)
	// right side should be the higher-precedence multiplication
	require.Equal(t, EBinary, e.Right.Kind)
	assert.Equal(t, BMul, e.Right.BinOp)
}

func TestParseIfElifElse(t *testing.T) {
	prog := mustParse(t, `
		func f() {
			if a == 1 { print 1; }
			elif a == 2 { print 2; }
			else { print 3; }
		}
	`)
	ifs := prog.Items[0].Func.Body.Stmts[0].If
	require.NotNil(t, ifs.Elif)
	assert.Nil(t, ifs.Else)
	require.NotNil(t, ifs.Elif.Else)
}

func TestParseWhileBreakContinue(t *testing.T) {
	prog := mustParse(t, `
		func f() {
			while x < 10 {
				if x == 5 { break; }
				continue;
			}
		}
	`)
	w := prog.Items[0].Func.Body.Stmts[0].While
	require.NotNil(t, w)
	assert.Equal(t, SIf, w.Body.Stmts[0].Kind)
	assert.Equal(t, SContinue, w.Body.Stmts[1].Kind)
}

func TestParseAddressOfAndIndex(t *testing.T) {
	prog := mustParse(t, `func f() { var x := &y; var z := arr[3]; }`)
	body := prog.Items[0].Func.Body.Stmts
	assert.Equal(t, EPtr, (*body[0].Decl.Init).Kind)
	assert.Equal(t, EIndex, (*body[1].Decl.Init).Kind)
}

func TestParseImportWithSelectiveExports(t *testing.T) {
	prog := mustParse(t, `import "util" : helper, other; func main() {}`)
	imp := prog.Items[0].Import
	require.NotNil(t, imp)
	assert.Equal(t, "util", imp.Path)
	assert.Equal(t, []string{"helper", "other"}, imp.Names)
}

func TestParseInlineAsm(t *testing.T) {
	prog := mustParse(t, `func f() { asm { "mov rax, %x" "nop" } }`)
	stmt := prog.Items[0].Func.Body.Stmts[0]
	require.Equal(t, SInlineAsm, stmt.Kind)
	assert.Equal(t, []string{"mov rax, %x", "nop"}, stmt.Asm)
}

func TestParseCompoundAssignment(t *testing.T) {
	prog := mustParse(t, `func f() { var x = 1; x /= 2; x %= 3; }`)
	assign1 := prog.Items[0].Func.Body.Stmts[1].Assign
	assign2 := prog.Items[0].Func.Body.Stmts[2].Assign
	assert.Equal(t, OpDivAssign, assign1.Op)
	assert.Equal(t, OpModAssign, assign2.Op)
}

func TestParseRejectsUnexpectedToken(t *testing.T) {
	_, err := parseProgram("t.nmt", `func f( { }`)
	require.Error(t, err)
	var ce *CompileError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, ErrSyntax, ce.Kind)
}

func TestParseStaticTopLevelVariable(t *testing.T) {
	prog := mustParse(t, `var counter = 0; func main() {}`)
	require.NotNil(t, prog.Items[0].Static)
	assert.Equal(t, "counter", prog.Items[0].Static.Name)
	assert.True(t, prog.Items[0].Static.Mutable)
}
