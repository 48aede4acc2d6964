package writer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssembleSectionOrder(t *testing.T) {
	out := Assemble("    mov rax, 60\n", "    msg db \"hi\"\n", "")

	textIdx := indexOf(t, out, "section .text")
	dataIdx := indexOf(t, out, "section .data")
	printIdx := indexOf(t, out, "print:")
	assert.Less(t, textIdx, printIdx, "print helper must follow the instruction stream")
	assert.Less(t, printIdx, dataIdx, "data section must follow the text section")
	assert.Contains(t, out, "global _start")
	assert.NotContains(t, out, "section .bss")
}

func TestAssembleIncludesBSSWhenNonEmpty(t *testing.T) {
	out := Assemble("", "", "    buf resb 16\n")
	assert.Contains(t, out, "section .bss")
	assert.Contains(t, out, "buf resb 16")
}

func TestWriteFileRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.asm")
	require.NoError(t, WriteFile(path, "    nop\n", "", ""))

	contents, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(contents), "nop")
	assert.Contains(t, string(contents), "global _start")
}

func indexOf(t *testing.T, haystack, needle string) int {
	t.Helper()
	for i := 0; i+len(needle) <= len(haystack); i++ {
		if haystack[i:i+len(needle)] == needle {
			return i
		}
	}
	t.Fatalf("substring %q not found", needle)
	return -1
}
