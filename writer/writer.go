// Package writer assembles the three text buffers compiler.Compile produces
// into a complete NASM source file: section headers, the hand-written
// print helper every compiled program can call, and (when any static
// variable had no initializer) a trailing bss block.
package writer

import (
	"fmt"
	"os"
	"strings"
)

// printHelper is the one piece of hand-written NASM text in the whole
// repository. The compiler itself never needs to print an integer about
// itself; it only ever emits code that prints integers when the compiled
// program calls print on a non-string expression. Converts the signed
// 64-bit integer in rdi to a decimal string and writes it to stdout.
const printHelper = `print:
    push rbp
    mov rbp, rsp
    sub rsp, 64
    mov rax, rdi
    mov rcx, 0
    mov rbx, 10
    mov byte [rbp-64], 0
    cmp rax, 0
    jge .Lprint_convert
    neg rax
    mov byte [rbp-64], '-'
.Lprint_convert:
    mov rsi, rbp
    sub rsi, 1
.Lprint_digit:
    xor rdx, rdx
    div rbx
    add rdx, '0'
    mov [rsi], dl
    dec rsi
    inc rcx
    test rax, rax
    jnz .Lprint_digit
    cmp byte [rbp-64], '-'
    jne .Lprint_write
    mov byte [rsi], '-'
    dec rsi
    inc rcx
.Lprint_write:
    inc rsi
    mov rax, 1
    mov rdi, 1
    mov rdx, rcx
    syscall
    mov rax, 1
    mov byte [rbp-64], 10
    lea rsi, [rbp-64]
    mov rdx, 1
    mov rdi, 1
    syscall
    leave
    ret
`

// Assemble stitches the instruction, data and bss buffers compiler.Compile
// returned into a full .asm file's text. bssText is empty whenever no
// static variable was declared without an initializer (see
// compiler/stmt.go's lowerStatic), in which case no section .bss is
// emitted at all.
func Assemble(instrText, dataText, bssText string) string {
	var sb strings.Builder

	sb.WriteString("section .text\n")
	sb.WriteString("global _start\n\n")
	sb.WriteString(instrText)
	sb.WriteString("\n")
	sb.WriteString(printHelper)

	sb.WriteString("\nsection .data\n")
	sb.WriteString(dataText)

	if bssText != "" {
		sb.WriteString("\nsection .bss\n")
		sb.WriteString(bssText)
	}

	return sb.String()
}

// WriteFile assembles and writes the result to path.
func WriteFile(path, instrText, dataText, bssText string) error {
	text := Assemble(instrText, dataText, bssText)
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
