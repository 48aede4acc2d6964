// Command nemetc lowers a Nemet source file (and everything it imports)
// into a NASM assembly file targeting System V AMD64 Linux.
package main

import (
	"flag"
	"fmt"
	"os"

	"nemet/compiler"
	"nemet/writer"
)

var (
	outPath      = flag.String("o", "a.asm", "output assembly file path")
	printStdout  = flag.Bool("S", false, "print the generated assembly to stdout instead of writing a file")
	debugSymbols = flag.Bool("debug-symbols", false, "interleave source-line comments with emitted instructions")
)

func main() {
	flag.Parse()

	args := flag.Args()
	if len(args) != 1 {
		fmt.Println("Usage: nemetc [-o out.asm] [-S] [-debug-symbols] <file.nmt>")
		return
	}

	if *debugSymbols {
		compiler.EnableDebugSymbols()
	}

	instrText, dataText, bssText, err := compiler.Compile(args[0])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if *printStdout {
		fmt.Print(writer.Assemble(instrText, dataText, bssText))
		return
	}

	if err := writer.WriteFile(*outPath, instrText, dataText, bssText); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
