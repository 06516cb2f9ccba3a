// Command slate runs slate programs. With file arguments it evaluates
// each in order against one session; with none it reads from an
// interactive prompt.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/slatelang/slate"
)

func main() {
	in := slate.NewInterp()
	if len(os.Args) > 1 {
		for _, path := range os.Args[1:] {
			src, err := os.ReadFile(path)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			if _, err := in.Eval(string(src)); err != nil {
				fmt.Fprintf(os.Stderr, "%s: %v\n", path, err)
				os.Exit(1)
			}
		}
		return
	}
	repl(in)
}

// repl evaluates one paragraph at a time: lines accumulate until a
// blank line, then the buffer runs against the session. Indentation
// blocks therefore work exactly as they do in a file.
func repl(in *slate.Interp) {
	stdin := bufio.NewScanner(os.Stdin)
	var buf strings.Builder
	fmt.Print("slate> ")
	for stdin.Scan() {
		line := stdin.Text()
		if line != "" {
			buf.WriteString(line)
			buf.WriteByte('\n')
			fmt.Print("...... ")
			continue
		}
		if buf.Len() > 0 {
			run(in, buf.String())
			buf.Reset()
		}
		fmt.Print("slate> ")
	}
	if buf.Len() > 0 {
		run(in, buf.String())
	}
	if err := stdin.Err(); err != nil {
		fmt.Fprintln(os.Stderr, err)
	}
}

func run(in *slate.Interp, src string) {
	v, err := in.Eval(src)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(slate.FormatValue(v))
}
