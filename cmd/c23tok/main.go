package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gmofishsauce/c23tok/internal/lexer"
	"github.com/gmofishsauce/c23tok/internal/phase"
	"github.com/gmofishsauce/c23tok/internal/recompose"
	"github.com/gmofishsauce/c23tok/internal/symtab"
	"github.com/gmofishsauce/c23tok/internal/tokfile"
)

var (
	punchCard bool
	output    string
	doRecomp  bool
	roundtrip bool
	yolo      bool
)

func main() {
	root := &cobra.Command{
		Use:                   "c23tok <input>",
		Short:                 "Lexical decomposer and reconstructor for C23 source",
		SilenceUsage:          true,
		SilenceErrors:         true,
		DisableFlagsInUseLine: true,
		Args:                  cobra.ArbitraryArgs,
		RunE:                  run,
	}
	root.Flags().BoolVar(&punchCard, "punch", false, "enable phase-0 DEL (0x7F) stripping")
	root.Flags().StringVarP(&output, "output", "o", "a.tok", "output path")
	root.Flags().BoolVarP(&doRecomp, "recompose", "r", false, "recompose mode: input is a .tok file, output is text")
	root.Flags().BoolVar(&roundtrip, "roundtrip", false, "roundtrip mode: decompose then recompose in one pass")
	root.Flags().BoolVar(&roundtrip, "rt", false, "alias for --roundtrip")
	root.Flags().BoolVar(&yolo, "yolo", false, "downgrade binary-format check failures to warnings")

	// The reference accepts its multi-letter options with a single leading
	// dash ("-rt", "-yolo"), which pflag's POSIX shorthand rules don't
	// allow (a single dash must be followed by exactly one letter). Rewrite
	// those specific spellings to their double-dash form before cobra sees
	// them, so both "-rt"/"--rt" and "-yolo"/"--yolo" work as documented.
	os.Args = normalizeSingleDashLongFlags(os.Args)

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "c23tok: %v\n", err)
		os.Exit(1)
	}
}

var singleDashAliases = map[string]string{
	"-rt":   "--rt",
	"-yolo": "--yolo",
}

func normalizeSingleDashLongFlags(args []string) []string {
	out := make([]string, len(args))
	for i, a := range args {
		if long, ok := singleDashAliases[a]; ok {
			out[i] = long
			continue
		}
		out[i] = a
	}
	return out
}

func run(cmd *cobra.Command, args []string) error {
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "Please enter a filename or file path as the first argument.")
		prog := os.Args[0]
		fmt.Fprintln(os.Stderr, prog)
		pad := len(prog) - 4
		if pad < 0 {
			pad = 0
		}
		fmt.Fprint(os.Stderr, strings.Repeat(" ", pad))
		fmt.Fprint(os.Stderr, "here ^")
		os.Exit(1)
	}
	input := args[0]
	for _, extra := range args[1:] {
		fmt.Fprintf(os.Stderr, "Warning: unrecognized argument ignored: %q.", extra)
	}

	switch {
	case roundtrip:
		return runRoundtrip(input, output)
	case doRecomp:
		return runRecompose(input, output)
	default:
		return runDecompose(input, output)
	}
}

func runDecompose(input, output string) error {
	src, err := os.ReadFile(input)
	if err != nil {
		return fmt.Errorf("reading %s: %w", input, err)
	}
	if punchCard {
		src = phase.StripDEL(src)
	}
	src = phase.SpliceBackslashNewline(src)

	l := lexer.New(src)
	if err := l.Run(); err != nil {
		return fmt.Errorf("%s: %w", input, err)
	}

	out, err := os.Create(output)
	if err != nil {
		return fmt.Errorf("creating %s: %w", output, err)
	}
	defer out.Close()

	if err := tokfile.Write(out, l.Toks, l.Syms); err != nil {
		return fmt.Errorf("writing %s: %w", output, err)
	}
	return nil
}

func runRecompose(input, output string) error {
	in, err := os.Open(input)
	if err != nil {
		return fmt.Errorf("opening %s: %w", input, err)
	}
	defer in.Close()

	res, err := tokfile.Read(in, yolo)
	if err != nil {
		return fmt.Errorf("%s: %w", input, err)
	}
	if res.Warning != "" {
		fmt.Fprintln(os.Stderr, res.Warning)
	}

	text, err := recompose.Reconstruct(res.Tokens.All(), res.Symbols)
	if err != nil {
		return fmt.Errorf("recomposing %s: %w", input, err)
	}
	return os.WriteFile(output, []byte(text), 0644)
}

// runRoundtrip decomposes input in memory, then recomposes directly from
// the resulting token stream and symbol table without a binary
// intermediary. Per the reference's ROUNDTRIP branch, the symbol table is
// drained into a flat meaning table keyed by slot before recomposing, so
// this path exercises the exact lookup contract a freshly-read .tok file's
// symtab.Table provides, rather than reaching for any shortcut.
func runRoundtrip(input, output string) error {
	src, err := os.ReadFile(input)
	if err != nil {
		return fmt.Errorf("reading %s: %w", input, err)
	}
	if punchCard {
		src = phase.StripDEL(src)
	}
	src = phase.SpliceBackslashNewline(src)

	l := lexer.New(src)
	if err := l.Run(); err != nil {
		return fmt.Errorf("%s: %w", input, err)
	}

	chart := buildMeaningTable(l.Syms)

	text, err := recompose.Reconstruct(l.Toks.All(), chart)
	if err != nil {
		return fmt.Errorf("recomposing %s: %w", input, err)
	}
	return os.WriteFile(output, []byte(text), 0644)
}

// buildMeaningTable copies the live table's occupied slots into a fresh
// symtab.Table via InsertAt, mirroring the reference's drain-to-array step:
// the recomposer that follows never touches the table being actively
// interned into.
func buildMeaningTable(live *symtab.Table) *symtab.Table {
	dst := symtab.New()
	for _, slot := range live.Chart() {
		name, _ := live.Lookup(slot)
		_ = dst.InsertAt(slot, name)
	}
	return dst
}
