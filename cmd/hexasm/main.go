// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/k0kubun/pp/v3"
	"github.com/spf13/cobra"

	"github.com/ezrec/hexasm/asm"
	"github.com/ezrec/hexasm/image"
	"github.com/ezrec/hexasm/translate"
)

type options struct {
	input   string
	output  string
	verbose bool
	listing bool
	dump    bool
	lang    string
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "hexasm",
		Short: "Assemble 10-bit machine source into a hex word memory image",
		Long: `Hexasm assembles a source file for the 10-bit word machine into a
"v3.0 hex words addressed" memory image.

Each source line is blank (emits 000), a radix-suffixed data word such as
1011b, 11d or 0ah, or an instruction. LDI takes its 10-bit literal from the
next non-blank line.

With no flags, input.txt is assembled into output.
`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(opts, cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.input, "input", "i", "input.txt", "Source file, - for stdin")
	flags.StringVarP(&opts.output, "output", "o", "output", "Image file, - for stdout")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "Verbose mode")
	flags.BoolVarP(&opts.listing, "listing", "l", false, "Print an address listing to stderr")
	flags.BoolVar(&opts.dump, "dump", false, "Dump the assembled program to stderr")
	flags.StringVar(&opts.lang, "lang", "", "Diagnostic language (en, de), default from the locale")

	return cmd
}

func run(opts *options, stdin io.Reader, stdout, stderr io.Writer) (err error) {
	if len(opts.lang) != 0 {
		translate.SetLanguage(translate.Match(opts.lang))
	}

	input := stdin
	if opts.input != "-" {
		inf, err := os.Open(opts.input)
		if err != nil {
			return err
		}
		defer inf.Close()
		input = inf
	}

	assembler := &asm.Assembler{Verbose: opts.verbose}
	prog, err := assembler.Parse(input)
	if err != nil {
		return fmt.Errorf("%v: %w", opts.input, err)
	}

	if opts.listing {
		err = prog.Listing(stderr)
		if err != nil {
			return
		}
	}

	if opts.dump {
		_, err = pp.Fprintln(stderr, prog)
		if err != nil {
			return
		}
	}

	if opts.output == "-" {
		err = image.Write(stdout, prog.Words())
	} else {
		err = image.WriteFile(opts.output, prog.Words())
	}
	if err != nil {
		return fmt.Errorf("%v: %w", opts.output, err)
	}

	return
}

func main() {
	log.SetFlags(0)
	log.SetPrefix(os.Args[0] + ": ")

	err := newRootCmd().Execute()
	if err != nil {
		log.Fatal(err)
	}
}
