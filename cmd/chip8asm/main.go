// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/xyproto/env/v2"

	"github.com/ezrec/chip8asm/asm"
	"github.com/ezrec/chip8asm/internal"
	"github.com/ezrec/chip8asm/rom"
	"github.com/ezrec/chip8asm/translate"
)

// assemble reads the source at input, and writes the ROM image to output
// only when the whole source assembles.
func assemble(assembler *asm.Assembler, input, output string) (err error) {
	inf, err := os.Open(input)
	if err != nil {
		return
	}
	defer inf.Close()

	prog, err := assembler.Parse(inf)
	if err != nil {
		return
	}

	if assembler.Verbose {
		for name, value := range internal.IterSeq2Sorted(assembler.Symbols()) {
			log.Printf("%v = %#03x\n", name, value)
		}
	}

	image := &rom.Rom{Data: prog.Binary()}
	err = image.Marshal(rom.DirFS(filepath.Dir(output)), filepath.Base(output))

	return
}

func newCommand() *cobra.Command {
	var verbose bool
	var strict bool
	var defines []string

	cmd := &cobra.Command{
		Use:   "chip8asm [flags] input.asm output.ch8",
		Short: "Assemble CHIP-8 source into a ROM image",
		Long: `chip8asm assembles CHIP-8 assembly text into a raw ROM image of
big-endian 16-bit opcodes, loaded at address 0x200.`,
		Args:          cobra.ExactArgs(2),
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			cmd.SilenceUsage = true

			input, output := args[0], args[1]

			assembler := &asm.Assembler{
				Verbose: verbose,
				Strict:  strict,
			}
			for _, def := range defines {
				err = assembler.Define(def)
				if err != nil {
					return fmt.Errorf("%v: %w", def, err)
				}
			}

			err = assemble(assembler, input, output)
			if err != nil {
				return fmt.Errorf("%v: %w", input, err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), translate.From("Successfully assembled '%v' to '%v'", input, output))

			return
		},
	}

	flags := cmd.Flags()
	flags.BoolVarP(&verbose, "verbose", "v", env.Bool("CHIP8ASM_VERBOSE"), "Verbose mode")
	flags.BoolVarP(&strict, "strict", "s", env.Bool("CHIP8ASM_STRICT"), "Duplicate labels are an error")
	flags.StringArrayVarP(&defines, "define", "D", nil, "Predefine a symbol (NAME=VALUE)")

	return cmd
}

func main() {
	if lang := env.Str("CHIP8ASM_LANG"); len(lang) != 0 {
		translate.SetLanguage(lang)
	}

	err := newCommand().Execute()
	if err != nil {
		log.Fatalf("%v: %v", os.Args[0], err)
	}
}
