package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/klauskaan/C-AL-Language-sub012/cal/parser"
	callog "github.com/klauskaan/C-AL-Language-sub012/core/log"
	calstringx "github.com/klauskaan/C-AL-Language-sub012/utils/stringx"
)

// tokenValueDisplayMax keeps one token per output line even for long
// string literals and trigger bodies
const tokenValueDisplayMax = 40

var (
	tokenizeTrace bool
	tokenizeTypes bool
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [file]",
	Short: "Dump the token stream of a C/AL object",
	Long: `Tokenizes a C/AL object export and prints one token per line with
its position. With --trace, context transitions of the lexer state
machine are interleaved with the tokens that caused them.

Examples:
  cal tokenize Customer.txt
  cal tokenize --trace Customer.txt
  cat Customer.txt | cal tokenize --types-only`,
	RunE: runTokenize,
}

func init() {
	rootCmd.AddCommand(tokenizeCmd)

	tokenizeCmd.Flags().BoolVar(&tokenizeTrace, "trace", false, "show context transitions")
	tokenizeCmd.Flags().BoolVar(&tokenizeTypes, "types-only", false, "print token types without values")
}

func runTokenize(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		printError("loading config", err)
		return err
	}

	logger, err := setupLogger(cfg)
	if err != nil {
		printError("building logger", err)
		return err
	}

	input, err := readInput(args)
	if err != nil {
		printError("reading input", err)
		return err
	}
	if calstringx.IsEmpty(input) {
		return fmt.Errorf("no input: pass a file or pipe an object export")
	}

	lexer := parser.NewLexer(input)
	if tokenizeTrace || cfg.Parser.Trace {
		lexer.SetTrace(func(event string, token parser.Token, transition *parser.ContextTransition) {
			if transition != nil {
				fmt.Printf("%24s  %s -> %s\n", "["+transition.Type.String()+"]", transition.From, transition.To)
			}
		})
	}

	tokens := lexer.Tokenize()
	for _, tok := range tokens {
		if tokenizeTypes {
			fmt.Printf("%4d:%-4d %s\n", tok.Line, tok.Column, tok.Type)
			continue
		}
		value := calstringx.Truncate(tok.Value, tokenValueDisplayMax, "...")
		fmt.Printf("%4d:%-4d %-18s %q\n", tok.Line, tok.Column, tok.Type.String(), value)
	}

	logger.WithFields(callog.Fields{
		"tokens": len(tokens),
		"bytes":  len(input),
		"clean":  lexer.State().IsClean(),
	}).Debug("tokenization finished")

	return nil
}
