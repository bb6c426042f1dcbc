package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/klauskaan/C-AL-Language-sub012/cal/ast"
	"github.com/klauskaan/C-AL-Language-sub012/cal/parser"
	callog "github.com/klauskaan/C-AL-Language-sub012/core/log"
	calstringx "github.com/klauskaan/C-AL-Language-sub012/utils/stringx"
)

var (
	checkMaxErrors      int
	checkMaxInputLength int
	checkQuiet          bool
)

var checkCmd = &cobra.Command{
	Use:   "check [file]",
	Short: "Parse a C/AL object and report diagnostics",
	Long: `Parses a C/AL object export and prints any diagnostics found.
Diagnostics carry line and column positions but never echo source
content verbatim.

Examples:
  cal check Customer.txt
  cal check --max-errors 10 Customer.txt
  cat Customer.txt | cal check`,
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().IntVar(&checkMaxErrors, "max-errors", 0, "cap on reported errors (0 = configured default)")
	checkCmd.Flags().IntVar(&checkMaxInputLength, "max-input-length", 0, "cap on input size in bytes (0 = unlimited)")
	checkCmd.Flags().BoolVarP(&checkQuiet, "quiet", "q", false, "suppress the object summary, print diagnostics only")
}

func runCheck(cmd *cobra.Command, args []string) error {
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

	maxErrors := cfg.Parser.MaxErrors
	if cmd.Flags().Changed("max-errors") {
		maxErrors = checkMaxErrors
	}
	maxInputLength := cfg.Parser.MaxInputLength
	if cmd.Flags().Changed("max-input-length") {
		maxInputLength = checkMaxInputLength
	}

	p := parser.NewWithOptions(parser.Options{
		Logger:         logger,
		MaxErrors:      maxErrors,
		MaxInputLength: maxInputLength,
	})

	doc := p.Parse(input)

	if !checkQuiet {
		printSummary(doc)
	}

	errs := p.Errors()
	for _, e := range errs {
		fmt.Println(e.Error())
	}

	if len(errs) > 0 {
		logger.WithFields(callog.Fields{"errors": len(errs)}).Warn("check finished with diagnostics")
		return fmt.Errorf("%d diagnostic(s)", len(errs))
	}

	logger.Debug("check finished clean")
	return nil
}

func printSummary(doc *ast.Document) {
	if doc == nil || doc.Object == nil {
		fmt.Println("No object found in input")
		return
	}

	obj := doc.Object
	fmt.Printf("%s %d %s\n", obj.Kind, obj.ID, obj.Name)

	if obj.Properties != nil {
		fmt.Printf("  properties:  %d\n", len(obj.Properties.Properties))
	}
	if obj.Fields != nil {
		fmt.Printf("  fields:      %d\n", len(obj.Fields.Fields))
	}
	if obj.Keys != nil {
		fmt.Printf("  keys:        %d\n", len(obj.Keys.Keys))
	}
	if obj.Controls != nil {
		fmt.Printf("  controls:    %d\n", len(obj.Controls.Controls))
	}
	if obj.FieldGroups != nil {
		fmt.Printf("  fieldgroups: %d\n", len(obj.FieldGroups.Groups))
	}
	if obj.Code != nil {
		fmt.Printf("  variables:   %d\n", len(obj.Code.Variables))
		fmt.Printf("  procedures:  %d\n", len(obj.Code.Procedures))
	}
	for _, s := range obj.Skipped {
		fmt.Printf("  skipped:     %s\n", s.Name)
	}
}
