package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/pkg/errors"
)

// Supported subcommands:
// - validate: Check a seed CSV without touching the store
// - import:   Append a seed CSV to the Google Sheets store
// - export:   Dump the store back into a CSV

func main() {
	// Subcommand definitions
	validateCmd := flag.NewFlagSet("validate", flag.ExitOnError)
	importCmd := flag.NewFlagSet("import", flag.ExitOnError)
	exportCmd := flag.NewFlagSet("export", flag.ExitOnError)

	// validate parameters
	validateInput := validateCmd.String("input", "", "Input CSV file path")

	// import parameters
	importInput := importCmd.String("input", "", "Input CSV file path")
	importChunk := importCmd.Int("chunk", 50, "Rows appended per batch call")

	// export parameters
	exportOutput := exportCmd.String("output", "", "Output CSV file path")
	exportCity := exportCmd.String("city", "", "Only export cafes in this city")

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	flags := seedFlags{
		Validate: validateFlags{
			cmd:   validateCmd,
			input: validateInput,
		},
		Import: importFlags{
			cmd:   importCmd,
			input: importInput,
			chunk: importChunk,
		},
		Export: exportFlags{
			cmd:    exportCmd,
			output: exportOutput,
			city:   exportCity,
		},
	}

	if err := runSubcommand(ctx, &flags); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

type seedFlags struct {
	Validate validateFlags
	Import   importFlags
	Export   exportFlags
}

type validateFlags struct {
	cmd   *flag.FlagSet
	input *string
}

type importFlags struct {
	cmd   *flag.FlagSet
	input *string
	chunk *int
}

type exportFlags struct {
	cmd    *flag.FlagSet
	output *string
	city   *string
}

func runSubcommand(ctx context.Context, flags *seedFlags) error {
	switch os.Args[1] {
	case "validate":
		return handleValidate(flags)
	case "import":
		return handleImport(ctx, flags)
	case "export":
		return handleExport(ctx, flags)
	default:
		printUsage()

		return errors.New("unknown subcommand")
	}
}

func handleValidate(flags *seedFlags) error {
	if err := flags.Validate.cmd.Parse(os.Args[2:]); err != nil {
		return errors.Wrap(err, "failed to parse validate flags")
	}

	if *flags.Validate.input == "" {
		return errors.New("--input flag is required for validate command")
	}

	return runValidate(*flags.Validate.input)
}

func handleImport(ctx context.Context, flags *seedFlags) error {
	if err := flags.Import.cmd.Parse(os.Args[2:]); err != nil {
		return errors.Wrap(err, "failed to parse import flags")
	}

	if *flags.Import.input == "" {
		return errors.New("--input flag is required for import command")
	}

	return runImport(ctx, *flags.Import.input, *flags.Import.chunk)
}

func handleExport(ctx context.Context, flags *seedFlags) error {
	if err := flags.Export.cmd.Parse(os.Args[2:]); err != nil {
		return errors.Wrap(err, "failed to parse export flags")
	}

	if *flags.Export.output == "" {
		return errors.New("--output flag is required for export command")
	}

	return runExport(ctx, *flags.Export.output, *flags.Export.city)
}

func printUsage() {
	fmt.Println("Usage: seed <command> [options]")
	fmt.Println("")
	fmt.Println("Commands:")
	fmt.Println("  validate    Check a seed CSV without touching the store")
	fmt.Println("  import      Append a seed CSV to the Google Sheets store")
	fmt.Println("  export      Dump the store back into a CSV")
	fmt.Println("")
	fmt.Println("Use 'seed <command> -h' for more information about a command.")
}

// Command implementations are in their respective files
