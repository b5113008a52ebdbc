// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/H0llyW00dzZ/certlist2pem/src/config"
	"github.com/H0llyW00dzZ/certlist2pem/src/internal/helper/gc"
	"github.com/H0llyW00dzZ/certlist2pem/src/internal/helper/posix"
	"github.com/H0llyW00dzZ/certlist2pem/src/internal/report"
	x509certs "github.com/H0llyW00dzZ/certlist2pem/src/internal/x509/certs"
	"github.com/H0llyW00dzZ/certlist2pem/src/logger"
)

// ErrInputFileRequired is returned when no input file is given on the command line.
var ErrInputFileRequired = errors.New("input file is required")

var (
	// OperationPerformed reports whether a conversion was attempted.
	OperationPerformed bool
	// OperationPerformedSuccessfully reports whether the last conversion finished without error.
	OperationPerformedSuccessfully bool
)

// flags holds the parsed command-line options of a single invocation.
type flags struct {
	output     string
	format     string
	configFile string
	verify     bool
	strict     bool
}

// Execute runs the root command with os.Args, returning any error that occurs.
//
// Cobra prints the error itself; callers only need to choose an exit status.
func Execute(ctx context.Context, version string, log logger.Logger) error {
	OperationPerformed = false
	OperationPerformedSuccessfully = false

	return newRootCmd(version, log).ExecuteContext(ctx)
}

func newRootCmd(version string, log logger.Logger) *cobra.Command {
	var f flags
	exe := posix.GetExecutableName()

	cmd := &cobra.Command{
		Use:   exe + " [flags] INPUT_FILE",
		Short: "Convert byte-list certificate files into PEM reports",
		Long: `Reads a text file holding a list of DER certificates written as decimal
byte lists, for example [[48,130,...],[48,130,...]], and prints the issuer,
subject and PEM encoding of every certificate in order.

Use "-" as INPUT_FILE to read from standard input.`,
		Example: fmt.Sprintf(`  %[1]s certs.txt
  %[1]s -F table certs.txt
  %[1]s --verify -o bundle.txt certs.txt
  cat certs.txt | %[1]s -F json -`, exe),
		Version:      version,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return ErrInputFileRequired
			}
			return run(cmd, args[0], f, log)
		},
	}

	cmd.Flags().StringVarP(&f.output, "output", "o", "", "write report to FILE (default: stdout)")
	cmd.Flags().StringVarP(&f.format, "format", "F", config.DefaultFormat, "output format: pem, json, yaml or table")
	cmd.Flags().BoolVar(&f.verify, "verify", false, "re-parse emitted PEM bodies before writing")
	cmd.Flags().BoolVar(&f.strict, "strict", false, "reject trailing data after the certificate list")
	cmd.Flags().StringVarP(&f.configFile, "config", "c", "", "JSON or YAML config file (env "+config.EnvConfigFile+")")

	return cmd
}

// run loads configuration, converts inputFile and writes the report.
func run(cmd *cobra.Command, inputFile string, f flags, log logger.Logger) error {
	cfg, err := config.Load(f.configFile)
	if err != nil {
		return err
	}

	// Explicit flags win over the config file.
	if cmd.Flags().Changed("format") {
		cfg.Output.Format = f.format
	}
	if cmd.Flags().Changed("verify") {
		cfg.Output.Verify = f.verify
	}
	if cmd.Flags().Changed("strict") {
		cfg.Input.Strict = f.strict
	}

	log = configureLogger(log, cfg)

	format, err := report.ParseFormat(cfg.Output.Format)
	if err != nil {
		return err
	}

	input, err := readInput(cmd, inputFile)
	if err != nil {
		return fmt.Errorf("error reading input file: %w", err)
	}

	decoder := x509certs.New()
	opts := []report.Option{
		report.WithFormat(format),
		report.WithStrict(cfg.Input.Strict),
		report.WithLogger(log),
	}
	if cfg.Output.Verify {
		opts = append(opts, report.WithVerifier(decoder))
	}
	driver := report.New(decoder, opts...)

	OperationPerformed = true

	if f.output == "" {
		if err := driver.Run(cmd.Context(), input, cmd.OutOrStdout()); err != nil {
			return err
		}
		OperationPerformedSuccessfully = true
		return nil
	}

	buf := gc.Default.Get()
	defer func() {
		buf.Reset()
		gc.Default.Put(buf)
	}()

	if err := driver.Run(cmd.Context(), input, buf); err != nil {
		return err
	}
	if err := os.WriteFile(f.output, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("error writing to output file: %w", err)
	}

	log.Printf("Report written to %s", f.output)
	OperationPerformedSuccessfully = true
	return nil
}

// configureLogger applies the logging section of cfg to log.
func configureLogger(log logger.Logger, cfg *config.Config) logger.Logger {
	if cfg.Logging.JSON {
		return logger.NewJSONLogger(os.Stderr, cfg.Logging.Silent)
	}
	if log == nil {
		log = logger.NewCLILogger()
	}
	if cfg.Logging.Silent {
		log.SetOutput(io.Discard)
	}
	return log
}

// readInput reads the named file, or standard input when name is "-".
func readInput(cmd *cobra.Command, name string) ([]byte, error) {
	if name == "-" {
		return gc.ReadAll(cmd.InOrStdin())
	}

	file, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return gc.ReadAll(file)
}
