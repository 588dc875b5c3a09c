package commands

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/odic3o/interbank-academy-25/internal/buildinfo"
	"github.com/odic3o/interbank-academy-25/internal/config"
	"github.com/odic3o/interbank-academy-25/internal/report"
	"github.com/odic3o/interbank-academy-25/internal/statement"
	"github.com/odic3o/interbank-academy-25/internal/summary"
)

// NewRootCommand creates the CLI command that runs the full pipeline:
// load the statement, summarize it, print the report, optionally save it.
func NewRootCommand(log zerolog.Logger) *cobra.Command {
	var configPath string
	var autoSave bool

	rootCmd := &cobra.Command{
		Use:     "movimientos [archivo_csv]",
		Short:   "Resumen de transacciones bancarias desde un archivo CSV",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		Args:    cobra.MaximumNArgs(1),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				printUsage(cmd.OutOrStdout())
				return nil
			}
			run(runOptions{
				input:      args[0],
				configPath: configPath,
				autoSave:   autoSave,
				stdin:      cmd.InOrStdin(),
				stdout:     cmd.OutOrStdout(),
				log:        log,
			})
			return nil
		},
	}

	rootCmd.Flags().StringVar(&configPath, "config", os.Getenv("MOVIMIENTOS_CONFIG"), "ruta del archivo de configuración YAML")
	rootCmd.Flags().BoolVar(&autoSave, "guardar", false, "guardar el reporte sin preguntar")

	return rootCmd
}

type runOptions struct {
	input      string
	configPath string
	autoSave   bool
	stdin      io.Reader
	stdout     io.Writer
	log        zerolog.Logger
}

// run executes the pipeline for one statement file. Input failures are
// logged as diagnostics and end the run without an error exit.
func run(opts runOptions) {
	cfg := config.Default()
	if opts.configPath != "" {
		loaded, err := config.Load(opts.configPath)
		if err != nil {
			opts.log.Warn().Err(err).Str("config", opts.configPath).Msg("config not loaded, using defaults")
		} else {
			cfg = loaded
		}
	}

	txns, err := statement.Load(opts.input, cfg.Delimiter())
	if err != nil {
		logLoadError(opts.log, opts.input, err)
		return
	}

	sum, diags := summary.Summarize(txns)
	for _, d := range diags {
		logDiagnostic(opts.log, d)
	}

	fmt.Fprintln(opts.stdout)
	if err := report.Write(opts.stdout, sum, cfg.Report.Currency); err != nil {
		opts.log.Error().Err(err).Msg("writing report")
		return
	}

	if !opts.autoSave && !confirmSave(opts.stdin, opts.stdout) {
		return
	}

	path := report.OutputPath(opts.input, cfg.Report.OutputSuffix)
	if err := report.Save(path, sum, cfg.Report.Currency); err != nil {
		opts.log.Error().Err(err).Str("path", path).Msg("saving report")
		return
	}
	fmt.Fprintf(opts.stdout, "\nReporte guardado exitosamente en '%s'\n", path)
}

func logLoadError(log zerolog.Logger, input string, err error) {
	var schemaErr *statement.SchemaError
	switch {
	case errors.Is(err, os.ErrNotExist):
		log.Error().Str("file", input).Msg("statement file not found")
	case errors.As(err, &schemaErr):
		log.Error().Str("file", input).Strs("columns", schemaErr.Missing).Msg("statement missing required columns")
	default:
		log.Error().Err(err).Str("file", input).Msg("reading statement")
	}
}

func logDiagnostic(log zerolog.Logger, d summary.Diagnostic) {
	switch d.Kind {
	case summary.DiagInvalidAmount:
		log.Error().Str("id", d.ID).Str("monto", d.Value).Msg("invalid amount, row skipped")
	case summary.DiagUnknownType:
		log.Warn().Str("id", d.ID).Str("tipo", d.Value).Msg("unknown transaction type")
	default:
		log.Warn().Str("id", d.ID).Msg(d.String())
	}
}

// confirmSave asks whether to persist the report. Any answer other
// than s/S declines.
func confirmSave(in io.Reader, out io.Writer) bool {
	fmt.Fprint(out, "\n¿Desea guardar el reporte en un archivo? (s/n): ")
	response, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && response == "" {
		return false
	}
	return strings.TrimSpace(strings.ToLower(response)) == "s"
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Uso: movimientos [archivo_csv]")
	fmt.Fprintln(w, "Ejemplo: movimientos transacciones.csv")
}
