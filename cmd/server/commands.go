package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/phrazzld/escribe/internal/api"
	"github.com/phrazzld/escribe/internal/domain"
	"github.com/spf13/cobra"
)

// newRootCmd builds the CLI. Running the binary without a subcommand serves
// HTTP, same as `escribe serve`.
func newRootCmd() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:           "escribe",
		Short:         "Generate written pieces from a short form",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context(), configPath)
		},
	}
	root.PersistentFlags().StringVar(&configPath, "config", "",
		"path to a YAML config file (overrides ESCRIBE_CONFIG_FILE)")

	root.AddCommand(newServeCmd(&configPath), newGenerateCmd(&configPath))
	return root
}

func newServeCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the compose page and JSON API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context(), *configPath)
		},
	}
}

func newGenerateCmd(configPath *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate one piece and print it to stdout",
		Long: `Generate one piece from the given fields without starting the server.

Example:
  escribe generate --tipo poema --tema "el mar" --estilo romántico --longitud 50`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := newApplication(cmd.Context(), *configPath)
			if err != nil {
				return err
			}
			return app.generateOnce(cmd.Context(), fieldsFromFlags(cmd), cmd.OutOrStdout())
		},
	}

	for _, key := range domain.RequiredFields {
		cmd.Flags().String(key, "", flagUsage[key])
	}
	return cmd
}

var flagUsage = map[string]string{
	domain.FieldContentType:  "content type, e.g. poema",
	domain.FieldTopic:        "topic, e.g. \"el mar\"",
	domain.FieldStyle:        "style, e.g. romántico",
	domain.FieldTargetLength: "target length in words",
}

// fieldsFromFlags collects only the flags the user set, so an omitted flag is
// reported as a missing field.
func fieldsFromFlags(cmd *cobra.Command) domain.Fields {
	fields := domain.Fields{}
	for _, key := range domain.RequiredFields {
		if !cmd.Flags().Changed(key) {
			continue
		}
		value, _ := cmd.Flags().GetString(key)
		fields[key] = value
	}
	return fields
}

func runServe(ctx context.Context, configPath string) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := newApplication(ctx, configPath)
	if err != nil {
		return err
	}

	return app.serve(ctx)
}

// generateOnce runs a single submission and writes the text to out.
func (app *application) generateOnce(ctx context.Context, fields domain.Fields, out io.Writer) error {
	result, err := app.composer.HandleSubmission(ctx, fields)
	if err != nil {
		return fmt.Errorf("%s: %w", api.GetSafeErrorMessage(err), err)
	}

	_, err = fmt.Fprintln(out, result.Text)
	return err
}
