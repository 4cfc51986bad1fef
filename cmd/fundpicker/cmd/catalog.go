package cmd

import (
	"fmt"
	"os"

	"FundPicker/internal/catalog"
	"FundPicker/internal/notifier"

	"github.com/spf13/cobra"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Inspect and manage the fund catalog",
}

var catalogListCmd = &cobra.Command{
	Use:   "list",
	Short: "Print every fund in the configured catalog",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := bootstrap()
		if err != nil {
			return err
		}
		out, err := terminalOut(os.Stdout)
		if err != nil {
			return err
		}
		return out.Send(notifier.MarkdownFormatter{}.Catalog(a.catalog, a.engine.Classifier().Label))
	},
}

var catalogImportCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Replace the SQLite catalog with the funds in a YAML or JSON file",
	Long: `Import validates a catalog file and stores it in database.sqlite_path,
replacing whatever was there. Set catalog.source to sqlite to serve it.

Example:
  fundpicker catalog import configs/funds.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, log, err := loadConfig()
		if err != nil {
			return err
		}
		funds, err := catalog.Load(catalog.NewFileSource(args[0]), log)
		if err != nil {
			return err
		}
		store, err := catalog.OpenSQLite(cfg.Database.SQLitePath, log)
		if err != nil {
			return err
		}
		defer store.Close()
		if err := store.Replace(funds); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "imported %d funds into %s\n", len(funds), cfg.Database.SQLitePath)
		return nil
	},
}

var catalogExportCmd = &cobra.Command{
	Use:   "export <file>",
	Short: "Write the configured catalog to a YAML or JSON file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := bootstrap()
		if err != nil {
			return err
		}
		if err := catalog.WriteFile(args[0], a.catalog); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "exported %d funds to %s\n", len(a.catalog), args[0])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(catalogCmd)
	catalogCmd.AddCommand(catalogListCmd, catalogImportCmd, catalogExportCmd)
}
