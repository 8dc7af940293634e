package cmd

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/psds-microservice/medicine-catalog/internal/catalog"
	"github.com/psds-microservice/medicine-catalog/internal/database"
	"github.com/psds-microservice/medicine-catalog/internal/model"
	"github.com/psds-microservice/medicine-catalog/internal/repository"
)

var listReference bool

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Print medicines stored in the database (or the embedded reference list)",
	RunE:  runList,
}

func init() {
	listCmd.Flags().BoolVar(&listReference, "reference", false, "Print the embedded reference list instead of the table")
}

func runList(cmd *cobra.Command, args []string) error {
	if listReference {
		return printMedicines(cmd.OutOrStdout(), catalog.Reference())
	}

	cfg, logger, err := bootstrap()
	if err != nil {
		return err
	}
	defer logger.Sync()

	ctx := context.Background()
	db, err := database.Open(ctx, cfg.Database.Driver, cfg.DSN())
	if err != nil {
		return fmt.Errorf("db: %w", err)
	}
	defer db.Close()

	list, err := repository.NewMedicineRepository(db, cfg.Database.Driver).List(ctx)
	if err != nil {
		return err
	}
	return printMedicines(cmd.OutOrStdout(), list)
}

func printMedicines(out io.Writer, list []model.Medicine) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tCONCENTRATION\tPRESENTATION")
	for _, m := range list {
		fmt.Fprintf(w, "%s\t%s\t%s\n", m.GenericName, m.Concentration, m.Presentation)
	}
	fmt.Fprintf(w, "\n%d medicines\n", len(list))
	return w.Flush()
}
