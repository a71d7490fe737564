package commands

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/diogo/projectassist/internal/models"
)

// catalogJSON is the --json shape when both catalogs are printed
type catalogJSON struct {
	Topics  []models.Option `json:"topics"`
	Sources []models.Option `json:"sources"`
}

// NewCatalogCmd creates the catalog command
func NewCatalogCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:       "catalog [topics|sources]",
		Short:     "List the selectable topics and sources",
		Long:      `Print the topic and source catalogs the wizard offers, with the ids accepted by --topics and --sources.`,
		Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"topics", "sources"},
		RunE: func(cmd *cobra.Command, args []string) error {
			which := ""
			if len(args) == 1 {
				which = args[0]
			}
			return printCatalog(cmd.OutOrStdout(), which, asJSON)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Output as JSON")
	return cmd
}

func printCatalog(w io.Writer, which string, asJSON bool) error {
	if asJSON {
		var v any
		switch which {
		case "topics":
			v = models.TopicOptions()
		case "sources":
			v = models.SourceOptions()
		default:
			v = catalogJSON{Topics: models.TopicOptions(), Sources: models.SourceOptions()}
		}

		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode catalog: %w", err)
		}
		fmt.Fprintln(w, string(data))
		return nil
	}

	if which == "" || which == "topics" {
		printOptions(w, "Topics", models.TopicOptions())
	}
	if which == "" {
		fmt.Fprintln(w)
	}
	if which == "" || which == "sources" {
		printOptions(w, "Sources", models.SourceOptions())
	}
	return nil
}

func printOptions(w io.Writer, heading string, opts []models.Option) {
	fmt.Fprintf(w, "%s:\n", heading)
	for _, o := range opts {
		fmt.Fprintf(w, "  %-16s %-18s %s\n", o.ID, o.Title, o.Description)
	}
}
