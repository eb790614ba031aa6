package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	sm "github.com/IvanChernomyrdin/go-fleet-identity/internal/shared/models"
)

// render печатает v как JSON (--output json) или таблицей через table.
func (a *App) render(cmd *cobra.Command, v any, table func(w io.Writer)) error {
	switch a.Output {
	case "json":
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case "", "table":
		tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		table(tw)
		return tw.Flush()
	default:
		return fmt.Errorf("unknown output format %q; use table or json", a.Output)
	}
}

func row(w io.Writer, cols ...string) {
	fmt.Fprintln(w, strings.Join(cols, "\t"))
}

func pageFooter[T any](w io.Writer, p sm.PagedList[T]) {
	fmt.Fprintf(w, "\npage %d, size %d, total %d\n", p.Page, p.PageSize, p.TotalCount)
}

func optID(id *uuid.UUID) string {
	if id == nil {
		return "-"
	}
	return id.String()
}

func optString(s *string) string {
	if s == nil || *s == "" {
		return "-"
	}
	return *s
}

// pageFlags — общие флаги постраничных списков.
func pageFlags(cmd *cobra.Command, number, size *int) {
	cmd.Flags().IntVar(number, "page", 1, "page number, from 1")
	cmd.Flags().IntVar(size, "page-size", 20, "page size")
}
