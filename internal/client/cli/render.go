package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/rohitpatil05/finlens/internal/client/models"
)

func (a *App) renderClients(clients []models.Client) {
	if len(clients) == 0 {
		fmt.Fprintln(a.out, "No clients.")
		return
	}
	w := tabwriter.NewWriter(a.out, 2, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tEMAIL\tPHONE\tDOCS")
	for _, c := range clients {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%d\n", c.ID, c.Name, c.Email, c.Phone, c.DocumentsCount)
	}
	w.Flush()
}

func (a *App) renderClient(c *models.Client) {
	fmt.Fprintf(a.out, "Client %d: %s\n", c.ID, c.Name)
	if c.Email != "" {
		fmt.Fprintln(a.out, "  email:", c.Email)
	}
	if c.Phone != "" {
		fmt.Fprintln(a.out, "  phone:", c.Phone)
	}
	if c.Address != "" {
		fmt.Fprintln(a.out, "  address:", c.Address)
	}
	if c.Notes != "" {
		fmt.Fprintln(a.out, "  notes:", c.Notes)
	}
	fmt.Fprintf(a.out, "  documents: %d (processed %d)\n", c.DocumentsCount, c.ProcessedCount)
}

func (a *App) renderDocuments(docs []models.Document) {
	if len(docs) == 0 {
		fmt.Fprintln(a.out, "No documents.")
		return
	}
	w := tabwriter.NewWriter(a.out, 2, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTITLE\tSTATUS\tCLIENT\tUPLOADED")
	for _, d := range docs {
		client := "-"
		if d.ClientID != nil {
			client = fmt.Sprintf("%d", *d.ClientID)
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n",
			d.ID, d.Title, d.Status, client, d.CreatedAt.Format("2006-01-02 15:04"))
	}
	w.Flush()
}

func (a *App) renderDocument(d *models.Document) {
	fmt.Fprintf(a.out, "Document %d: %s\n", d.ID, d.Title)
	fmt.Fprintln(a.out, "  status:", d.Status)
	if d.ClientID != nil {
		fmt.Fprintf(a.out, "  client: %d\n", *d.ClientID)
	}
	fmt.Fprintln(a.out, "  uploaded:", d.CreatedAt.Format("2006-01-02 15:04"))
	if d.ProcessedAt != nil {
		fmt.Fprintln(a.out, "  processed:", d.ProcessedAt.Format("2006-01-02 15:04"))
	}
}

func (a *App) renderTables(tables []models.Table) {
	if len(tables) == 0 {
		fmt.Fprintln(a.out, "No tables extracted.")
		return
	}
	for _, t := range tables {
		fmt.Fprintf(a.out, "-- %s --\n", t.Title)
		w := tabwriter.NewWriter(a.out, 2, 4, 2, ' ', 0)
		for i, h := range t.Headers {
			if i > 0 {
				fmt.Fprint(w, "\t")
			}
			fmt.Fprint(w, h)
		}
		fmt.Fprintln(w)
		for _, row := range t.Rows {
			for i, cell := range row {
				if i > 0 {
					fmt.Fprint(w, "\t")
				}
				fmt.Fprint(w, cell)
			}
			fmt.Fprintln(w)
		}
		w.Flush()
	}
}

func (a *App) renderBankStatement(bs *models.BankStatement) {
	if bs.AccountNumber != "" {
		fmt.Fprintln(a.out, "Account:", bs.AccountNumber)
	}
	if bs.PeriodStart != "" || bs.PeriodEnd != "" {
		fmt.Fprintf(a.out, "Period: %s to %s\n", bs.PeriodStart, bs.PeriodEnd)
	}
	fmt.Fprintf(a.out, "Credits: %.2f  Debits: %.2f  Closing: %.2f\n",
		bs.TotalCredits, bs.TotalDebits, bs.ClosingBalance)
	if len(bs.Monthly) > 0 {
		w := tabwriter.NewWriter(a.out, 2, 4, 2, ' ', 0)
		fmt.Fprintln(w, "MONTH\tCREDITS\tDEBITS")
		for _, m := range bs.Monthly {
			fmt.Fprintf(w, "%s\t%.2f\t%.2f\n", m.Month, m.Credits, m.Debits)
		}
		w.Flush()
	}
	if len(bs.Categories) > 0 {
		w := tabwriter.NewWriter(a.out, 2, 4, 2, ' ', 0)
		fmt.Fprintln(w, "CATEGORY\tAMOUNT")
		for _, c := range bs.Categories {
			fmt.Fprintf(w, "%s\t%.2f\n", c.Category, c.Amount)
		}
		w.Flush()
	}
}
