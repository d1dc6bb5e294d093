package devserver

import (
	"fmt"

	"github.com/rohitpatil05/finlens/internal/client/models"
)

type analysisData struct {
	score      int
	summary    string
	ocrText    string
	confidence float64
	tables     []models.Table
	statement  models.BankStatement
}

// cannedAnalysis derives a stable fake analysis from the document id so
// processing the same document always yields the same numbers.
func cannedAnalysis(id int64) analysisData {
	score := 700 + int(id%100)
	credits := 50000.0 + float64(id%7)*2500
	debits := 32000.0 + float64(id%5)*1800

	return analysisData{
		score: score,
		summary: fmt.Sprintf(
			"Statement for document %d shows regular salary credits, moderate discretionary spend and no missed obligations. Derived credit score: %d.",
			id, score),
		ocrText: fmt.Sprintf(
			"ACME BANK\nStatement of account\nDocument reference %d\nOpening balance 12,450.00\nClosing balance %.2f\n",
			id, credits-debits+12450),
		confidence: 0.93,
		tables: []models.Table{
			{
				ID:      1,
				Title:   "Monthly totals",
				Headers: []string{"Month", "Credits", "Debits"},
				Rows: [][]string{
					{"2026-05", fmt.Sprintf("%.2f", credits/3), fmt.Sprintf("%.2f", debits/3)},
					{"2026-06", fmt.Sprintf("%.2f", credits/3), fmt.Sprintf("%.2f", debits/3)},
					{"2026-07", fmt.Sprintf("%.2f", credits/3), fmt.Sprintf("%.2f", debits/3)},
				},
			},
			{
				ID:      2,
				Title:   "Top categories",
				Headers: []string{"Category", "Amount"},
				Rows: [][]string{
					{"Rent", fmt.Sprintf("%.2f", debits*0.4)},
					{"Groceries", fmt.Sprintf("%.2f", debits*0.25)},
					{"Transport", fmt.Sprintf("%.2f", debits*0.1)},
				},
			},
		},
		statement: models.BankStatement{
			AccountNumber:  fmt.Sprintf("XXXX-%04d", 1000+id%9000),
			PeriodStart:    "2026-05-01",
			PeriodEnd:      "2026-07-31",
			TotalCredits:   credits,
			TotalDebits:    debits,
			ClosingBalance: credits - debits + 12450,
			Monthly: []models.MonthlyTotal{
				{Month: "2026-05", Credits: credits / 3, Debits: debits / 3},
				{Month: "2026-06", Credits: credits / 3, Debits: debits / 3},
				{Month: "2026-07", Credits: credits / 3, Debits: debits / 3},
			},
			Categories: []models.CategoryTotal{
				{Category: "Rent", Amount: debits * 0.4},
				{Category: "Groceries", Amount: debits * 0.25},
				{Category: "Transport", Amount: debits * 0.1},
				{Category: "Other", Amount: debits * 0.25},
			},
		},
	}
}
