package models

import "encoding/json"

// AnalysisResult is the payload of a successful process call. The backend
// owns the schema; Results carries whatever detail it attaches, untouched.
type AnalysisResult struct {
	DocumentID int64           `json:"documentId"`
	Status     DocumentStatus  `json:"status,omitempty"`
	Message    string          `json:"message,omitempty"`
	Score      float64         `json:"score,omitempty"`
	Results    json.RawMessage `json:"results,omitempty"`
}

// CibilScore is the credit-score view of an analysis.
type CibilScore struct {
	Score         int            `json:"score"`
	ExtractedData map[string]any `json:"extractedData,omitempty"`
}

// Summary is the narrative view of an analysis.
type Summary struct {
	Summary    string   `json:"summary"`
	Highlights []string `json:"highlights,omitempty"`
}

// Table is a single table extracted from the source document.
type Table struct {
	ID      int64      `json:"id"`
	Title   string     `json:"title"`
	Headers []string   `json:"headers"`
	Rows    [][]string `json:"rows"`
}

// OCRText is the raw recognized text of the document.
type OCRText struct {
	Text       string  `json:"text"`
	Confidence float64 `json:"confidence,omitempty"`
}

// MonthlyTotal is one month of credits/debits in a bank statement.
type MonthlyTotal struct {
	Month   string  `json:"month"`
	Credits float64 `json:"credits"`
	Debits  float64 `json:"debits"`
}

// CategoryTotal is spend attributed to one expense category.
type CategoryTotal struct {
	Category string  `json:"category"`
	Amount   float64 `json:"amount"`
}

// BankStatement is the statement-level breakdown of an analysis.
type BankStatement struct {
	AccountNumber  string          `json:"account_number,omitempty"`
	PeriodStart    string          `json:"period_start,omitempty"`
	PeriodEnd      string          `json:"period_end,omitempty"`
	TotalCredits   float64         `json:"total_credits"`
	TotalDebits    float64         `json:"total_debits"`
	ClosingBalance float64         `json:"closing_balance"`
	Monthly        []MonthlyTotal  `json:"monthly,omitempty"`
	Categories     []CategoryTotal `json:"categories,omitempty"`
}

// ChatMessage is one user question about an analyzed document.
type ChatMessage struct {
	Message string `json:"message"`
}

// ChatResponse is the backend's answer.
type ChatResponse struct {
	Message string `json:"message"`
}

// Report is a downloaded analysis report.
type Report struct {
	Filename    string
	ContentType string
	Data        []byte
}
