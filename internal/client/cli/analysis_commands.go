package cli

import (
	"context"
	"fmt"
	"os"
	"sort"
	"strings"
)

func (a *App) cmdAnalysis(ctx context.Context, args []string) error {
	id, err := parseID(args, "analysis <id>")
	if err != nil {
		return err
	}
	results, err := a.analysis.Results(ctx, id)
	if err != nil {
		return a.sliceError(err, a.store.Snapshot().Documents.Error)
	}

	keys := make([]string, 0, len(results))
	for k := range results {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(a.out, "%s: %v\n", k, results[k])
	}
	return nil
}

func (a *App) cmdCibil(ctx context.Context, args []string) error {
	id, err := parseID(args, "cibil <id>")
	if err != nil {
		return err
	}
	score, err := a.analysis.Cibil(ctx, id)
	if err != nil {
		return a.sliceError(err, a.store.Snapshot().Documents.Error)
	}
	fmt.Fprintf(a.out, "CIBIL score: %d\n", score.Score)
	return nil
}

func (a *App) cmdSummary(ctx context.Context, args []string) error {
	id, err := parseID(args, "summary <id>")
	if err != nil {
		return err
	}
	summary, err := a.analysis.Summary(ctx, id)
	if err != nil {
		return a.sliceError(err, a.store.Snapshot().Documents.Error)
	}
	fmt.Fprintln(a.out, summary.Summary)
	for _, h := range summary.Highlights {
		fmt.Fprintln(a.out, " -", h)
	}
	return nil
}

func (a *App) cmdTables(ctx context.Context, args []string) error {
	id, err := parseID(args, "tables <id>")
	if err != nil {
		return err
	}
	tables, err := a.analysis.Tables(ctx, id)
	if err != nil {
		return a.sliceError(err, a.store.Snapshot().Documents.Error)
	}
	a.renderTables(tables)
	return nil
}

func (a *App) cmdOCR(ctx context.Context, args []string) error {
	id, err := parseID(args, "ocr <id>")
	if err != nil {
		return err
	}
	text, err := a.analysis.OCR(ctx, id)
	if err != nil {
		return a.sliceError(err, a.store.Snapshot().Documents.Error)
	}
	fmt.Fprintln(a.out, text.Text)
	if text.Confidence > 0 {
		fmt.Fprintf(a.out, "(confidence %.1f%%)\n", text.Confidence*100)
	}
	return nil
}

func (a *App) cmdBankStatement(ctx context.Context, args []string) error {
	id, err := parseID(args, "bank <id>")
	if err != nil {
		return err
	}
	bs, err := a.analysis.BankStatement(ctx, id)
	if err != nil {
		return a.sliceError(err, a.store.Snapshot().Documents.Error)
	}
	a.renderBankStatement(bs)
	return nil
}

func (a *App) cmdChat(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("usage: chat <id> <question>")
	}
	id, err := parseID(args[:1], "chat <id> <question>")
	if err != nil {
		return err
	}
	question := strings.Join(args[1:], " ")

	resp, err := a.analysis.Chat(ctx, id, question)
	if err != nil {
		return a.sliceError(err, a.store.Snapshot().Documents.Error)
	}
	fmt.Fprintln(a.out, resp.Message)
	return nil
}

func (a *App) cmdReport(ctx context.Context, args []string) error {
	id, err := parseID(args, "report <id> [format]")
	if err != nil {
		return err
	}
	format := "pdf"
	if len(args) > 1 {
		format = args[1]
	}

	report, err := a.analysis.Download(ctx, id, format)
	if err != nil {
		return a.sliceError(err, a.store.Snapshot().Documents.Error)
	}
	if err := os.WriteFile(report.Filename, report.Data, 0o644); err != nil {
		return fmt.Errorf("save report: %w", err)
	}
	fmt.Fprintf(a.out, "Saved %s (%d bytes)\n", report.Filename, len(report.Data))
	return nil
}
