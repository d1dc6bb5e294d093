package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/rohitpatil05/finlens/internal/client/api"
)

func (a *App) cmdDocuments(ctx context.Context, args []string) error {
	docs, err := a.documents.List(ctx)
	if err != nil {
		return a.sliceError(err, a.store.Snapshot().Documents.Error)
	}
	a.renderDocuments(docs)
	return nil
}

func (a *App) cmdDocument(ctx context.Context, args []string) error {
	id, err := parseID(args, "doc <id>")
	if err != nil {
		return err
	}
	doc, err := a.documents.Get(ctx, id)
	if err != nil {
		return a.sliceError(err, a.store.Snapshot().Documents.Error)
	}
	a.renderDocument(doc)
	return nil
}

func (a *App) cmdUpload(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: upload <file> [title]")
	}
	path := args[0]
	title := strings.Join(args[1:], " ")
	if title == "" {
		title = filepath.Base(path)
	}

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	in := api.UploadInput{FileName: filepath.Base(path), Content: f, Title: title}

	clientID, err := GetOptionalText(a.reader, "Attach to client id", a.out)
	if err != nil {
		return err
	}
	if clientID != "" {
		id, err := strconv.ParseInt(clientID, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid client id %q", clientID)
		}
		in.ClientID = &id
	}

	doc, err := a.documents.Upload(ctx, in)
	if err != nil {
		return a.sliceError(err, a.store.Snapshot().Documents.Error)
	}
	fmt.Fprintf(a.out, "Uploaded document %d (%s), status %s\n", doc.ID, doc.Title, doc.Status)
	return nil
}

func (a *App) cmdProcess(ctx context.Context, args []string) error {
	id, err := parseID(args, "process <id>")
	if err != nil {
		return err
	}
	res, err := a.documents.Process(ctx, id)
	if err != nil {
		return a.sliceError(err, a.store.Snapshot().Documents.Error)
	}
	fmt.Fprintf(a.out, "Document %d processed", res.DocumentID)
	if res.Score > 0 {
		fmt.Fprintf(a.out, ", score %.0f", res.Score)
	}
	fmt.Fprintln(a.out)
	if res.Message != "" {
		fmt.Fprintln(a.out, res.Message)
	}
	return nil
}

func (a *App) cmdDeleteDocument(ctx context.Context, args []string) error {
	id, err := parseID(args, "deldoc <id>")
	if err != nil {
		return err
	}
	if err := a.documents.Delete(ctx, id); err != nil {
		return a.sliceError(err, a.store.Snapshot().Documents.Error)
	}
	fmt.Fprintf(a.out, "Deleted document %d\n", id)
	return nil
}

func (a *App) cmdDocStatus(ctx context.Context, args []string) error {
	id, err := parseID(args, "docstatus <id>")
	if err != nil {
		return err
	}
	st, err := a.documents.Status(ctx, id)
	if err != nil {
		return a.sliceError(err, a.store.Snapshot().Documents.Error)
	}
	fmt.Fprintf(a.out, "Document %d: %s\n", st.DocumentID, st.Status)
	return nil
}

// cmdStats is the admin dashboard's numbers, computed over the store.
func (a *App) cmdStats(ctx context.Context, args []string) error {
	snap := a.store.Snapshot()
	processed := 0
	for _, d := range snap.Documents.Documents {
		if d.Status.Terminal() {
			processed++
		}
	}
	fmt.Fprintf(a.out, "clients: %d\n", len(snap.Clients.Clients))
	fmt.Fprintf(a.out, "documents: %d (processed: %d)\n", len(snap.Documents.Documents), processed)
	if !snap.Clients.LastFetched.IsZero() {
		fmt.Fprintf(a.out, "client list fetched: %s\n", snap.Clients.LastFetched.Format("15:04:05"))
	}
	return nil
}
