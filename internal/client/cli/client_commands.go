package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/rohitpatil05/finlens/internal/client/models"
)

func parseID(args []string, usage string) (int64, error) {
	if len(args) == 0 {
		return 0, fmt.Errorf("usage: %s", usage)
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q", args[0])
	}
	return id, nil
}

func (a *App) cmdClients(ctx context.Context, args []string) error {
	clients, err := a.clients.List(ctx)
	if err != nil {
		return a.sliceError(err, a.store.Snapshot().Clients.Error)
	}
	a.renderClients(clients)
	return nil
}

func (a *App) cmdClient(ctx context.Context, args []string) error {
	id, err := parseID(args, "client <id>")
	if err != nil {
		return err
	}
	client, err := a.clients.Get(ctx, id)
	if err != nil {
		return a.sliceError(err, a.store.Snapshot().Clients.Error)
	}
	a.renderClient(client)
	return nil
}

func (a *App) cmdAddClient(ctx context.Context, args []string) error {
	in, err := a.promptClientInput(models.ClientInput{})
	if err != nil {
		return err
	}
	client, err := a.clients.Create(ctx, in)
	if err != nil {
		return a.sliceError(err, a.store.Snapshot().Clients.Error)
	}
	fmt.Fprintf(a.out, "Created client %d (%s)\n", client.ID, client.Name)
	return nil
}

func (a *App) cmdEditClient(ctx context.Context, args []string) error {
	id, err := parseID(args, "editclient <id>")
	if err != nil {
		return err
	}

	current, err := a.clients.Get(ctx, id)
	if err != nil {
		return a.sliceError(err, a.store.Snapshot().Clients.Error)
	}

	in, err := a.promptClientInput(models.ClientInput{
		Name:    current.Name,
		Email:   current.Email,
		Phone:   current.Phone,
		Address: current.Address,
		Notes:   current.Notes,
	})
	if err != nil {
		return err
	}

	client, err := a.clients.Update(ctx, id, in)
	if err != nil {
		return a.sliceError(err, a.store.Snapshot().Clients.Error)
	}
	fmt.Fprintf(a.out, "Updated client %d (%s)\n", client.ID, client.Name)
	return nil
}

func (a *App) cmdDeleteClient(ctx context.Context, args []string) error {
	id, err := parseID(args, "delclient <id>")
	if err != nil {
		return err
	}
	if err := a.clients.Delete(ctx, id); err != nil {
		return a.sliceError(err, a.store.Snapshot().Clients.Error)
	}
	fmt.Fprintf(a.out, "Deleted client %d\n", id)
	return nil
}

func (a *App) cmdClientDocs(ctx context.Context, args []string) error {
	id, err := parseID(args, "clientdocs <id>")
	if err != nil {
		return err
	}
	docs, err := a.clients.Documents(ctx, id)
	if err != nil {
		return a.sliceError(err, a.store.Snapshot().Clients.Error)
	}
	a.renderDocuments(docs)
	return nil
}

// promptClientInput collects client fields, offering the existing values
// as defaults when editing.
func (a *App) promptClientInput(defaults models.ClientInput) (models.ClientInput, error) {
	in := defaults

	name, err := GetSimpleText(a.reader, promptWithDefault("Name", defaults.Name), a.out)
	if err != nil {
		return in, err
	}
	if name != "" {
		in.Name = name
	}
	if in.Name == "" {
		return in, fmt.Errorf("name is required")
	}

	for _, field := range []struct {
		label string
		dst   *string
	}{
		{"Email", &in.Email},
		{"Phone", &in.Phone},
		{"Address", &in.Address},
		{"Notes", &in.Notes},
	} {
		v, err := GetOptionalText(a.reader, promptWithDefault(field.label, *field.dst), a.out)
		if err != nil {
			return in, err
		}
		if v != "" {
			*field.dst = v
		}
	}
	return in, nil
}

func promptWithDefault(label, current string) string {
	if current == "" {
		return label
	}
	return fmt.Sprintf("%s [%s]", label, current)
}

// sliceError prefers the message captured in the slice over the raw
// error, matching what a view bound to that slice would show.
func (a *App) sliceError(err error, sliceMsg string) error {
	if sliceMsg != "" {
		fmt.Fprintln(a.out, sliceMsg)
		return nil
	}
	return err
}
