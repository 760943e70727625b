package handlers

import (
	"context"
	"fmt"
	"slices"
	"text/tabwriter"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/imamik/cloudlaunch/internal/platform/provider"
)

// instanceOutput is the JSON form of a listed instance.
type instanceOutput struct {
	ID      string    `json:"id"`
	Name    string    `json:"name"`
	State   string    `json:"state"`
	Address string    `json:"address,omitempty"`
	Created time.Time `json:"created"`
}

// List prints all instances, newest first.
func List(ctx context.Context, configPath string, jsonOutput bool) error {
	_, p, _, err := setup(ctx, configPath)
	if err != nil {
		return err
	}

	instances, err := p.ListInstances(ctx)
	if err != nil {
		return fmt.Errorf("failed to list instances: %w", err)
	}
	slices.SortStableFunc(instances, func(a, b *provider.Instance) int {
		return b.Created.Compare(a.Created)
	})

	if jsonOutput || !isTerminal() {
		out := make([]instanceOutput, 0, len(instances))
		for _, inst := range instances {
			out = append(out, instanceOutput{
				ID:      inst.ID,
				Name:    inst.Name,
				State:   string(inst.State),
				Address: inst.PrimaryAddress(),
				Created: inst.Created,
			})
		}
		return printJSON(out)
	}

	if len(instances) == 0 {
		fmt.Fprintln(stdout, "No instances found.")
		return nil
	}

	w := tabwriter.NewWriter(stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tID\tSTATE\tADDRESS\tAGE")
	current := now()
	for _, inst := range instances {
		age := "-"
		if !inst.Created.IsZero() {
			age = humanize.RelTime(inst.Created, current, "ago", "from now")
		}
		address := inst.PrimaryAddress()
		if address == "" {
			address = "-"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", inst.Name, inst.ID, inst.State, address, age)
	}
	return w.Flush()
}
