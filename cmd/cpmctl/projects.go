package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/kiokosk/CustomerProjectManagement/internal/client"
	"github.com/kiokosk/CustomerProjectManagement/internal/projects/domain"
)

func runProjects(ctx context.Context, c *client.Client, cmd string, args []string, out io.Writer) error {
	switch cmd {
	case "list":
		items, err := c.ListProjects(ctx)
		if err != nil {
			return err
		}
		printProjects(out, items...)
		return nil

	case "get":
		id, _, err := parseID(args)
		if err != nil {
			return err
		}
		item, err := c.GetProject(ctx, id)
		if err != nil {
			return err
		}
		printProjects(out, *item)
		return nil

	case "add":
		fs := flag.NewFlagSet("projects add", flag.ContinueOnError)
		fs.SetOutput(io.Discard)
		req := client.ProjectRequest{}
		fs.StringVar(&req.Name, "name", "", "project name")
		fs.StringVar(&req.Description, "description", "", "project description")
		fs.Int64Var(&req.CustomerID, "customer", 0, "owning customer id")
		if err := fs.Parse(args); err != nil {
			return err
		}
		item, err := c.CreateProject(ctx, req)
		if err != nil {
			return err
		}
		printProjects(out, *item)
		return nil

	case "edit":
		id, rest, err := parseID(args)
		if err != nil {
			return err
		}
		current, err := c.GetProject(ctx, id)
		if err != nil {
			return err
		}

		fs := flag.NewFlagSet("projects edit", flag.ContinueOnError)
		fs.SetOutput(io.Discard)
		name := fs.String("name", "", "project name")
		description := fs.String("description", "", "project description")
		customer := fs.Int64("customer", 0, "owning customer id")
		if err := fs.Parse(rest); err != nil {
			return err
		}

		req := client.ProjectRequest{Name: current.Name, Description: current.Description, CustomerID: current.CustomerID}
		seen := flagSet(fs)
		if seen["name"] {
			req.Name = *name
		}
		if seen["description"] {
			req.Description = *description
		}
		if seen["customer"] {
			req.CustomerID = *customer
		}

		item, err := c.UpdateProject(ctx, id, req)
		if err != nil {
			return err
		}
		printProjects(out, *item)
		return nil

	case "rm", "delete":
		id, _, err := parseID(args)
		if err != nil {
			return err
		}
		msg, err := c.DeleteProject(ctx, id)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, msg)
		return nil

	default:
		return fmt.Errorf("unknown projects command: %s", cmd)
	}
}

func printProjects(out io.Writer, items ...domain.Project) {
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tCUSTOMER\tDESCRIPTION\tCREATED")
	for _, p := range items {
		customer := fmt.Sprintf("#%d", p.CustomerID)
		if p.Customer != nil && p.Customer.Name != "" {
			customer = p.Customer.Name
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n", p.ID, p.Name, customer, p.Description, p.CreatedAt.Format("2006-01-02 15:04"))
	}
	tw.Flush()
}
