package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/kiokosk/CustomerProjectManagement/internal/client"
	"github.com/kiokosk/CustomerProjectManagement/internal/customers/domain"
)

func runCustomers(ctx context.Context, c *client.Client, cmd string, args []string, out io.Writer) error {
	switch cmd {
	case "list":
		items, err := c.ListCustomers(ctx)
		if err != nil {
			return err
		}
		printCustomers(out, items...)
		return nil

	case "get":
		id, _, err := parseID(args)
		if err != nil {
			return err
		}
		item, err := c.GetCustomer(ctx, id)
		if err != nil {
			return err
		}
		printCustomers(out, *item)
		return nil

	case "add":
		fs := flag.NewFlagSet("customers add", flag.ContinueOnError)
		fs.SetOutput(io.Discard)
		req := client.CustomerRequest{}
		fs.StringVar(&req.Name, "name", "", "customer name")
		fs.StringVar(&req.Email, "email", "", "customer email")
		fs.StringVar(&req.Address, "address", "", "customer address")
		if err := fs.Parse(args); err != nil {
			return err
		}
		item, err := c.CreateCustomer(ctx, req)
		if err != nil {
			return err
		}
		printCustomers(out, *item)
		return nil

	case "edit":
		id, rest, err := parseID(args)
		if err != nil {
			return err
		}
		current, err := c.GetCustomer(ctx, id)
		if err != nil {
			return err
		}

		fs := flag.NewFlagSet("customers edit", flag.ContinueOnError)
		fs.SetOutput(io.Discard)
		name := fs.String("name", "", "customer name")
		email := fs.String("email", "", "customer email")
		address := fs.String("address", "", "customer address")
		if err := fs.Parse(rest); err != nil {
			return err
		}

		// PUT replaces every field, so start from the stored record.
		req := client.CustomerRequest{Name: current.Name, Email: current.Email, Address: current.Address}
		seen := flagSet(fs)
		if seen["name"] {
			req.Name = *name
		}
		if seen["email"] {
			req.Email = *email
		}
		if seen["address"] {
			req.Address = *address
		}

		item, err := c.UpdateCustomer(ctx, id, req)
		if err != nil {
			return err
		}
		printCustomers(out, *item)
		return nil

	case "rm", "delete":
		id, _, err := parseID(args)
		if err != nil {
			return err
		}
		msg, err := c.DeleteCustomer(ctx, id)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, msg)
		return nil

	default:
		return fmt.Errorf("unknown customers command: %s", cmd)
	}
}

func printCustomers(out io.Writer, items ...domain.Customer) {
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tEMAIL\tADDRESS\tCREATED")
	for _, c := range items {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n", c.ID, c.Name, c.Email, c.Address, c.CreatedAt.Format("2006-01-02 15:04"))
	}
	tw.Flush()
}
