package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"

	"github.com/kiokosk/CustomerProjectManagement/internal/client"
)

const usage = `usage: cpmctl [-api URL] <resource> <command> [args]

resources:
  customers   list | get <id> | add -name -email -address | edit <id> [-name -email -address] | rm <id>
  projects    list | get <id> | add -name -description -customer | edit <id> [-name -description -customer] | rm <id>

The API URL defaults to $CPM_API_URL or http://localhost:8080.`

func main() {
	log.SetFlags(0)
	if err := run(context.Background(), os.Args[1:], os.Stdout); err != nil {
		log.Fatal(err)
	}
}

func run(ctx context.Context, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("cpmctl", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	apiURL := fs.String("api", envOr("CPM_API_URL", "http://localhost:8080"), "API base URL")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%v\n%s", err, usage)
	}

	rest := fs.Args()
	if len(rest) < 2 {
		return fmt.Errorf("%s", usage)
	}

	c := client.New(*apiURL)
	switch rest[0] {
	case "customers", "customer":
		return runCustomers(ctx, c, rest[1], rest[2:], out)
	case "projects", "project":
		return runProjects(ctx, c, rest[1], rest[2:], out)
	default:
		return fmt.Errorf("unknown resource: %s\n%s", rest[0], usage)
	}
}

// parseID reads the leading positional id and returns the remaining args.
func parseID(args []string) (int64, []string, error) {
	if len(args) == 0 {
		return 0, nil, fmt.Errorf("missing id")
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return 0, nil, fmt.Errorf("invalid id %q", args[0])
	}
	return id, args[1:], nil
}

// flagSet reports which flags were explicitly given.
func flagSet(fs *flag.FlagSet) map[string]bool {
	seen := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { seen[f.Name] = true })
	return seen
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
