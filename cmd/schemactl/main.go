// Command schemactl renders schema.org entities from the command line and
// manages entities stored in a schema-markup service.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/diwise/schema-markup/pkg/client"
	"github.com/spf13/cobra"
)

func main() {
	if err := rootCmd(newClient).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

type clientFactory func(server, token string) client.SchemaMarkupClient

func newClient(server, token string) client.SchemaMarkupClient {
	return client.NewSchemaMarkupClient(server, client.Token(token), client.Debug(os.Getenv("SCHEMACTL_DEBUG")))
}

func rootCmd(clients clientFactory) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "schemactl",
		Short: "Render schema.org entities as JSON-LD, Microdata or RDFa",
		Long: `Render schema.org entities as embeddable structured data.

Entities are read as JSON-LD documents from a file or from stdin.

Examples:
  schemactl render article.jsonld --format microdata
  cat article.jsonld | schemactl nquads --canonical
  schemactl entities store article.jsonld --server http://localhost:8080
`,
		SilenceUsage: true,
	}

	cmd.AddCommand(renderCmd())
	cmd.AddCommand(nquadsCmd())
	cmd.AddCommand(formatsCmd())
	cmd.AddCommand(entitiesCmd(clients))

	return cmd
}

// readInput reads the file named by the first argument, or stdin if there is
// no argument or the argument is "-"
func readInput(cmd *cobra.Command, args []string) ([]byte, error) {
	if len(args) == 0 || args[0] == "-" {
		return io.ReadAll(cmd.InOrStdin())
	}

	b, err := os.ReadFile(args[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", args[0], err)
	}

	return b, nil
}
