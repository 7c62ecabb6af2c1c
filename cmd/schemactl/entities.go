package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/buger/jsonparser"
	"github.com/diwise/schema-markup/pkg/schema"
	"github.com/spf13/cobra"
)

func entitiesCmd(clients clientFactory) *cobra.Command {
	var (
		server string
		token  string
	)

	cmd := &cobra.Command{
		Use:   "entities",
		Short: "Manage entities stored in a schema-markup service",
	}

	cmd.PersistentFlags().StringVar(&server, "server", "http://localhost:8080", "base URL of the schema-markup service")
	cmd.PersistentFlags().StringVar(&token, "token", "", "bearer token sent with every request")

	cmd.AddCommand(&cobra.Command{
		Use:   "store [file|-]",
		Short: "Store an entity, the @id of the document is used if present",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := readInput(cmd, args)
			if err != nil {
				return err
			}

			e, err := schema.NewFromJSON(b)
			if err != nil {
				return err
			}

			entityID, _ := jsonparser.GetString(b, "@id")

			location, err := clients(server, token).StoreEntity(cmd.Context(), entityID, e)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), location)
			return nil
		},
	})

	var format string

	get := &cobra.Command{
		Use:   "get <id>",
		Short: "Render a stored entity",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := clients(server, token).RetrieveEntity(cmd.Context(), args[0], format)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}
	get.Flags().StringVarP(&format, "format", "f", "", "output format, the service default is used if empty")
	cmd.AddCommand(get)

	cmd.AddCommand(&cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a stored entity",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return clients(server, token).DeleteEntity(cmd.Context(), args[0])
		},
	})

	var (
		entityType    string
		offset, limit int
	)

	list := &cobra.Command{
		Use:   "list",
		Short: "List stored entities",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			entities, err := clients(server, token).ListEntities(cmd.Context(), entityType, offset, limit)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			defer w.Flush()

			for _, e := range entities {
				fmt.Fprintf(w, "%s\t%s\n", e.ID, e.Type)
			}

			return nil
		},
	}
	list.Flags().StringVar(&entityType, "type", "", "only list entities of this type")
	list.Flags().IntVar(&offset, "offset", 0, "number of entities to skip")
	list.Flags().IntVar(&limit, "limit", 100, "maximum number of entities to list")
	cmd.AddCommand(list)

	return cmd
}
