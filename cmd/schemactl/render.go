package main

import (
	"fmt"
	"net/http"
	"text/tabwriter"

	"github.com/diwise/schema-markup/pkg/schema"
	"github.com/diwise/schema-markup/pkg/schema/linkeddata"
	"github.com/diwise/schema-markup/pkg/schema/render"
	"github.com/piprate/json-gold/ld"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

func renderCmd() *cobra.Command {
	var (
		format   string
		indent   string
		maxDepth int
	)

	cmd := &cobra.Command{
		Use:   "render [file|-]",
		Short: "Render an entity in one of the supported formats",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, ok := render.ParseFormat(format)
			if !ok {
				return fmt.Errorf("unknown format %q", format)
			}

			e, err := decode(cmd, args, schema.WithMaxDepth(maxDepth))
			if err != nil {
				return err
			}

			opts := []render.Option{render.WithMaxDepth(maxDepth)}
			if indent != "" {
				opts = append(opts, render.WithIndent(indent))
			}

			out, err := render.Render(f, e, opts...)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", string(render.JSONLD), "output format (json-ld, microdata or rdfa)")
	cmd.Flags().StringVar(&indent, "indent", "", "indentation of pretty printed JSON-LD")
	cmd.Flags().IntVar(&maxDepth, "max-depth", render.DefaultMaxDepth, "maximum nesting depth, 0 disables the limit")

	return cmd
}

func nquadsCmd() *cobra.Command {
	var (
		canonical      bool
		remoteContexts bool
		maxDepth       int
	)

	cmd := &cobra.Command{
		Use:   "nquads [file|-]",
		Short: "Export an entity as RDF N-Quads",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := decode(cmd, args, schema.WithMaxDepth(maxDepth))
			if err != nil {
				return err
			}

			opts := []linkeddata.ExporterOption{linkeddata.WithMaxDepth(maxDepth)}

			if remoteContexts {
				httpClient := &http.Client{Transport: otelhttp.NewTransport(http.DefaultTransport)}
				opts = append(opts, linkeddata.WithDocumentLoader(
					ld.NewCachingDocumentLoader(ld.NewDefaultDocumentLoader(httpClient)),
				))
			}

			x := linkeddata.NewExporter(opts...)

			var out string
			if canonical {
				out, err = x.Canonicalize(e)
			} else {
				out, err = x.ToNQuads(e)
			}
			if err != nil {
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), out)
			return nil
		},
	}

	cmd.Flags().BoolVar(&canonical, "canonical", false, "normalize the output with URDNA2015")
	cmd.Flags().BoolVar(&remoteContexts, "remote-contexts", false, "fetch @context documents over the network")
	cmd.Flags().IntVar(&maxDepth, "max-depth", render.DefaultMaxDepth, "maximum nesting depth, 0 disables the limit")

	return cmd
}

func formatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "formats",
		Short: "List the supported output formats",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			defer w.Flush()

			for _, f := range render.Formats() {
				fmt.Fprintf(w, "%s\t%s\t%s\n", f.Name, f.MimeType, f.Description)
			}
			fmt.Fprintf(w, "%s\t%s\t%s\n", linkeddata.FormatName, linkeddata.MimeTypeNQuads, "RDF statements as N-Quads")
		},
	}
}

func decode(cmd *cobra.Command, args []string, opts ...schema.DecodeOption) (*schema.Entity, error) {
	b, err := readInput(cmd, args)
	if err != nil {
		return nil, err
	}

	return schema.NewFromJSON(b, opts...)
}
