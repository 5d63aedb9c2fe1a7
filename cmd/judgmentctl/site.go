package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/ncecere/judgment-tools/internal/catalog"
	"github.com/ncecere/judgment-tools/internal/sitemap"
)

func newRoutesCmd(opts *rootOptions) *cobra.Command {
	var asXML bool
	cmd := &cobra.Command{
		Use:   "routes",
		Short: "Print the public URLs listed in the sitemap",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}
			entries := sitemap.Build(cfg.Site.BaseURL, catalog.MustDefaultRegistry(), time.Now())
			out := cmd.OutOrStdout()
			if asXML {
				return sitemap.Encode(out, entries)
			}
			for _, e := range entries {
				fmt.Fprintln(out, e.URL)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&asXML, "xml", false, "Print the full sitemap document")
	return cmd
}

func newConfigCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration with secrets masked",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}
			redacted := cfg.Redacted()
			if opts.jsonOutput {
				return writeJSON(cmd.OutOrStdout(), redacted)
			}
			enc := yaml.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent(2)
			if err := enc.Encode(redacted); err != nil {
				return fmt.Errorf("encode config: %w", err)
			}
			return enc.Close()
		},
	}
}
