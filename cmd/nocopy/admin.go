package main

import (
	"github.com/72nd/nocopy-go/pkg/nocopy/client"
	"github.com/72nd/nocopy-go/pkg/nocopy/config"
	"github.com/72nd/nocopy-go/pkg/nocopy/format"
	"github.com/72nd/nocopy-go/pkg/nocopy/record"
	"github.com/spf13/cobra"
)

func newInitCmd() *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Generate an empty configuration file",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return config.Skeleton().ToFile(output)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "path to output file")
	_ = cmd.MarkFlagRequired("output")
	return cmd
}

func newTemplateCmd() *cobra.Command {
	var (
		conn connFlags
		out  outputFlags
	)
	cmd := &cobra.Command{
		Use:   "template",
		Short: "Generate an empty template for a specified table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cl, err := conn.client()
			if err != nil {
				return err
			}
			first, err := cl.FindFirst(cmd.Context(), client.Query{})
			if err != nil {
				return err
			}
			tmpl := record.New()
			if first != nil {
				for _, key := range first.Keys() {
					tmpl.Set(key, nil)
				}
			}
			return out.write(record.List{tmpl}, format.Options{OnlyHeader: true})
		},
	}
	conn.register(cmd)
	out.register(cmd)
	return cmd
}
