package main

import (
	"github.com/spf13/cobra"
)

func newPushCmd() *cobra.Command {
	var (
		conn connFlags
		in   inputFlags
	)
	cmd := &cobra.Command{
		Use:   "push",
		Short: "Upload the content of a JSON/YAML/CSV file to NocoDB",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cl, err := conn.client()
			if err != nil {
				return err
			}
			records, err := in.load()
			if err != nil {
				return err
			}
			return cl.Add(cmd.Context(), records)
		},
	}
	conn.register(cmd)
	in.register(cmd, true)
	return cmd
}

func newUpdateCmd() *cobra.Command {
	var (
		conn connFlags
		in   inputFlags
	)
	cmd := &cobra.Command{
		Use:   "update",
		Short: "Update records from an input file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cl, err := conn.client()
			if err != nil {
				return err
			}
			records, err := in.load()
			if err != nil {
				return err
			}
			return cl.BulkUpdate(cmd.Context(), records)
		},
	}
	conn.register(cmd)
	in.register(cmd, false)
	return cmd
}
