package main

import (
	"fmt"
	"strings"

	"github.com/72nd/nocopy-go/pkg/nocopy/client"
	"github.com/72nd/nocopy-go/pkg/nocopy/record"
	"github.com/spf13/cobra"
)

func newPurgeCmd() *cobra.Command {
	var conn connFlags
	cmd := &cobra.Command{
		Use:   "purge",
		Short: "Delete all content of a table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cl, err := conn.client()
			if err != nil {
				return err
			}
			fmt.Printf("This will PERMANENTLY delete ALL data in table %s on %s\n", conn.table, cl.BaseURL())
			if !confirm("Is this ok (Y/n): ") {
				fmt.Println("aborting...")
				return nil
			}
			// Being extra annoying because a purge cannot be undone.
			if ask("Sure? Think again and then type the name of the table to proceed: ") != conn.table {
				return nil
			}
			records, err := cl.List(cmd.Context(), client.Query{})
			if err != nil {
				return err
			}
			for i, rec := range records {
				id, err := recordID(rec)
				if err != nil {
					return err
				}
				if err := cl.Delete(cmd.Context(), id); err != nil {
					return err
				}
				fmt.Printf("\rpurge records... %d/%d", i+1, len(records))
			}
			if len(records) > 0 {
				fmt.Println()
			}
			return nil
		},
	}
	conn.register(cmd)
	return cmd
}

func newUpdateFieldCmd() *cobra.Command {
	var (
		conn  connFlags
		query queryFlags
		field string
		value string
	)
	cmd := &cobra.Command{
		Use:   "update-field",
		Short: "Set field value of matching records",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cl, err := conn.client()
			if err != nil {
				return err
			}
			records, err := cl.List(cmd.Context(), client.Query{Where: query.where})
			if err != nil {
				return err
			}
			fmt.Printf("About to change the field %s to '%s' in %d occurrences\n", field, value, len(records))
			if !confirm("Is this ok (Y/n): ") {
				fmt.Println("aborting...")
				return nil
			}
			var val record.Value = value
			if strings.EqualFold(value, "none") {
				if confirm("Do you want to set the field to null instead of the string (Y/n): ") {
					val = nil
				}
			}
			for i, rec := range records {
				id, err := recordID(rec)
				if err != nil {
					return err
				}
				fields := record.New()
				fields.Set(field, val)
				if err := cl.Update(cmd.Context(), id, fields); err != nil {
					return err
				}
				fmt.Printf("\rupdate field %s... %d/%d", field, i+1, len(records))
			}
			if len(records) > 0 {
				fmt.Println()
			}
			return nil
		},
	}
	conn.register(cmd)
	query.registerWhere(cmd)
	cmd.Flags().StringVarP(&field, "field", "f", "", "which column should be changed")
	cmd.Flags().StringVarP(&value, "value", "v", "", "value to be set")
	_ = cmd.MarkFlagRequired("field")
	_ = cmd.MarkFlagRequired("value")
	return cmd
}

// recordID extracts the id column of a record as text.
func recordID(rec *record.Record) (string, error) {
	v, ok := rec.Get("id")
	if !ok || v == nil {
		return "", fmt.Errorf("record without id field: %s", record.Format(rec))
	}
	return record.Format(v), nil
}
