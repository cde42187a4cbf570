package main

import (
	"fmt"
	"strconv"

	"github.com/72nd/nocopy-go/pkg/nocopy/format"
	"github.com/72nd/nocopy-go/pkg/nocopy/record"
	"github.com/spf13/cobra"
)

func newCountCmd() *cobra.Command {
	var (
		conn  connFlags
		query queryFlags
	)
	cmd := &cobra.Command{
		Use:   "count",
		Short: "Count the records in a table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cl, err := conn.client()
			if err != nil {
				return err
			}
			count, err := cl.Count(cmd.Context(), query.where)
			if err != nil {
				return err
			}
			fmt.Println(count)
			return nil
		},
	}
	conn.register(cmd)
	query.registerWhere(cmd)
	return cmd
}

func newGroupByCmd() *cobra.Command {
	var (
		conn       connFlags
		query      queryFlags
		out        outputFlags
		columnName string
	)
	cmd := &cobra.Command{
		Use:   "group-by",
		Short: "Group records by given column",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cl, err := conn.client()
			if err != nil {
				return err
			}
			records, err := cl.GroupBy(cmd.Context(), columnName, query.query())
			if err != nil {
				return err
			}
			return out.write(records, format.Options{})
		},
	}
	conn.register(cmd)
	query.registerWhere(cmd)
	query.registerPaging(cmd)
	out.register(cmd)
	cmd.Flags().StringVar(&columnName, "column-name", "", "column name")
	return cmd
}

func newAggregateCmd() *cobra.Command {
	var (
		conn       connFlags
		query      queryFlags
		out        outputFlags
		columnName string
		fn         string
		having     string
	)
	cmd := &cobra.Command{
		Use:   "aggregate",
		Short: "Aggregate records using functions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cl, err := conn.client()
			if err != nil {
				return err
			}
			records, err := cl.Aggregate(cmd.Context(), columnName, fn, having, query.query())
			if err != nil {
				return err
			}
			return out.write(records, format.Options{})
		},
	}
	conn.register(cmd)
	query.registerPaging(cmd)
	query.registerFields(cmd)
	out.register(cmd)
	cmd.Flags().StringVar(&columnName, "column-name", "", "column name")
	cmd.Flags().StringVar(&fn, "func", "", "agr. function(s): min, max, avg, sum, count")
	cmd.Flags().StringVar(&having, "having", "", "having expression")
	return cmd
}

func newFindFirstCmd() *cobra.Command {
	var (
		conn  connFlags
		query queryFlags
		out   outputFlags
	)
	cmd := &cobra.Command{
		Use:   "find-first",
		Short: "Find the first record matching the given query",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cl, err := conn.client()
			if err != nil {
				return err
			}
			rec, err := cl.FindFirst(cmd.Context(), query.query())
			if err != nil {
				return err
			}
			var records record.List
			if rec != nil {
				records = record.List{rec}
			}
			return out.write(records, format.Options{})
		},
	}
	conn.register(cmd)
	query.registerWhere(cmd)
	query.registerPaging(cmd)
	query.registerFields(cmd)
	out.register(cmd)
	return cmd
}

func newSumCmd() *cobra.Command {
	var (
		conn  connFlags
		query queryFlags
		field string
	)
	cmd := &cobra.Command{
		Use:   "sum",
		Short: "Sum of the values of a requested field",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cl, err := conn.client()
			if err != nil {
				return err
			}
			records, err := cl.List(cmd.Context(), query.query())
			if err != nil {
				return err
			}
			total, err := sumField(records, field)
			if err != nil {
				return err
			}
			fmt.Println(strconv.FormatFloat(total, 'f', -1, 64))
			return nil
		},
	}
	conn.register(cmd)
	query.registerWhere(cmd)
	query.registerPaging(cmd)
	cmd.Flags().StringVarP(&field, "field", "f", "", "which column should be summed")
	_ = cmd.MarkFlagRequired("field")
	return cmd
}

// sumField adds up the numeric values of a field over all records. Null
// fields are skipped, non-numeric values are an error.
func sumField(records record.List, field string) (float64, error) {
	var total float64
	for _, rec := range records {
		v, ok := rec.Get(field)
		if !ok || v == nil {
			continue
		}
		switch n := v.(type) {
		case int64:
			total += float64(n)
		case float64:
			total += n
		default:
			return 0, fmt.Errorf("field %q holds non-numeric value %q", field, record.Format(v))
		}
	}
	return total, nil
}
