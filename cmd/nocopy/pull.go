package main

import (
	"github.com/72nd/nocopy-go/pkg/nocopy/format"
	"github.com/72nd/nocopy-go/pkg/nocopy/search"
	"github.com/spf13/cobra"
)

func newPullCmd() *cobra.Command {
	var (
		conn       connFlags
		query      queryFlags
		out        outputFlags
		fuzzyQuery string
		level      bool
		freezeAt   string
	)
	cmd := &cobra.Command{
		Use:   "pull",
		Short: "Pull the records from a NocoDB instance",
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
			if fuzzyQuery != "" {
				records = search.Filter(records, fuzzyQuery, search.DefaultCutoff)
			}
			return out.write(records, format.Options{
				LevelNested: level,
				FreezeAt:    freezeAt,
			})
		},
	}
	conn.register(cmd)
	query.registerWhere(cmd)
	query.registerPaging(cmd)
	query.registerFields(cmd)
	query.registerFields1(cmd)
	out.register(cmd)
	cmd.Flags().StringVarP(&fuzzyQuery, "query", "q", "", "client side fuzzy query")
	cmd.Flags().BoolVarP(&level, "level", "l", false, "level out nested structures")
	cmd.Flags().StringVar(&freezeAt, "freeze-at", "", "freeze the worksheet panes at the given cell reference (xlsx only)")
	return cmd
}
