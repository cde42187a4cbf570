package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/72nd/nocopy-go/pkg/nocopy/client"
	"github.com/72nd/nocopy-go/pkg/nocopy/config"
	"github.com/72nd/nocopy-go/pkg/nocopy/format"
	"github.com/72nd/nocopy-go/pkg/nocopy/record"
	"github.com/spf13/cobra"
)

// connFlags holds the connection options shared by all commands talking to
// a NocoDB instance.
type connFlags struct {
	configPath string
	baseURL    string
	token      string
	table      string
}

func (f *connFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.configPath, "config", "c", "", "path to config file")
	cmd.Flags().StringVarP(&f.baseURL, "url", "u", "", "base URL of the NocoDB API (env "+config.EnvURL+")")
	cmd.Flags().StringVarP(&f.token, "token", "k", "", "JWT authentication token (env "+config.EnvToken+")")
	cmd.Flags().StringVarP(&f.table, "table", "t", "", "select the table")
	_ = cmd.MarkFlagRequired("table")
}

func (f *connFlags) client() (*client.Client, error) {
	cfg, err := config.Resolve(f.configPath, f.baseURL, f.token)
	if err != nil {
		return nil, err
	}
	return client.New(client.BuildURL(cfg.BaseURL, f.table), cfg.AuthToken), nil
}

// queryFlags holds the record query options of the list-like commands.
type queryFlags struct {
	where   string
	limit   int
	offset  int
	sort    string
	fields  string
	fields1 string
}

func (f *queryFlags) registerWhere(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.where, "where", "w", "", "complicated where conditions")
}

func (f *queryFlags) registerPaging(cmd *cobra.Command) {
	cmd.Flags().IntVar(&f.limit, "limit", 0, "number of rows to get (SQL limit value)")
	cmd.Flags().IntVar(&f.offset, "offset", 0, "offset for pagination (SQL offset value)")
	cmd.Flags().StringVar(&f.sort, "sort", "", "sort by column name, use `-` as prefix for desc. sort")
}

func (f *queryFlags) registerFields(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.fields, "fields", "", "which columns to show in the result")
}

func (f *queryFlags) registerFields1(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.fields1, "fields1", "", "required column names in child result")
}

func (f *queryFlags) query() client.Query {
	return client.Query{
		Where:   f.where,
		Limit:   f.limit,
		Offset:  f.offset,
		Sort:    f.sort,
		Fields:  f.fields,
		Fields1: f.fields1,
	}
}

// outputFlags holds the output format and path options.
type outputFlags struct {
	format string
	output string
}

func (f *outputFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.format, "format", "f", "", "specify output format ("+strings.Join(format.Names(), ", ")+")")
	cmd.Flags().StringVarP(&f.output, "output", "o", "", "path to output file")
}

func (f *outputFlags) write(records record.List, opts format.Options) error {
	file, err := format.NewFile(f.format, "", f.output, opts)
	if err != nil {
		return err
	}
	return file.Save(records)
}

// inputFlags holds the input format and path options.
type inputFlags struct {
	format string
	input  string
}

func (f *inputFlags) register(cmd *cobra.Command, withFormat bool) {
	if withFormat {
		cmd.Flags().StringVarP(&f.format, "format", "f", "", "specify input format ("+strings.Join(format.Names(), ", ")+")")
	}
	cmd.Flags().StringVarP(&f.input, "input", "i", "", "path to input file")
	_ = cmd.MarkFlagRequired("input")
}

func (f *inputFlags) load() (record.List, error) {
	file, err := format.NewFile(f.format, f.input, "", format.Options{})
	if err != nil {
		return nil, err
	}
	return file.Load()
}

// confirm asks a yes/no question on the terminal, only a literal "Y"
// answers yes.
func confirm(prompt string) bool {
	return ask(prompt) == "Y"
}

// ask prints a prompt and returns the trimmed answer line.
func ask(prompt string) string {
	fmt.Print(prompt)
	line, _ := bufio.NewReader(os.Stdin).ReadString('\n')
	return strings.TrimSpace(line)
}
