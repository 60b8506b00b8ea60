package main

import (
	"github.com/spf13/cobra"

	"github.com/tuannm99/sqlmask/internal/sql/parser"
)

var parseOutput string

var parseCmd = &cobra.Command{
	Use:   "parse [SQL]",
	Short: "Print the AST of a SELECT statement",
	RunE: func(cmd *cobra.Command, args []string) error {
		sql, err := readSQL(args, cmd.InOrStdin())
		if err != nil {
			return err
		}
		stmt, err := parser.Parse(sql)
		if err != nil {
			return err
		}
		return writeStructured(cmd.OutOrStdout(), parseOutput, stmt)
	},
}

func init() {
	parseCmd.Flags().StringVarP(&parseOutput, "output", "o", "json", "output format: json|yaml")
}
