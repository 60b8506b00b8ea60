package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tuannm99/sqlmask/internal/sql/parser"
	"github.com/tuannm99/sqlmask/internal/sql/pseudonym"
	"github.com/tuannm99/sqlmask/internal/sql/render"
)

var anonymizeOutput string

var anonymizeCmd = &cobra.Command{
	Use:   "anonymize [SQL]",
	Short: "Pseudonymize a SELECT statement locally",
	Long: `Pseudonymize a SELECT statement without a server.

With -o text (default) the rewritten SQL is printed. With -o json or
-o yaml the hashed AST is printed, including the name -> digest mapping.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		sql, err := readSQL(args, cmd.InOrStdin())
		if err != nil {
			return err
		}
		stmt, err := parser.Parse(sql)
		if err != nil {
			return err
		}
		hashed := pseudonym.Pseudonymize(stmt)

		if anonymizeOutput == "text" {
			_, err = fmt.Fprintln(cmd.OutOrStdout(), render.Render(hashed))
			return err
		}
		return writeStructured(cmd.OutOrStdout(), anonymizeOutput, hashed)
	},
}

func init() {
	anonymizeCmd.Flags().StringVarP(&anonymizeOutput, "output", "o", "text", "output format: text|json|yaml")
}
