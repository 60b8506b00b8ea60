// Command sqlmask pseudonymizes the column names of simple SELECT
// statements.
//
// Usage:
//
//	sqlmask serve                      run the TCP service
//	sqlmask shell [-c SQL]             interactive client for the service
//	sqlmask anonymize [SQL]            pseudonymize locally (stdin if no SQL)
//	sqlmask parse [SQL] [-o yaml]      print the parsed AST
//	sqlmask config                     print the effective configuration
package main

func main() {
	Execute()
}
