// ident is a command-line tool for generating and inspecting sortable
// identifiers: ULIDs and app-scoped URNs.
package main

func main() {
	execute()
}
