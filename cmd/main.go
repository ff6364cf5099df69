// cmd/main.go
package main

import cmd "github.com/mwiater/benchscope/cmd/benchscope"

// main starts the benchscope CLI application by delegating to the
// cobra root command defined in the benchscope package. It does not
// take any arguments and does not return a value.
func main() {
	cmd.Execute()
}
