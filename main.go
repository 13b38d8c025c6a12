package main

import "github.com/jdelarosa/finanzas-api/cmd"

func main() {
	cmd.Execute()
}
