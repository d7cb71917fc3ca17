/*
	Copyright 2023 Markus Papenbrock
*/

package main

import "github.com/mpapenbr/careerstats/cmd"

func main() {
	cmd.Execute()
}
