package main

import "github.com/kochb/hicompare/cmd"

func main() {
	cmd.Execute()
}
