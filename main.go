package main

import "github.com/pruthagwin123/expense-tracker/cmd"

func main() {
	cmd.Execute()
}
