package main

import "expenseai/cmd"

func main() {
	cmd.Execute()
}
