package main

import "github.com/cashflow-insight/backend/cmd"

func main() {
	cmd.Execute()
}
