package main

import "asset-audit/cmd"

func main() {
	cmd.Execute()
}
