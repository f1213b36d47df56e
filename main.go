package main

import "stock-keeper/cmd"

func main() {
	cmd.Execute()
}
