package main

import "finledger/cmd"

func main() {
	cmd.Execute()
}
