package main

import "github.com/masmgr/depminer/cmd"

func main() {
	cmd.Run()
}
