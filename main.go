package main

import "github.com/HanHongChen/cnsim-ctl/cmd"

func main() {
	cmd.Execute()
}
