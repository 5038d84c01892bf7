package main

import "lifespend/cmd"

func main() {
	cmd.Execute()
}
