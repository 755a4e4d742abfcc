package main

import "nathanbeddoewebdev/devstork/cmd"

func main() {
	cmd.Execute()
}
