package main

import "uteqportal/cmd/client/cmd"

func main() {
	cmd.Execute()
}
