package main

import "discoverarr/cmd"

func main() {
	cmd.Execute()
}
