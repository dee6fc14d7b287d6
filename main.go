package main

import "github.com/jsphweid/muzze/cmd"

func main() {
	cmd.Execute()
}
