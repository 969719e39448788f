package main

import "github.com/KaramelBytes/carbonmap/cmd"

func main() {
	cmd.Execute()
}
