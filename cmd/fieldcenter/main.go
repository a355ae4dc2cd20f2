package main

import "github.com/arl/fieldcenter/cmd/fieldcenter/cmd"

func main() {
	cmd.Execute()
}
