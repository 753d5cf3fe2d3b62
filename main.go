package main

import "github.com/VoxDroid/pokedex/cmd"

func main() {
	cmd.Execute()
}
