package main

import "odyssey/cmd/od/root"

func main() {
	root.Execute()
}
