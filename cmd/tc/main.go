package main

import "github.com/Janimeister/Taskmaster/cmd/tc/root"

func main() {
	root.Execute()
}
