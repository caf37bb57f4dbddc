package main

import "todo-hub.com/todo-hub/cmd"

func main() {
	cmd.Execute()
}
