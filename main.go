package main

import "github.com/bmatsuo/qlisp/cmd"

func main() {
	cmd.Execute()
}
