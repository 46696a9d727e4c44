package main

import "github.com/shree1767/SRM-GPA-Calculator/cmd/sgpa/root"

func main() {
	root.Execute()
}
