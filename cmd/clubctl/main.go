package main

import "github.com/santiagonisi/Club-DeportivoUTN/internal/cli"

func main() {
	cli.Execute()
}
