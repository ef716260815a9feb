package main

import "github.com/itsmostafa/pdfbatch/cmd"

func main() {
	cmd.Execute()
}
