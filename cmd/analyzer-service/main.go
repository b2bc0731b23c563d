package main

import (
	"fmt"
	"os"

	analyzer "github.com/gokulr94/gcp-performance-analyzer"
)

func main() {
	if err := analyzer.Command().Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
