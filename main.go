package main

import (
	"fmt"
	"os"

	"github.com/petar-nikolic125/ether-lens-sub000/cmd"
)

func main() {
	if err := cmd.Start(); err != nil {
		fmt.Printf("server run into an error: %s", err)
		os.Exit(1)
	}
}
