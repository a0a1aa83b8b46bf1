package main

import (
	"fmt"
	"os"

	"dragchess/src/ui"
)

func main() {
	if err := ui.RunDragChess(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
