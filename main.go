// Command gones runs an iNES ROM in a window.
package main

import (
	"os"

	"github.com/golang/glog"

	"github.com/nesforge/gones/ui"
)

func main() {
	if len(os.Args) < 2 {
		glog.Fatalf("usage: %s <rom.nes>", os.Args[0])
	}

	romBytes, err := os.ReadFile(os.Args[1])
	if err != nil {
		glog.Fatalf("reading rom: %v", err)
	}

	ui.Start(romBytes, 256*3, 240*3)
}
