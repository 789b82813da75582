//go:build mage

package main

import (
	"fmt"
	"os"
)

// cleanPaths lists the artifacts a scout run or a build leaves behind.
var cleanPaths = []string{
	"bin",
	"promotion_channels.json",
	"alltheads.db",
	"alltheads.db-wal",
	"alltheads.db-shm",
}

// Clean removes build output and local run artifacts.
func Clean() error {
	for _, path := range cleanPaths {
		if err := os.RemoveAll(path); err != nil {
			return fmt.Errorf("removing %s: %w", path, err)
		}
		fmt.Println("  ", path)
	}
	fmt.Println("Cleaned.")
	return nil
}
