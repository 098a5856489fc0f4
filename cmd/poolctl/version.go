// ABOUTME: VersionCmd prints poolctl's build version.
package main

import "fmt"

// Version is set via -ldflags at build time; "dev" otherwise.
var Version = "dev"

// VersionCmd prints the poolctl build version.
type VersionCmd struct{}

func (c *VersionCmd) Run() error {
	fmt.Println("poolctl " + Version)
	return nil
}
