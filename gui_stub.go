//go:build console

package main

import "fmt"

// runGUI is a stub for console-only builds
func runGUI(config *Config, configPath string) error {
	return fmt.Errorf("GUI not available in console build. Use -web flag for external browser mode")
}
