//go:build !console

package main

import (
	"fmt"

	webview "github.com/webview/webview_go"
)

// runGUI serves the web UI on a private port and shows it in a native window
func runGUI(config *Config, configPath string) error {
	ws := NewWebServer(config, "localhost:0")
	ws.configPath = configPath

	url, cleanup, err := ws.StartForEmbedded()
	if err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}
	defer cleanup()

	w := webview.New(false)
	if w == nil {
		return fmt.Errorf("failed to create window")
	}
	defer w.Destroy()

	w.SetTitle("Rent or Buy Calculator")
	w.SetSize(1200, 850, webview.HintNone)
	w.Navigate(url)

	// Blocks until the window is closed
	w.Run()

	return nil
}
