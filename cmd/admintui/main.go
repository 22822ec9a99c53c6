package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"shoply/cmd/admintui/ui"
)

func main() {
	url := flag.String("url", "http://127.0.0.1:9500", "Shoply server base URL")
	flag.Parse()

	p := tea.NewProgram(ui.NewRootModel(*url), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Println("error:", err)
		os.Exit(1)
	}
}
