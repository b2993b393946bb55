// Command console is the interactive terminal client for MADAN STORE.
// Typing searches the inventory as you type, : commands change it.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/text/language"

	"github.com/NamanHarbola/Rack-Management/internal/client"
	"github.com/NamanHarbola/Rack-Management/internal/store"
	"github.com/NamanHarbola/Rack-Management/internal/view"
)

func main() {
	serverURL := flag.String("server", "http://localhost:8001", "MADAN STORE server URL")
	token := flag.String("token", "", "bearer token for protected endpoints")
	locale := flag.String("lang", "en", "display language, controls floor ordering")
	watchFeed := flag.Bool("watch", false, "follow live rack changes from other clients")
	flag.Parse()

	lang, err := language.Parse(*locale)
	if err != nil {
		log.Fatalf("❌ Invalid language %q: %v", *locale, err)
	}

	api := client.New(*serverURL)
	api.Token = *token

	m := newModel(api, store.New(api), view.NewComposer(lang), *watchFeed)
	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "❌ Console failed: %v\n", err)
		os.Exit(1)
	}
}
