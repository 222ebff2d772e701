package menu

import (
	"fmt"
	"os"

	"github.com/Utility-Gods/uwuify/internal/app"
	"github.com/Utility-Gods/uwuify/internal/cli"
	"github.com/Utility-Gods/uwuify/internal/db"
	"github.com/Utility-Gods/uwuify/internal/tui"
	"github.com/charmbracelet/glamour"
	"github.com/manifoldco/promptui"
)

// MainMenu starts the main menu loop. Choosing the line loop hands control
// to cli.RunLoop and returns whatever ends it.
func MainMenu(a *app.App, store *db.Store) error {
	for {
		prompt := promptui.Select{
			Label: fmt.Sprintf("Main Menu (style: %s)", a.Selected().Name),
			Items: []string{"Uwuify lines", "Live preview", "Choose style", "About", "Exit"},
		}

		_, result, err := prompt.Run()
		if err != nil {
			return fmt.Errorf("prompt failed: %w", err)
		}

		switch result {
		case "Uwuify lines":
			return cli.RunLoop(os.Stdin, os.Stdout, a)
		case "Live preview":
			if err := tui.Run(a, store); err != nil {
				return fmt.Errorf("live preview failed: %w", err)
			}
		case "Choose style":
			if err := StyleMenu(a); err != nil {
				fmt.Printf("Prompt failed: %v\n", err)
			}
		case "About":
			about, err := RenderAbout(glamour.WithAutoStyle(), glamour.WithWordWrap(80))
			if err != nil {
				fmt.Printf("Failed to render about page: %v\n", err)
				continue
			}
			fmt.Print(about)
		case "Exit":
			fmt.Println("Goodbye!")
			return nil
		}
	}
}
