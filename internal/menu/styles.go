package menu

import (
	"fmt"

	"github.com/Utility-Gods/uwuify/internal/app"
	"github.com/manifoldco/promptui"
)

// StyleMenu lets the user pick the style used from now on
func StyleMenu(a *app.App) error {
	styles := a.GetAvailableStyles()

	items := make([]string, 0, len(styles))
	for _, style := range styles {
		items = append(items, fmt.Sprintf("%s: %s", style.Shortcut, style.Name))
	}

	prompt := promptui.Select{
		Label: "Choose style",
		Items: items,
	}

	i, _, err := prompt.Run()
	if err != nil {
		return fmt.Errorf("prompt failed: %w", err)
	}

	if err := a.Select(styles[i].Shortcut); err != nil {
		return err
	}

	fmt.Printf("Style set to %s.\n", styles[i].Name)
	return nil
}
