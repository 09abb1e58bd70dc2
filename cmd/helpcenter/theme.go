package main

import (
	"fmt"

	"github.com/fwojciec/helpcenter"
)

// Run executes the theme get command.
func (c *ThemeGetCmd) Run(deps *Dependencies) error {
	theme, err := deps.Themes.Current(deps.Ctx)
	if err != nil {
		reportError(deps, err)
		return err
	}
	fmt.Fprintln(deps.Stdout, theme)
	return nil
}

// Run executes the theme set command.
func (c *ThemeSetCmd) Run(deps *Dependencies) error {
	if err := deps.Themes.Set(deps.Ctx, helpcenter.Theme(c.Theme)); err != nil {
		reportError(deps, err)
		return err
	}
	fmt.Fprintf(deps.Stdout, "Theme set to %s\n", c.Theme)
	return nil
}

// Run executes the theme toggle command.
func (c *ThemeToggleCmd) Run(deps *Dependencies) error {
	theme, err := deps.Themes.Toggle(deps.Ctx)
	if err != nil {
		reportError(deps, err)
		return err
	}
	fmt.Fprintf(deps.Stdout, "Theme set to %s\n", theme)
	return nil
}
