package main

import (
	"fmt"

	"github.com/fwojciec/xhsimport"
)

// Run executes the categories list command.
func (c *CategoriesListCmd) Run(deps *Dependencies) error {
	settings, err := deps.Settings.LoadSettings(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", xhsimport.ErrorMessage(err))
		return err
	}
	printCategories(deps, settings)
	return nil
}

// Run executes the categories add command.
func (c *CategoriesAddCmd) Run(deps *Dependencies) error {
	return updateCategories(deps, func(s *xhsimport.Settings) error {
		return s.AddCategory(c.Name)
	})
}

// Run executes the categories remove command.
func (c *CategoriesRemoveCmd) Run(deps *Dependencies) error {
	return updateCategories(deps, func(s *xhsimport.Settings) error {
		return s.RemoveCategory(c.Name)
	})
}

// Run executes the categories rename command.
func (c *CategoriesRenameCmd) Run(deps *Dependencies) error {
	return updateCategories(deps, func(s *xhsimport.Settings) error {
		if err := s.RenameCategory(c.Old, c.New); err != nil {
			return err
		}
		if s.LastCategory == c.Old {
			s.LastCategory = c.New
		}
		return nil
	})
}

// Run executes the categories move command.
func (c *CategoriesMoveCmd) Run(deps *Dependencies) error {
	delta := 1
	if c.Direction == "up" {
		delta = -1
	}
	return updateCategories(deps, func(s *xhsimport.Settings) error {
		return s.MoveCategory(c.Name, delta)
	})
}

// updateCategories applies fn to the saved settings, saves them and
// prints the resulting list.
func updateCategories(deps *Dependencies, fn func(*xhsimport.Settings) error) error {
	settings, err := deps.Settings.LoadSettings(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", xhsimport.ErrorMessage(err))
		return err
	}

	if err := fn(settings); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", xhsimport.ErrorMessage(err))
		return err
	}

	if err := deps.Settings.SaveSettings(deps.Ctx, settings); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", xhsimport.ErrorMessage(err))
		return err
	}

	printCategories(deps, settings)
	return nil
}

// printCategories lists every category, marking the one preselected for
// the next import.
func printCategories(deps *Dependencies, settings *xhsimport.Settings) {
	def := settings.DefaultCategory()
	for _, name := range settings.AllCategories() {
		marker := " "
		if name == def {
			marker = "*"
		}
		fmt.Fprintf(deps.Stdout, "%s %s\n", marker, name)
	}
}
