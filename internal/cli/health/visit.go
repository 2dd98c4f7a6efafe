package health

import (
	"fmt"
	"sort"

	"github.com/pawkeep/pawkeep/internal/cli"
	"github.com/pawkeep/pawkeep/internal/constants"
)

type VisitAddCmd struct {
	Date string `arg:"" help:"Visit date (YYYY-MM-DD)."`
	Task string `arg:"" help:"Task to discuss or do at the visit."`
}

func (c *VisitAddCmd) Run(ctx *cli.Context) error {
	pet, ok, err := ctx.ResolveSelectedPet()
	if err != nil || !ok {
		return err
	}

	date, err := cli.ParseDate(c.Date)
	if err != nil {
		return err
	}
	day := date.Format(constants.DateFormat)

	if err := ctx.Store.AddVisitTask(pet.ID, day, c.Task); err != nil {
		return err
	}
	fmt.Printf("Added task for %s visit on %s\n", pet.Name, day)
	return nil
}

type VisitListCmd struct {
	Date string `help:"Only show tasks for this date (YYYY-MM-DD)."`
}

func (c *VisitListCmd) Run(ctx *cli.Context) error {
	pet, ok, err := ctx.ResolveSelectedPet()
	if err != nil || !ok {
		return err
	}

	visits, err := ctx.Store.GetVisitTasks(pet.ID)
	if err != nil {
		return fmt.Errorf("failed to get visit tasks: %w", err)
	}
	if len(visits) == 0 {
		fmt.Printf("No vet visit tasks for %s\n", pet.Name)
		return nil
	}

	days := make([]string, 0, len(visits))
	for day := range visits {
		if c.Date != "" && day != c.Date {
			continue
		}
		days = append(days, day)
	}
	sort.Strings(days)

	if len(days) == 0 {
		fmt.Printf("No vet visit tasks for %s on %s\n", pet.Name, c.Date)
		return nil
	}

	fmt.Printf("Vet visit tasks for %s:\n", pet.Name)
	for _, day := range days {
		fmt.Printf("  %s:\n", day)
		for i, task := range visits[day] {
			fmt.Printf("    %d. %s\n", i+1, task)
		}
	}
	return nil
}

type VisitEditCmd struct {
	Date string `arg:"" help:"Visit date (YYYY-MM-DD)."`
	Num  int    `arg:"" help:"Task number, as shown by 'visit list'."`
	Task string `arg:"" help:"Replacement task text."`
}

func (c *VisitEditCmd) Run(ctx *cli.Context) error {
	pet, ok, err := ctx.ResolveSelectedPet()
	if err != nil || !ok {
		return err
	}
	if c.Num < 1 {
		return fmt.Errorf("task number must be positive")
	}
	if err := ctx.Store.EditVisitTask(pet.ID, c.Date, c.Num-1, c.Task); err != nil {
		return err
	}
	fmt.Println("Updated visit task")
	return nil
}

type VisitDeleteCmd struct {
	Date string `arg:"" help:"Visit date (YYYY-MM-DD)."`
	Num  int    `arg:"" help:"Task number, as shown by 'visit list'."`
}

func (c *VisitDeleteCmd) Run(ctx *cli.Context) error {
	pet, ok, err := ctx.ResolveSelectedPet()
	if err != nil || !ok {
		return err
	}
	if c.Num < 1 {
		return fmt.Errorf("task number must be positive")
	}
	if err := ctx.Store.DeleteVisitTask(pet.ID, c.Date, c.Num-1); err != nil {
		return err
	}
	fmt.Println("Deleted visit task")
	return nil
}
