package photos

import (
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/pawkeep/pawkeep/internal/cli"
	"github.com/pawkeep/pawkeep/internal/models"
)

type PhotoAddCmd struct {
	File    string `arg:"" help:"Path to the image file." type:"existingfile"`
	Caption string `short:"c" help:"Photo caption."`
}

func (c *PhotoAddCmd) Run(ctx *cli.Context) error {
	pet, ok, err := ctx.ResolveSelectedPet()
	if err != nil || !ok {
		return err
	}

	data, err := os.ReadFile(c.File)
	if err != nil {
		return fmt.Errorf("failed to read image file: %w", err)
	}

	photo := models.Photo{
		ID:        uuid.New().String(),
		PetID:     pet.ID,
		Caption:   c.Caption,
		CreatedAt: time.Now(),
		Image:     data,
	}
	if err := photo.Validate(); err != nil {
		return err
	}

	if err := ctx.Store.AddPhoto(photo); err != nil {
		return err
	}

	fmt.Printf("Added photo for %s (ID: %s)\n", pet.Name, photo.ID)
	return nil
}

type PhotoListCmd struct {
	All bool `help:"List photos for all pets, not just the selected one."`
}

func (c *PhotoListCmd) Run(ctx *cli.Context) error {
	var photos []models.Photo
	var err error

	if c.All {
		photos, err = ctx.Store.GetAllPhotos()
	} else {
		pet, ok, resolveErr := ctx.ResolveSelectedPet()
		if resolveErr != nil || !ok {
			return resolveErr
		}
		photos, err = ctx.Store.GetPhotosForPet(pet.ID)
	}
	if err != nil {
		return fmt.Errorf("failed to get photos: %w", err)
	}

	if len(photos) == 0 {
		fmt.Println("No photos found")
		return nil
	}

	fmt.Println("Photos:")
	for _, photo := range photos {
		caption := photo.Caption
		if caption == "" {
			caption = "(no caption)"
		}
		fmt.Printf("  %s - %s (%s, %d bytes)\n",
			photo.ID, caption, photo.CreatedAt.Format("Jan 2, 2006"), len(photo.Image))
	}
	return nil
}

type PhotoCaptionCmd struct {
	ID      string `arg:"" help:"Photo ID."`
	Caption string `arg:"" help:"New caption."`
}

func (c *PhotoCaptionCmd) Run(ctx *cli.Context) error {
	photos, err := ctx.Store.GetAllPhotos()
	if err != nil {
		return err
	}

	for _, photo := range photos {
		if photo.ID == c.ID {
			photo.Caption = c.Caption
			if err := ctx.Store.UpdatePhoto(photo); err != nil {
				return err
			}
			fmt.Println("Updated caption")
			return nil
		}
	}
	return fmt.Errorf("photo not found: %s", c.ID)
}

type PhotoDeleteCmd struct {
	ID string `arg:"" help:"Photo ID to delete."`
}

func (c *PhotoDeleteCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.DeletePhoto(c.ID); err != nil {
		return err
	}
	fmt.Printf("Deleted photo %s\n", c.ID)
	return nil
}

type PhotoExportCmd struct {
	ID  string `arg:"" help:"Photo ID to export."`
	Out string `arg:"" help:"Output file path."`
}

func (c *PhotoExportCmd) Run(ctx *cli.Context) error {
	photos, err := ctx.Store.GetAllPhotos()
	if err != nil {
		return err
	}

	for _, photo := range photos {
		if photo.ID == c.ID {
			if err := os.WriteFile(c.Out, photo.Image, 0600); err != nil {
				return fmt.Errorf("failed to write image file: %w", err)
			}
			fmt.Printf("Exported photo to %s\n", c.Out)
			return nil
		}
	}
	return fmt.Errorf("photo not found: %s", c.ID)
}
