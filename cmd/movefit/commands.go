package main

import (
	"fmt"
	"image"
	"log"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	"github.com/depeter/movefit/assets/icon"
	"github.com/depeter/movefit/internal/app"
	"github.com/depeter/movefit/internal/cache"
	"github.com/depeter/movefit/internal/catalog"
	"github.com/depeter/movefit/internal/render"
	"github.com/depeter/movefit/internal/ui"
)

func newRootCmd() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:          "movefit",
		Short:        "Browse, search and watch ExerciseDB exercises",
		Version:      version,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWindow(cmd, configPath)
		},
	}
	root.PersistentFlags().StringVarP(&configPath, "config", "c", "", "config file (default $XDG_CONFIG_HOME/movefit/config.toml)")

	root.AddCommand(newSearchCmd(&configPath), newBodyPartsCmd(&configPath))
	return root
}

func newSearchCmd(configPath *string) *cobra.Command {
	var page int
	cmd := &cobra.Command{
		Use:   "search <query...>",
		Short: "Resolve a query the same way the search box does",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := setup(cmd.Context(), *configPath)
			if err != nil {
				return err
			}
			defer e.Close()

			categories := catalog.LoadCategories(cmd.Context(), e.api)
			res := catalog.Resolve(cmd.Context(), strings.Join(args, " "), categories, e.api)
			if res.Err != nil {
				log.Printf("Failed to load exercises: %v", res.Err)
			}
			return render.Resolution(cmd.OutOrStdout(), res, page)
		},
	}
	cmd.Flags().IntVarP(&page, "page", "p", 1, "results page to print")
	return cmd
}

func newBodyPartsCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "bodyparts",
		Short: "List the body-part categories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := setup(cmd.Context(), *configPath)
			if err != nil {
				return err
			}
			defer e.Close()

			render.BodyParts(cmd.OutOrStdout(), catalog.LoadCategories(cmd.Context(), e.api))
			return nil
		},
	}
}

func runWindow(cmd *cobra.Command, configPath string) error {
	e, err := setup(cmd.Context(), configPath)
	if err != nil {
		return err
	}
	defer e.Close()
	cfg := e.cfg

	if err := ui.InitFonts(); err != nil {
		return fmt.Errorf("init fonts: %w", err)
	}

	media, err := cache.NewMediaCache(cfg.MediaDir(), func(img image.Image) *ebiten.Image {
		return ebiten.NewImageFromImage(img)
	})
	if err != nil {
		return fmt.Errorf("init media cache: %w", err)
	}

	game := app.NewGame(cfg, e.api, media)
	defer game.Close()

	sf := &screenFactory{game: game, cfg: cfg, store: e.store}
	navbar := ui.NewNavBar()
	navbar.OnNavigate = sf.navigate
	game.Screens.NavBar = navbar
	sf.pushHome()

	ebiten.SetWindowSize(cfg.UI.Width, cfg.UI.Height)
	ebiten.SetWindowTitle("MoveFit")
	ebiten.SetWindowIcon(icon.Generate())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetFullscreen(cfg.UI.Fullscreen)

	return ebiten.RunGame(game)
}
