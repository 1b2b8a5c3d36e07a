package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/samcharles93/vox/internal/logger"
	"github.com/samcharles93/vox/internal/scene"
	"github.com/samcharles93/vox/internal/voxstore"
)

func buildCmd() *cli.Command {
	var (
		scenePath string
		outDir    string
		prefix    string
	)

	return &cli.Command{
		Name:  "build",
		Usage: "Encode a YAML or JSON scene file into a .vox file",
		Flags: append([]cli.Flag{
			&cli.StringFlag{
				Name:        "scene",
				Aliases:     []string{"in", "s"},
				Usage:       "scene description (.yaml, .yml or .json)",
				Required:    true,
				Destination: &scenePath,
			},
		}, outputFlags(&outDir, &prefix)...),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			log := logger.FromContext(ctx)

			f, err := scene.Load(scenePath)
			if err != nil {
				return fmt.Errorf("build: %w", err)
			}
			sc, err := f.Scene()
			if err != nil {
				return fmt.Errorf("build: %w", err)
			}
			log.Debug("scene loaded", "path", scenePath, "size", sc.Size, "voxels", len(sc.Voxels))

			store := voxstore.Store{
				Dir:    resolveOutDir(outDir, f.Output.Dir, cfg.OutDir),
				Prefix: resolvePrefix(prefix, f.Output.Prefix, cfg.Prefix, scenePath),
			}
			path, err := store.SaveScene(sc)
			if err != nil {
				return fmt.Errorf("build: %w", err)
			}
			log.Info("wrote model", "path", path, "voxels", len(sc.Voxels))
			return nil
		},
	}
}
