package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/samcharles93/vox/internal/logger"
	"github.com/samcharles93/vox/internal/voxstore"
	"github.com/samcharles93/vox/pkg/vox"
)

// sampleScene is an n³ grid with a gray diagonal running from dark to light.
func sampleScene(n int) (vox.Scene, error) {
	if n < 1 || n > vox.MaxDimension {
		return vox.Scene{}, fmt.Errorf("sample size %d out of range [1, %d]", n, vox.MaxDimension)
	}
	voxels := make([]vox.Voxel, 0, n)
	for i := range n {
		voxels = append(voxels, vox.Voxel{
			X:          uint8(i),
			Y:          uint8(i),
			Z:          uint8(i),
			ColorIndex: uint16(1 + i*254/max(n-1, 1)),
		})
	}
	return vox.Scene{
		Size:    vox.Size{X: uint32(n), Y: uint32(n), Z: uint32(n)},
		Voxels:  voxels,
		Palette: vox.GrayPalette(),
	}, nil
}

func sampleCmd() *cli.Command {
	var (
		size   int64
		outDir string
		prefix string
	)

	return &cli.Command{
		Name:  "sample",
		Usage: "Write an example gray-scale diagonal model",
		Flags: append([]cli.Flag{
			&cli.Int64Flag{
				Name:        "size",
				Aliases:     []string{"n"},
				Usage:       "grid edge length (1-256)",
				Value:       16,
				Destination: &size,
			},
		}, outputFlags(&outDir, &prefix)...),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			log := logger.FromContext(ctx)

			sc, err := sampleScene(int(size))
			if err != nil {
				return fmt.Errorf("sample: %w", err)
			}
			store := voxstore.Store{
				Dir:    resolveOutDir(outDir, "", cfg.OutDir),
				Prefix: resolvePrefix(prefix, "", cfg.Prefix, "sample"),
			}
			path, err := store.SaveScene(sc)
			if err != nil {
				return fmt.Errorf("sample: %w", err)
			}
			log.Info("wrote sample", "path", path, "size", size)
			return nil
		},
	}
}
