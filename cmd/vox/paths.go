package main

import (
	"os"
	"path/filepath"
	"strings"
)

const envVoxOutDir = "VOX_OUT_DIR"

// resolveOutDir picks the output directory: flag, scene file, $VOX_OUT_DIR,
// config file, then ./out.
func resolveOutDir(flagDir, sceneDir, configDir string) string {
	for _, d := range []string{flagDir, sceneDir, os.Getenv(envVoxOutDir), configDir} {
		if d = strings.TrimSpace(d); d != "" {
			return filepath.Clean(d)
		}
	}
	return filepath.Join(".", "out")
}

// resolvePrefix picks the file prefix: flag, scene file, config file, then
// the scene file's base name.
func resolvePrefix(flagPrefix, scenePrefix, configPrefix, scenePath string) string {
	for _, p := range []string{flagPrefix, scenePrefix, configPrefix} {
		if p = strings.TrimSpace(p); p != "" {
			return p
		}
	}
	if scenePath == "" {
		return ""
	}
	base := filepath.Base(scenePath)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
