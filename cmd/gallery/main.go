/*
Gallery generates a batch of meshes from a TOML scene description and
writes each one to a Wavefront OBJ file. With -watch it keeps running and
regenerates whenever the scene file changes.
*/
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/fsnotify/fsnotify"

	"github.com/spaghettifunk/meshgen/core"
	"github.com/spaghettifunk/meshgen/obj"
)

func main() {
	scenePath := flag.String("scene", "scene.toml", "path to the scene description")
	outDir := flag.String("out", ".", "directory to write the OBJ files to")
	watch := flag.Bool("watch", false, "keep running and regenerate on scene changes")
	verbose := flag.Bool("v", false, "enable debug logging")
	flag.Parse()

	if *verbose {
		core.SetDebug()
	}

	if err := generate(*scenePath, *outDir); err != nil {
		if !*watch {
			core.LogFatal(err.Error())
		}
		// In watch mode a broken scene is recoverable: the next save retries.
		core.LogError(err.Error())
	}

	if !*watch {
		return
	}

	if err := watchScene(*scenePath, *outDir); err != nil {
		core.LogFatal(err.Error())
	}
}

func generate(scenePath, outDir string) error {
	scene, err := LoadScene(scenePath)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("gallery: failed to create output directory %s: %w", outDir, err)
	}

	for i := range scene.Shapes {
		shape := &scene.Shapes[i]

		mesh, err := shape.BuildMesh()
		if err != nil {
			core.LogError(err.Error())
			continue
		}

		target := filepath.Join(outDir, shape.Name+".obj")
		if err := obj.WriteFile(target, shape.Name, mesh); err != nil {
			core.LogError(err.Error())
			continue
		}

		core.LogInfo("wrote %s: %d vertices, %d indices", target, len(mesh.Positions), len(mesh.Indices))
	}

	return nil
}

func watchScene(scenePath, outDir string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	// Watch the directory, not the file: editors often replace the file on
	// save, which drops a direct watch.
	dir := filepath.Dir(scenePath)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("gallery: failed to watch %s: %w", dir, err)
	}
	core.LogInfo("watching %s for changes", scenePath)

	// signal channel to capture system calls
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)

	target, err := filepath.Abs(scenePath)
	if err != nil {
		return err
	}

	for {
		select {
		case e := <-watcher.Events:
			name, err := filepath.Abs(e.Name)
			if err != nil || name != target {
				continue
			}
			if e.Op&(fsnotify.Create|fsnotify.Write) == 0 {
				continue
			}
			core.LogDebug("scene changed (%s), regenerating", e.Op)
			if err := generate(scenePath, outDir); err != nil {
				core.LogError(err.Error())
			}

		case e := <-watcher.Errors:
			core.LogError(e.Error())

		case <-sigCh:
			core.LogInfo("shutting down")
			return nil
		}
	}
}
