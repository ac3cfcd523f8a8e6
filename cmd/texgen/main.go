// Command texgen writes the procedural scene textures to PNG files.
package main

import (
	"flag"
	"fmt"
	"image"
	"os"
	"path/filepath"

	"github.com/anthonynsimon/bild/imgio"
	"github.com/anthonynsimon/bild/transform"

	"github.com/GBraga29/ProjetoPG/internal/scene"
	"github.com/GBraga29/ProjetoPG/internal/texture"
)

func main() {
	out := flag.String("out", "assets/textures", "output directory")
	checker := flag.Int("checker", scene.DefaultCheckerSize, "checkerboard size in pixels")
	gradient := flag.Int("gradient", scene.DefaultGradientSize, "gradient size in pixels")
	thumb := flag.Int("thumb", 0, "also write square thumbnails of this size (0 = none)")
	flag.Parse()

	if err := run(*out, *checker, *gradient, *thumb); err != nil {
		fmt.Fprintln(os.Stderr, "texgen:", err)
		os.Exit(1)
	}
}

func run(dir string, checkerSize, gradientSize, thumb int) error {
	checker, err := texture.Checkerboard(checkerSize, checkerSize)
	if err != nil {
		return err
	}
	gradient, err := texture.Gradient(gradientSize, gradientSize)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	for _, t := range []*texture.Texture{checker, gradient} {
		path := filepath.Join(dir, t.Name()+".png")
		if err := imgio.Save(path, t.Image(), imgio.PNGEncoder()); err != nil {
			return fmt.Errorf("save %s: %w", path, err)
		}
		fmt.Println(path)
		if thumb > 0 {
			path = filepath.Join(dir, t.Name()+"-thumb.png")
			if err := imgio.Save(path, thumbnail(t.Image(), thumb), imgio.PNGEncoder()); err != nil {
				return fmt.Errorf("save %s: %w", path, err)
			}
			fmt.Println(path)
		}
	}
	return nil
}

func thumbnail(img image.Image, size int) image.Image {
	return transform.Resize(img, size, size, transform.Linear)
}
