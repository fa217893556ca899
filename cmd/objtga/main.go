// Command objtga renders one or more Wavefront OBJ meshes into a single TGA
// image: each mesh is parsed, converted to a Model, and rendered with
// orthographic projection onto a shared black surface, then the surface is
// written out as a v2 TGA file.
package main

import (
	"flag"
	"log"
	"log/slog"
	"os"

	rendertech "github.com/MartinNikolovMarinov/rendering-technique"
	"github.com/MartinNikolovMarinov/rendering-technique/obj"
	"github.com/MartinNikolovMarinov/rendering-technique/raster"
	"github.com/MartinNikolovMarinov/rendering-technique/render"
	"github.com/MartinNikolovMarinov/rendering-technique/surface"
	"github.com/MartinNikolovMarinov/rendering-technique/tga"
)

func main() {
	var (
		output    = flag.String("o", "output.tga", "output TGA path")
		width     = flag.Int("width", 1024, "surface width in pixels")
		height    = flag.Int("height", 1024, "surface height in pixels")
		wireframe = flag.Bool("wireframe", false, "draw outlines instead of solid fills")
		verbose   = flag.Bool("v", false, "enable debug logging")
	)
	flag.Parse()

	if *verbose {
		rendertech.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	objFiles := flag.Args()
	if len(objFiles) == 0 {
		log.Fatal("usage: objtga [flags] file.obj [file2.obj ...]")
	}

	if err := renderObjFilesToTga(objFiles, *output, *width, *height, *wireframe); err != nil {
		log.Fatalf("objtga: %v", err)
	}
	log.Printf("wrote %s", *output)
}

func renderObjFilesToTga(objFiles []string, outputPath string, width, height int, wireframe bool) error {
	s, err := surface.New(width, height, surface.BGR888, surface.BottomLeft, surface.GoAllocator{})
	if err != nil {
		return err
	}
	defer s.Free()

	raster.FillRect(s, 0, 0, width, height, raster.Black)

	colors := []raster.Color{raster.Red, raster.Green, raster.Blue, raster.Yellow, raster.White}
	for i, path := range objFiles {
		if err := renderOneFile(s, path, colors[i%len(colors)], wireframe); err != nil {
			return err
		}
	}

	return tga.WriteSurface(outputPath, s, 2, tga.New)
}

func renderOneFile(s *surface.Surface, path string, color raster.Color, wireframe bool) error {
	o, err := obj.LoadFile(path, obj.Version3_0, surface.GoAllocator{})
	if err != nil {
		return err
	}
	defer o.Free()

	rendertech.Logger().Info("loaded mesh", "path", path, "vertices", o.VerticesCount(), "faces", o.FacesCount())

	m, err := render.NewModelFromObj(o)
	if err != nil {
		return err
	}

	return render.RenderModel(s, m, color, wireframe)
}
