// Command extrudedemo writes a small demo scene as a Wavefront OBJ file,
// exercising boxes, columns, and extruded shapes.
package main

import (
	"flag"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/gogpu/extrude"
	"github.com/gogpu/extrude/obj"
)

func main() {
	var (
		output = flag.String("output", "demo.obj", "output OBJ file")
		lod    = flag.Int("lod", 4, "level of detail for mesh filtering")
	)
	flag.Parse()

	objFile, err := os.Create(*output)
	if err != nil {
		log.Fatal(err)
	}
	defer objFile.Close()

	mtlName := strings.TrimSuffix(filepath.Base(*output), ".obj") + ".mtl"
	mtlFile, err := os.Create(filepath.Join(filepath.Dir(*output), mtlName))
	if err != nil {
		log.Fatal(err)
	}
	defer mtlFile.Close()

	target := obj.New(objFile, obj.WithMaterialLibrary(mtlFile, mtlName))
	config := extrude.NewConfig()
	config.Set("lod", *lod)
	target.SetConfig(config)

	if err := drawScene(target); err != nil {
		log.Fatal(err)
	}
	if err := target.Finish(); err != nil {
		log.Fatal(err)
	}
	log.Printf("Successfully created %s", *output)
}

func drawScene(target extrude.Target) error {
	concrete := extrude.Material{Name: "concrete", Color: extrude.RGB(0.6, 0.6, 0.6)}
	brick := extrude.Material{Name: "brick", Color: extrude.RGB(0.7, 0.3, 0.2)}
	steel := extrude.Material{Name: "steel", Color: extrude.RGB(0.4, 0.4, 0.5)}

	// A building slab with four corner columns.
	target.BeginObject("slab")
	if err := target.DrawBox(concrete,
		mgl64.Vec3{0, 0, 0}, mgl64.Vec2{1, 0}, 0.3, 8, 6); err != nil {
		return err
	}

	target.BeginObject("columns")
	for _, corner := range []mgl64.Vec3{
		{-3.5, -2.5, 0.3}, {3.5, -2.5, 0.3}, {-3.5, 2.5, 0.3}, {3.5, 2.5, 0.3},
	} {
		if err := target.DrawColumn(brick, nil,
			corner, 3, 0.25, 0.25, false, true); err != nil {
			return err
		}
	}

	// A bent pipe running along the slab edge.
	target.BeginObject("pipe")
	path := []mgl64.Vec3{
		{-4, -3, 0.5}, {4, -3, 0.5}, {4, 3, 0.5}, {-4, 3, 0.5},
	}
	return extrude.DrawExtrudedShape(target, steel, extrude.Circle(0.1), path,
		extrude.ExtrudeParams{Options: extrude.CapStart | extrude.CapEnd | extrude.SmoothNormals})
}
