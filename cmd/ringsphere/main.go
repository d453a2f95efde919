// Command ringsphere generates a tiered ring sphere and writes it as
// Wavefront OBJ, optionally also as binary STL, a PNG preview and a PNG
// profile plot.
//
//	ringsphere -preset sphere -o sphere.obj -png sphere.png
package main

import (
	"flag"
	"log"
	"log/slog"
	"os"

	"github.com/soypat/ringsphere"
	"github.com/soypat/ringsphere/render"
)

func main() {
	var (
		configPath = flag.String("config", "", "JSON configuration file; overrides -preset")
		preset     = flag.String("preset", ringsphere.PresetHemisphere, "shape preset: hemisphere or sphere")
		output     = flag.String("o", render.DefaultOBJPath, "OBJ output file")
		stlOutput  = flag.String("stl", "", "binary STL output file")
		pngOutput  = flag.String("png", "", "preview PNG output file")
		plotOutput = flag.String("profile", "", "profile plot PNG output file")
		verbose    = flag.Bool("v", false, "log generation steps to stderr")
	)
	flag.Parse()
	log.SetFlags(0)

	if *verbose {
		ringsphere.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	cfg, err := loadConfig(*configPath, *preset)
	if err != nil {
		log.Fatal(err)
	}
	m, err := ringsphere.Generate(cfg)
	if err != nil {
		log.Fatal(err)
	}
	if err := render.CreateOBJ(*output, m); err != nil {
		log.Fatal(err)
	}
	if *stlOutput != "" {
		if err := render.CreateSTL(*stlOutput, m); err != nil {
			log.Fatal(err)
		}
	}
	if *pngOutput != "" {
		if err := render.PreviewPNG(*pngOutput, m, render.DefaultView); err != nil {
			log.Fatal(err)
		}
	}
	if *plotOutput != "" {
		if err := render.CreateProfile(*plotOutput, m, cfg.Radius); err != nil {
			log.Fatal(err)
		}
	}
	log.Printf("%s: %v", *output, ringsphere.Summarize(m))
}

func loadConfig(path, preset string) (ringsphere.Config, error) {
	if path == "" {
		return ringsphere.PresetConfig(preset)
	}
	fp, err := os.Open(path)
	if err != nil {
		return ringsphere.Config{}, err
	}
	defer fp.Close()
	return ringsphere.LoadConfig(fp)
}
