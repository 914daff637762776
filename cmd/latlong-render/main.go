// Command latlong-render extracts a perspective viewport from an
// equirectangular image using the software backend.
//
// Usage:
//
//	latlong-render -in pano.jpg -out view.png -theta 90 -phi 45 -radius 2
//	latlong-render -in pano.jpg -settings view.yaml -frames 120 -out sweep/
//	latlong-render -in pano.jpg -script tour.yaml -out tour/
package main

import (
	"flag"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/phanxgames/latlong"
)

type options struct {
	in       string
	out      string
	settings string
	script   string
	frames   int
	period   float64
	thumb    int
	verbose  bool

	// Explicitly set flags override the settings file.
	overrides map[string]any
}

func main() {
	var opts options
	var (
		on     bool
		radius int
		theta  int
		phi    int
		fov    int
	)
	flag.StringVar(&opts.in, "in", "", "equirectangular input image (png, jpeg, gif, webp, bmp, tiff)")
	flag.StringVar(&opts.out, "out", "view.png", "output file, or directory for -frames and -script")
	flag.StringVar(&opts.settings, "settings", "", "YAML settings file")
	flag.StringVar(&opts.script, "script", "", "YAML script of set/tick/wait/render steps")
	flag.IntVar(&opts.frames, "frames", 0, "render a phi sweep of this many frames")
	flag.Float64Var(&opts.period, "period", 4, "seconds per full sweep turn")
	flag.IntVar(&opts.thumb, "thumb", 0, "also write a thumbnail of this width")
	flag.BoolVar(&opts.verbose, "v", false, "debug logging")
	flag.BoolVar(&on, latlong.KeyOn, latlong.DefaultEnabled, "enable the projection")
	flag.IntVar(&radius, latlong.KeyRadius, latlong.DefaultRadius, "sphere radius")
	flag.IntVar(&theta, latlong.KeyTheta, 0, "polar angle in degrees")
	flag.IntVar(&phi, latlong.KeyPhi, 0, "azimuth in degrees")
	flag.IntVar(&fov, latlong.KeyFOVPhi, latlong.DefaultFOVPhi, "horizontal field of view input")
	flag.Parse()

	opts.overrides = make(map[string]any)
	flag.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case latlong.KeyOn:
			opts.overrides[fl.Name] = on
		case latlong.KeyRadius:
			opts.overrides[fl.Name] = radius
		case latlong.KeyTheta:
			opts.overrides[fl.Name] = theta
		case latlong.KeyPhi:
			opts.overrides[fl.Name] = phi
		case latlong.KeyFOVPhi:
			opts.overrides[fl.Name] = fov
		}
	})

	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	if opts.verbose {
		log.SetLevel(logrus.DebugLevel)
	}
	latlong.SetLogger(log)

	if err := run(opts, log); err != nil {
		log.WithError(err).Error("latlong-render failed")
		os.Exit(1)
	}
}
