package main

import (
	"errors"
	"fmt"
	"image"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"github.com/phanxgames/latlong"
	"github.com/phanxgames/latlong/software"
)

var errNoInput = errors.New("no input image")

// loadSettings reads the settings file, applies overrides and fills in the
// filter defaults.
func loadSettings(path string, overrides map[string]any) (*latlong.Settings, error) {
	s := latlong.NewSettings()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read settings: %w", err)
		}
		if s, err = latlong.LoadSettings(data); err != nil {
			return nil, err
		}
	}
	for key, v := range overrides {
		switch v := v.(type) {
		case bool:
			s.SetBool(key, v)
		case int:
			s.SetInt(key, v)
		}
	}
	latlong.ApplyDefaults(s)
	latlong.ClampSettings(s)
	return s, nil
}

// session is a live filter over a software host.
type session struct {
	host     *software.Host
	filter   *latlong.Filter
	settings *latlong.Settings
	log      *logrus.Logger
	thumb    int
}

func newSession(src image.Image, settings *latlong.Settings, log *logrus.Logger, thumb int) (*session, error) {
	host := software.NewHost(software.NewFrame(src))
	f, err := latlong.New(host, software.NewDevice(), settings,
		latlong.WithLogger(log.WithField("component", "latlong-render")))
	if err != nil {
		return nil, err
	}
	// Read the source size before any scripted render.
	f.Tick(0)
	return &session{host: host, filter: f, settings: settings, log: log, thumb: thumb}, nil
}

// frame ticks and renders once.
func (s *session) frame(dt float64) {
	s.filter.Tick(dt)
	s.filter.Render()
}

// save writes the last rendered frame, plus a thumbnail when requested.
// Without a rendered frame nothing is written.
func (s *session) save(path string) error {
	out := s.host.Output()
	if out == nil {
		s.log.WithFields(logrus.Fields{
			"path":    path,
			"skipped": s.host.Skipped,
		}).Warn("No frame rendered, nothing written")
		return nil
	}
	if err := writePNG(path, out); err != nil {
		return err
	}
	if s.thumb > 0 {
		ext := filepath.Ext(path)
		tp := path[:len(path)-len(ext)] + "_thumb" + ext
		if err := writePNG(tp, thumbnail(out, s.thumb)); err != nil {
			return err
		}
	}
	s.log.WithFields(logrus.Fields{
		"path":   path,
		"width":  s.filter.Width(),
		"height": s.filter.Height(),
	}).Info("wrote frame")
	return nil
}

func run(opts options, log *logrus.Logger) error {
	if opts.in == "" {
		return errNoInput
	}
	src, err := decodeImage(opts.in)
	if err != nil {
		return err
	}
	settings, err := loadSettings(opts.settings, opts.overrides)
	if err != nil {
		return err
	}
	s, err := newSession(src, settings, log, opts.thumb)
	if err != nil {
		return err
	}
	defer s.filter.Destroy()

	switch {
	case opts.script != "":
		return s.runScript(opts.script, opts.out)
	case opts.frames > 0:
		return s.runSweep(opts.frames, opts.period, opts.out)
	default:
		s.frame(0)
		return s.save(opts.out)
	}
}

// runSweep pans phi through one full turn over frames renders.
func (s *session) runSweep(frames int, period float64, dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("mkdir %s: %w", dir, err)
	}
	if period <= 0 {
		period = 1
	}
	dt := period / float64(frames)
	sweep := latlong.SweepPhi(s.settings, float32(period))
	for i := range frames {
		if i > 0 && sweep.Update(float32(dt)) {
			s.filter.Update(s.settings)
		}
		s.frame(dt)
		if err := s.save(filepath.Join(dir, fmt.Sprintf("frame_%04d.png", i))); err != nil {
			return err
		}
	}
	return nil
}

// runScript plays a script, writing one PNG per render step.
func (s *session) runScript(path, dir string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read script: %w", err)
	}
	runner, err := latlong.LoadScript(data)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("mkdir %s: %w", dir, err)
	}
	n := 0
	return runner.Run(s.filter, s.settings, func(label string) error {
		n++
		return s.save(filepath.Join(dir, captureName(n, label)))
	})
}
