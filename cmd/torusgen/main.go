// Command torusgen generates a twisted torus quad mesh and writes it to
// STL, OBJ and/or a PNG preview. Parameters come from a YAML file,
// overridable per-flag.
package main

import (
	"flag"
	"os"
	"time"

	"github.com/quadric/torus"
	"github.com/quadric/torus/render"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	cfg := Default()
	var configPath string
	flag.StringVar(&configPath, "config", "", "YAML parameter file")
	flag.StringVar(&cfg.Mode, "mode", cfg.Mode, "radii mode: major_minor or ext_int")
	flag.Float64Var(&cfg.MajorRadius, "major-radius", cfg.MajorRadius, "radius from origin to cross-section centers")
	flag.Float64Var(&cfg.MinorRadius, "minor-radius", cfg.MinorRadius, "cross-section radius")
	flag.Float64Var(&cfg.ExteriorRadius, "exterior-radius", cfg.ExteriorRadius, "outer edge radius (ext_int mode)")
	flag.Float64Var(&cfg.InteriorRadius, "interior-radius", cfg.InteriorRadius, "hole rim radius (ext_int mode)")
	flag.IntVar(&cfg.MajorSegments, "major-segments", cfg.MajorSegments, "segments around the main ring")
	flag.IntVar(&cfg.MinorSegments, "minor-segments", cfg.MinorSegments, "segments around the cross-section")
	flag.Float64Var(&cfg.SectionAngleDeg, "section-angle", cfg.SectionAngleDeg, "cross-section phase offset in degrees")
	flag.IntVar(&cfg.SectionTwist, "section-twist", cfg.SectionTwist, "minor steps the section rotates per revolution")
	flag.StringVar(&cfg.Output.STL, "stl", cfg.Output.STL, "STL output path, empty to skip")
	flag.StringVar(&cfg.Output.OBJ, "obj", cfg.Output.OBJ, "OBJ output path, empty to skip")
	flag.StringVar(&cfg.Output.PNG, "png", cfg.Output.PNG, "PNG preview path, empty to skip")
	flag.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "debug, info, warn or error")
	flag.Parse()

	log := newLogger(cfg.LogLevel)
	defer log.Sync()

	if configPath != "" {
		fileCfg := Default()
		if err := loadFromFile(fileCfg, configPath); err != nil {
			log.Fatal("loading config", zap.Error(err))
		}
		// Flags given explicitly beat the file.
		merged := *fileCfg
		flag.Visit(func(f *flag.Flag) { applyFlag(&merged, cfg, f.Name) })
		*cfg = merged
	}

	params, err := cfg.Params()
	if err != nil {
		log.Fatal("invalid parameters", zap.Error(err))
	}

	start := time.Now()
	m, err := torus.NewMesh(params)
	if err != nil {
		log.Fatal("generating mesh", zap.Error(err))
	}
	layout := "ribbon"
	if params.SectionTwist%params.MinorSegments == 0 {
		layout = "grid"
	}
	log.Info("mesh generated",
		zap.Int("vertices", len(m.Vertices())),
		zap.Int("faces", len(m.Faces())),
		zap.String("uv_layout", layout),
		zap.Duration("took", time.Since(start)),
	)

	if cfg.Output.STL != "" {
		start = time.Now()
		if err := render.CreateSTL(cfg.Output.STL, render.NewMeshRenderer(m)); err != nil {
			log.Fatal("writing STL", zap.Error(err))
		}
		log.Info("wrote STL", zap.String("path", cfg.Output.STL), zap.Duration("took", time.Since(start)))
	}
	if cfg.Output.OBJ != "" {
		start = time.Now()
		if err := render.CreateOBJ(cfg.Output.OBJ, m); err != nil {
			log.Fatal("writing OBJ", zap.Error(err))
		}
		log.Info("wrote OBJ", zap.String("path", cfg.Output.OBJ), zap.Duration("took", time.Since(start)))
	}
	if cfg.Output.PNG != "" {
		start = time.Now()
		if err := render.SavePNG(cfg.Output.PNG, m, render.DefaultView()); err != nil {
			log.Fatal("writing PNG preview", zap.Error(err))
		}
		log.Info("wrote PNG preview", zap.String("path", cfg.Output.PNG), zap.Duration("took", time.Since(start)))
	}
}

// applyFlag copies the field named by the flag from src (flag values) onto
// dst (file values).
func applyFlag(dst, src *Config, name string) {
	switch name {
	case "mode":
		dst.Mode = src.Mode
	case "major-radius":
		dst.MajorRadius = src.MajorRadius
	case "minor-radius":
		dst.MinorRadius = src.MinorRadius
	case "exterior-radius":
		dst.ExteriorRadius = src.ExteriorRadius
	case "interior-radius":
		dst.InteriorRadius = src.InteriorRadius
	case "major-segments":
		dst.MajorSegments = src.MajorSegments
	case "minor-segments":
		dst.MinorSegments = src.MinorSegments
	case "section-angle":
		dst.SectionAngleDeg = src.SectionAngleDeg
	case "section-twist":
		dst.SectionTwist = src.SectionTwist
	case "stl":
		dst.Output.STL = src.Output.STL
	case "obj":
		dst.Output.OBJ = src.Output.OBJ
	case "png":
		dst.Output.PNG = src.Output.PNG
	case "log-level":
		dst.LogLevel = src.LogLevel
	}
}

func newLogger(level string) *zap.Logger {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		lvl = zapcore.InfoLevel
	}
	encoder := zapcore.NewConsoleEncoder(zapcore.EncoderConfig{
		TimeKey:          "time",
		LevelKey:         "level",
		MessageKey:       "msg",
		EncodeTime:       zapcore.TimeEncoderOfLayout("15:04:05"),
		EncodeLevel:      zapcore.CapitalLevelEncoder,
		ConsoleSeparator: " ",
	})
	core := zapcore.NewCore(encoder, zapcore.AddSync(os.Stderr), lvl)
	return zap.New(core)
}
