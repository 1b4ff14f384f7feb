package cli

import (
	"errors"
	"strings"

	"github.com/spf13/viper"

	"github.com/wildfunctions/mathplot/pkg/engine"
)

// loadConfig merges an optional config file and MATHPLOT_* environment
// variables over the engine defaults. With no explicit path, a missing
// ./mathplot.yaml is not an error.
func loadConfig(path string) (engine.Config, error) {
	cfg := engine.DefaultConfig()

	v := viper.New()
	v.SetDefault("plot.start", cfg.PlotStart)
	v.SetDefault("plot.end", cfg.PlotEnd)
	v.SetDefault("plot.step", cfg.PlotStep)
	v.SetDefault("polar.start", cfg.PolarStart)
	v.SetDefault("polar.end", cfg.PolarEnd)
	v.SetDefault("polar.step", cfg.PolarStep)
	v.SetDefault("integrate.start", cfg.IntegStart)
	v.SetDefault("integrate.end", cfg.IntegEnd)
	v.SetDefault("integrate.step", cfg.IntegStep)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("mathplot")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}
	v.SetEnvPrefix("MATHPLOT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return cfg, err
		}
	}

	cfg.PlotStart = v.GetFloat64("plot.start")
	cfg.PlotEnd = v.GetFloat64("plot.end")
	cfg.PlotStep = v.GetFloat64("plot.step")
	cfg.PolarStart = v.GetFloat64("polar.start")
	cfg.PolarEnd = v.GetFloat64("polar.end")
	cfg.PolarStep = v.GetFloat64("polar.step")
	cfg.IntegStart = v.GetFloat64("integrate.start")
	cfg.IntegEnd = v.GetFloat64("integrate.end")
	cfg.IntegStep = v.GetFloat64("integrate.step")

	return cfg, nil
}
