package cnf

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/czcorpus/cnc-gokit/logging"
	"github.com/rs/zerolog/log"
	"github.com/texnlp/sexpr/candc"
	"github.com/texnlp/sexpr/score"
)

const (
	dfltScoreTopErrors  = 5
	dfltMaxParseWorkers = 8
)

// Conf is a global configuration of texnlp tools
type Conf struct {
	Logging        logging.LoggingConf `json:"logging"`
	CandCHome      string              `json:"candcHome"`
	ModelDir       string              `json:"modelDir"`
	OutputDir      string              `json:"outputDir"`
	ParseWorkers   int                 `json:"parseWorkers"`
	ScoreTopErrors int                 `json:"scoreTopErrors"`
	IgnoreCats     []string            `json:"ignoreCats"`
	srcPath        string
}

// GetSourcePath returns an absolute path of a file
// the config was loaded from.
func (conf *Conf) GetSourcePath() string {
	if conf.srcPath == "" || filepath.IsAbs(conf.srcPath) {
		return conf.srcPath
	}
	var cwd string
	cwd, err := os.Getwd()
	if err != nil {
		cwd = "[failed to get working dir]"
	}
	return filepath.Join(cwd, conf.srcPath)
}

// LoadConfig reads a JSON configuration. An empty path yields
// an empty configuration (to be completed by ApplyDefaults).
func LoadConfig(path string) (*Conf, error) {
	var conf Conf
	if path == "" {
		return &conf, nil
	}
	rawData, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot load config: %w", err)
	}
	conf.srcPath = path
	if err := json.Unmarshal(rawData, &conf); err != nil {
		return nil, fmt.Errorf("cannot load config %s: %w", path, err)
	}
	return &conf, nil
}

func ApplyDefaults(conf *Conf) {
	if conf.CandCHome == "" {
		conf.CandCHome = os.Getenv(candc.EnvCandCHome)
		if conf.CandCHome != "" {
			log.Warn().Msgf(
				"candcHome not specified, using %s env. variable: %s",
				candc.EnvCandCHome, conf.CandCHome,
			)
		}
	}
	if conf.ModelDir == "" {
		conf.ModelDir = candc.DefaultModelDir
		log.Warn().Msgf("modelDir not specified, using default: %s", conf.ModelDir)
	}
	if conf.OutputDir == "" {
		conf.OutputDir = candc.DefaultOutputDir
		log.Warn().Msgf("outputDir not specified, using default: %s", conf.OutputDir)
	}
	if conf.ParseWorkers == 0 {
		v := dfltMaxParseWorkers
		if v >= runtime.NumCPU() {
			v = runtime.NumCPU()
		}
		conf.ParseWorkers = v
		log.Warn().Msgf("parseWorkers not specified, using default %d", v)
	}
	if conf.ScoreTopErrors == 0 {
		conf.ScoreTopErrors = dfltScoreTopErrors
		log.Warn().Msgf("scoreTopErrors not specified, using default: %d", dfltScoreTopErrors)
	}
	if conf.IgnoreCats == nil {
		conf.IgnoreCats = score.DefaultIgnoreCats
		log.Warn().Strs("value", conf.IgnoreCats).Msg("ignoreCats not specified, using defaults")
	}
}
