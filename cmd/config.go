package cmd

import (
	"errors"
	"log/slog"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"

	"mutoracle.dev/pkg/mutoracle/internal/domain/mutagens"
	"mutoracle.dev/pkg/mutoracle/internal/domain/selection"
	"mutoracle.dev/pkg/mutoracle/internal/domain/tracegen"
)

const (
	configVersionKey     = "version"
	currentConfigVersion = 1

	configBaseName   = "mutoracle"
	configFileName   = configBaseName + ".yaml"
	configFolderPath = "."

	logFileFlagName  = "log"
	verboseFlagName  = "verbose"
	seedFlagName     = "seed"
	hypothesisFlag   = "hypothesis"
	sulFlag          = "sul"
	operatorsFlag    = "operators"
	samplerFlag      = "sampler"
	genSamplerFlag   = "generation-sampler"
	generatorFlag    = "generator"
	selectorFlag     = "selector"
	killAliveFlag    = "kill-alive"
	candidatesFlag   = "candidates"
	suiteSizeFlag    = "suite-size"
	roundsFlag       = "rounds"
	reuseFlag        = "reuse"
	keepExecutedFlag = "keep-executed"
	batchedFlag      = "batched"
	workersFlag      = "workers"
	maxStepsFlag     = "max-steps"
	maxTestsFlag     = "max-tests"
	spillFlag        = "spill"
	accessFlag       = "access-prefixes"

	seedConfigKey         = "seed"
	operatorsConfigKey    = "mutants.operators"
	maxDiffInputsKey      = "mutants.max_diff_inputs"
	maxDiffTargetsKey     = "mutants.max_diff_targets"
	accSeqBoundKey        = "mutants.split.acc_seq_bound"
	mutationDepthKey      = "mutants.split.mutation_depth"
	globalVisitedKey      = "mutants.split.global_visited"
	samplerConfigKey      = "oracle.sampler"
	genSamplerConfigKey   = "oracle.generation_sampler"
	selectorConfigKey     = "oracle.selector"
	killAliveConfigKey    = "oracle.kill_alive"
	candidatesConfigKey   = "oracle.candidates"
	suiteSizeConfigKey    = "oracle.suite_size"
	roundsConfigKey       = "oracle.rounds"
	reuseConfigKey        = "oracle.reuse"
	keepExecutedConfigKey = "oracle.keep_executed"
	batchedConfigKey      = "oracle.batched"
	workersConfigKey      = "oracle.workers"
	maxStepsConfigKey     = "oracle.max_steps"
	maxTestsConfigKey     = "oracle.max_tests"
	spillConfigKey        = "oracle.spill"
	spillDirConfigKey     = "oracle.spill_dir"
	generatorConfigKey    = "generator.name"
	minLengthKey          = "generator.min_length"
	maxLengthKey          = "generator.max_length"
	randomPrefixKey       = "generator.random_prefix"
	randomSuffixKey       = "generator.random_suffix"
	directedWeightKey     = "generator.directed_weight"

	defaultSeed         = 1
	defaultSampler      = "identity"
	defaultCandidates   = 1000
	defaultSuiteSize    = 100
	defaultRounds       = 1
	defaultReuse        = true
	defaultKeepExecuted = true
	defaultBatched      = true
	defaultWorkers      = 4

	envPrefix = "MUTORACLE"

	logFilenameKey   = "log.filename"
	logLevelKey      = "log.level"
	logVerboseKey    = "log.verbose"
	logMaxSizeKey    = "log.max_size"
	logMaxBackupsKey = "log.max_backups"
	logMaxAgeKey     = "log.max_age"
	logCompressKey   = "log.compress"

	defaultLogFilename   = ".mutoracle.log"
	defaultLogLevel      = int(slog.LevelInfo)
	defaultLogVerbose    = false
	defaultLogMaxSize    = 10
	defaultLogMaxBackups = 3
	defaultLogMaxAge     = 28
	defaultLogCompress   = true
)

var globalLogger *slog.Logger

func init() {
	viper.SetConfigName(configBaseName)
	viper.SetConfigType("yaml")
	viper.AddConfigPath(configFolderPath)
	viper.SetConfigFile(filepath.Join(configFolderPath, configFileName))
	viper.AutomaticEnv()
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	viper.SetDefault(configVersionKey, currentConfigVersion)
	viper.SetDefault(seedConfigKey, defaultSeed)

	mutantDefaults := mutagens.DefaultOptions()
	viper.SetDefault(operatorsConfigKey, []string{})
	viper.SetDefault(maxDiffInputsKey, mutantDefaults.MaxDiffInputs)
	viper.SetDefault(maxDiffTargetsKey, mutantDefaults.MaxDiffTargets)
	viper.SetDefault(accSeqBoundKey, mutantDefaults.Split.AccSeqBound)
	viper.SetDefault(mutationDepthKey, mutantDefaults.Split.MutationDepth)
	viper.SetDefault(globalVisitedKey, mutantDefaults.Split.GlobalVisited)

	viper.SetDefault(samplerConfigKey, defaultSampler)
	viper.SetDefault(genSamplerConfigKey, "")
	viper.SetDefault(selectorConfigKey, selection.GreedyName)
	viper.SetDefault(killAliveConfigKey, false)
	viper.SetDefault(candidatesConfigKey, defaultCandidates)
	viper.SetDefault(suiteSizeConfigKey, defaultSuiteSize)
	viper.SetDefault(roundsConfigKey, defaultRounds)
	viper.SetDefault(reuseConfigKey, defaultReuse)
	viper.SetDefault(keepExecutedConfigKey, defaultKeepExecuted)
	viper.SetDefault(batchedConfigKey, defaultBatched)
	viper.SetDefault(workersConfigKey, defaultWorkers)
	viper.SetDefault(maxStepsConfigKey, 0)
	viper.SetDefault(maxTestsConfigKey, 0)
	viper.SetDefault(spillConfigKey, false)
	viper.SetDefault(spillDirConfigKey, "")

	genDefaults := tracegen.DefaultOptions()
	viper.SetDefault(generatorConfigKey, tracegen.MixedName)
	viper.SetDefault(minLengthKey, genDefaults.MinLength)
	viper.SetDefault(maxLengthKey, genDefaults.MaxLength)
	viper.SetDefault(randomPrefixKey, genDefaults.RandomPrefix)
	viper.SetDefault(randomSuffixKey, genDefaults.RandomSuffix)
	viper.SetDefault(directedWeightKey, genDefaults.DirectedWeight)

	// Logging defaults (used by config/env and as fallbacks for flags).
	viper.SetDefault(logFilenameKey, defaultLogFilename)
	viper.SetDefault(logLevelKey, defaultLogLevel)
	viper.SetDefault(logVerboseKey, defaultLogVerbose)
	viper.SetDefault(logMaxSizeKey, defaultLogMaxSize)
	viper.SetDefault(logMaxBackupsKey, defaultLogMaxBackups)
	viper.SetDefault(logMaxAgeKey, defaultLogMaxAge)
	viper.SetDefault(logCompressKey, defaultLogCompress)

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return
		}

		return
	}
}

func parseSlogLevel(value string, defaultLevel slog.Level) slog.Level {
	level := strings.ToLower(strings.TrimSpace(value))
	if level == "" {
		return defaultLevel
	}

	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}

	// Numeric slog levels are accepted too (e.g. -4 for debug).
	if n, err := strconv.Atoi(level); err == nil {
		return slog.Level(n)
	}

	return defaultLevel
}

// configureLogger configures the global slog logger.
//
// By default it logs at the configured level; if verbose is true it logs at Debug.
func configureLogger(logPath string, verbose bool) {
	if strings.TrimSpace(logPath) == "" {
		logPath = viper.GetString(logFilenameKey)
	}

	if strings.TrimSpace(logPath) == "" {
		logPath = defaultLogFilename
	}

	var logLevel slog.Level
	if verbose {
		logLevel = slog.LevelDebug
	} else {
		logLevel = parseSlogLevel(viper.GetString(logLevelKey), slog.LevelInfo)
	}

	logWriter := &lumberjack.Logger{
		Filename:   logPath,
		MaxSize:    viper.GetInt(logMaxSizeKey),
		MaxBackups: viper.GetInt(logMaxBackupsKey),
		MaxAge:     viper.GetInt(logMaxAgeKey),
		Compress:   viper.GetBool(logCompressKey),
	}

	handler := slog.NewTextHandler(logWriter, &slog.HandlerOptions{
		AddSource: true,
		Level:     logLevel,
	})

	globalLogger = slog.New(handler)
	slog.SetDefault(globalLogger)
}
