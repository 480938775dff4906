// Package parser puts os.Args and environment toggles into AppInit structure and validates it for any issues
package parser

import (
	"errors"
	"strconv"
	"strings"

	"github.com/UnendingLoop/MiniGrep/internal/model"
)

// CaseToggleEnv включает поиск без учета регистра самим фактом своего наличия
const CaseToggleEnv = "CASE_INSENSITIVE"

const (
	DefaultLogLevel      = "warn"
	DefaultLogMaxSizeMB  = 10
	DefaultLogMaxBackups = 3
	DefaultLogMaxAgeDays = 28
)

var (
	ErrMissingQuery = errors.New("query not specified")
	ErrMissingPath  = errors.New("file path not specified")
)

// LookupFunc has the signature of os.LookupEnv.
type LookupFunc func(key string) (string, bool)

// InitAppParam reads the environment once and resolves args (without the program name).
func InitAppParam(args []string, lookup LookupFunc) (*model.AppInit, error) {
	cfg, err := Build(args, CaseToggle(lookup))
	if err != nil {
		return nil, err
	}

	return &model.AppInit{
		SearchParam: cfg,
		LogParam:    initLogParam(lookup),
	}, nil
}

// Build validates positional args: query first, path second, the rest is ignored.
func Build(args []string, caseInsensitive bool) (model.Config, error) {
	switch len(args) {
	case 0:
		return model.Config{}, ErrMissingQuery
	case 1:
		return model.Config{}, ErrMissingPath
	}

	// конфиг владеет своими копиями аргументов
	query := strings.Clone(args[0])
	path := strings.Clone(args[1])

	return model.NewConfig(query, path, caseInsensitive), nil
}

// CaseToggle reports whether CASE_INSENSITIVE is set, whatever its value.
func CaseToggle(lookup LookupFunc) bool {
	_, ok := lookup(CaseToggleEnv)
	return ok
}

func initLogParam(lookup LookupFunc) model.LogParam {
	return model.LogParam{
		Level:      getEnvString(lookup, "LOG_LEVEL", DefaultLogLevel),
		File:       getEnvString(lookup, "LOG_FILE", ""),
		MaxSizeMB:  getEnvInt(lookup, "LOG_MAX_SIZE_MB", DefaultLogMaxSizeMB),
		MaxBackups: getEnvInt(lookup, "LOG_MAX_BACKUPS", DefaultLogMaxBackups),
		MaxAgeDays: getEnvInt(lookup, "LOG_MAX_AGE_DAYS", DefaultLogMaxAgeDays),
	}
}

func getEnvString(lookup LookupFunc, key, fallback string) string {
	if v, ok := lookup(key); ok && v != "" {
		return v
	}
	return fallback
}

func getEnvInt(lookup LookupFunc, key string, fallback int) int {
	v, ok := lookup(key)
	if !ok || v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}
