// Package model contains data structures for resolved launch parameters and search results
package model

// Config - неизменяемые параметры поиска, собираются один раз за запуск
type Config struct {
	query           string
	path            string
	caseInsensitive bool
}

// NewConfig is the only way to fill a Config; validation belongs to the parser.
func NewConfig(query, path string, caseInsensitive bool) Config {
	return Config{
		query:           query,
		path:            path,
		caseInsensitive: caseInsensitive,
	}
}

func (c Config) Query() string         { return c.query }
func (c Config) Path() string          { return c.path }
func (c Config) CaseInsensitive() bool { return c.caseInsensitive }

// LogParam - параметры логгера, читаются из окружения
type LogParam struct {
	Level      string // LOG_LEVEL
	File       string // LOG_FILE, пусто - пишем в stderr
	MaxSizeMB  int    // LOG_MAX_SIZE_MB
	MaxBackups int    // LOG_MAX_BACKUPS
	MaxAgeDays int    // LOG_MAX_AGE_DAYS
}

type AppInit struct {
	SearchParam Config
	LogParam    LogParam
}

// Result - найденные строки и их хеш-сумма
type Result struct {
	Lines    []string
	HashSumm uint64
}
