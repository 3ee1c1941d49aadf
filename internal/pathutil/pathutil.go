// Package pathutil manages application file paths and locations
package pathutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/adrg/xdg"
)

// EnvName selects an alternate set of files, e.g. FORGE_ENV=dev uses
// config_dev.yml and forge_dev.db.
const EnvName = "FORGE_ENV"

// Paths holds all application path configurations.
type Paths struct {
	appDir         string
	configFileName string
	boltFileName   string
	sqliteFileName string
	logFileName    string

	configFilePath string
	boltFilePath   string
	sqliteFilePath string
	logFilePath    string
}

var (
	paths   *Paths
	once    sync.Once
	initErr error
)

// Initialize resolves every path once. Later calls return the first result.
func Initialize() error {
	once.Do(func() {
		paths = &Paths{
			appDir:         "forge",
			configFileName: "config.yml",
			boltFileName:   "forge.db",
			sqliteFileName: "forge.sqlite",
			logFileName:    "forge.log",
		}

		paths.applyEnvironmentOverrides()
		initErr = paths.computePaths()
	})

	return initErr
}

// Must panics if paths haven't been initialized.
func Must() *Paths {
	if paths == nil {
		panic("pathutil.Initialize() must be called before accessing paths")
	}

	return paths
}

func ConfigFilePath() string {
	return Must().configFilePath
}

// DBFilePath returns the database location for the named store driver.
func DBFilePath(driver string) string {
	if driver == "sqlite" {
		return Must().sqliteFilePath
	}

	return Must().boltFilePath
}

func LogFilePath() string {
	return Must().logFilePath
}

func (p *Paths) applyEnvironmentOverrides() {
	env := strings.TrimSpace(os.Getenv(EnvName))
	if env != "" {
		p.configFileName = fmt.Sprintf("config_%s.yml", env)
		p.boltFileName = fmt.Sprintf("forge_%s.db", env)
		p.sqliteFileName = fmt.Sprintf("forge_%s.sqlite", env)
		p.logFileName = fmt.Sprintf("forge_%s.log", env)
	}
}

func (p *Paths) computePaths() error {
	var err error

	p.configFilePath, err = xdg.ConfigFile(filepath.Join(p.appDir, p.configFileName))
	if err != nil {
		return fmt.Errorf("resolving config path: %w", err)
	}

	dataDir, err := xdg.DataFile(p.appDir)
	if err != nil {
		return fmt.Errorf("resolving data dir: %w", err)
	}

	p.boltFilePath = filepath.Join(dataDir, p.boltFileName)
	p.sqliteFilePath = filepath.Join(dataDir, p.sqliteFileName)
	p.logFilePath = filepath.Join(dataDir, "log", p.logFileName)

	return nil
}
