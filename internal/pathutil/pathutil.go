// Package pathutil manages application file paths and locations
package pathutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
)

const appDir = "zenfocus"

// Paths holds the absolute locations of every file zenfocus reads or writes.
type Paths struct {
	configFileName string
	localDBName    string
	serverDBName   string
	logFileName    string
	statusFileName string

	ConfigFile string
	LocalDB    string
	ServerDB   string
	LogFile    string
	StatusFile string
	SoundsDir  string
	CacheDir   string
}

// Dir returns the directory name used under the XDG base directories.
func Dir() string {
	return appDir
}

// New computes the application paths. Setting ZENFOCUS_ENV to a non-empty
// value suffixes every file name so that test or development runs do not
// touch real data.
func New() (*Paths, error) {
	p := &Paths{
		configFileName: "config.yml",
		localDBName:    "zenfocus.db",
		serverDBName:   "aggregator.db",
		logFileName:    "zenfocus.log",
		statusFileName: "status.json",
	}

	p.applyEnvironmentOverrides()

	err := p.computePaths()
	if err != nil {
		return nil, err
	}

	return p, nil
}

func (p *Paths) applyEnvironmentOverrides() {
	env := strings.TrimSpace(os.Getenv("ZENFOCUS_ENV"))
	if env != "" {
		p.configFileName = fmt.Sprintf("config_%s.yml", env)
		p.localDBName = fmt.Sprintf("zenfocus_%s.db", env)
		p.serverDBName = fmt.Sprintf("aggregator_%s.db", env)
		p.logFileName = fmt.Sprintf("zenfocus_%s.log", env)
		p.statusFileName = fmt.Sprintf("status_%s.json", env)
	}
}

func (p *Paths) computePaths() error {
	var err error

	p.ConfigFile, err = xdg.ConfigFile(filepath.Join(appDir, p.configFileName))
	if err != nil {
		return err
	}

	dataDir, err := xdg.DataFile(appDir)
	if err != nil {
		return err
	}

	p.LocalDB = filepath.Join(dataDir, p.localDBName)
	p.ServerDB = filepath.Join(dataDir, p.serverDBName)
	p.LogFile = filepath.Join(dataDir, "log", p.logFileName)
	p.StatusFile = filepath.Join(dataDir, p.statusFileName)
	p.SoundsDir = filepath.Join(dataDir, "sounds")

	p.CacheDir, err = xdg.CacheFile(appDir)
	if err != nil {
		return err
	}

	return nil
}

// StripExtension returns the input file name without its extension.
func StripExtension(fileName string) string {
	return fileName[:len(fileName)-len(filepath.Ext(fileName))]
}
