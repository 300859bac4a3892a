package ride

import (
	"io"
	"os"
	"path/filepath"

	"github.com/snifferhu/RIDE/pkg/config"
	"github.com/snifferhu/RIDE/pkg/datamodel"
	"github.com/snifferhu/RIDE/pkg/filesystem"
	"github.com/snifferhu/RIDE/pkg/logging"
	"github.com/snifferhu/RIDE/pkg/model"
	"github.com/snifferhu/RIDE/pkg/types"
	"github.com/snifferhu/RIDE/pkg/ui"
)

// app holds the global flags and the state shared by subcommands
type app struct {
	verbosity  int
	outputFlag string
	configFile string

	fsys types.FS
	cfg  *config.Config
}

func newApp() *app {
	return &app{fsys: filesystem.NewOS()}
}

// loadConfig reads the configuration layers, using the directory of path
// for the project config file
func (a *app) loadConfig(path string) error {
	root := path
	if info, err := os.Stat(path); err == nil && !info.IsDir() {
		root = filepath.Dir(path)
	}

	cfg, err := config.Load(config.LoadOptions{
		Root: root,
		File: a.configFile,
	})
	if err != nil {
		return err
	}
	a.cfg = cfg
	return nil
}

// openModel loads the configuration for path and opens it
func (a *app) openModel(path string) (*datamodel.DataModel, error) {
	if err := a.loadConfig(path); err != nil {
		return nil, err
	}

	cache := model.NewResourceCache(a.fsys)
	factory := model.NewSuiteFactory(a.fsys, cache, model.WithConfig(a.cfg))

	return datamodel.New(factory, cache, path,
		datamodel.WithLogger(logging.GetLogger("datamodel")),
		datamodel.WithRecursiveKeywordScan(a.cfg.Keywords.RecursiveSuites),
	)
}

// renderer picks the --output flag, then output.format from the config
func (a *app) renderer(w io.Writer) (ui.Renderer, error) {
	name := a.outputFlag
	if name == "" && a.cfg != nil {
		name = a.cfg.Output.Format
	}
	format, err := ui.ParseFormat(name)
	if err != nil {
		return nil, err
	}
	return ui.NewRenderer(format, w)
}
