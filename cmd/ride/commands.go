package ride

import (
	stderrors "errors"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/snifferhu/RIDE/internal/version"
	"github.com/snifferhu/RIDE/pkg/datamodel"
	"github.com/snifferhu/RIDE/pkg/errors"
	"github.com/snifferhu/RIDE/pkg/kwspec"
	"github.com/snifferhu/RIDE/pkg/logging"
	"github.com/snifferhu/RIDE/pkg/types"
	"github.com/snifferhu/RIDE/pkg/ui/display"
	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"
)

func newInfoCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "info <path>",
		Short:   MsgInfoShort,
		GroupID: "data",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := a.openModel(args[0])
			if err != nil {
				return err
			}
			r, err := a.renderer(cmd.OutOrStdout())
			if err != nil {
				return err
			}
			return r.RenderResult(display.NewModelReport(m))
		},
	}
}

func newKeywordsCmd(a *app) *cobra.Command {
	var libraries []string

	cmd := &cobra.Command{
		Use:     "keywords <path>",
		Short:   MsgKeywordsShort,
		Example: MsgKeywordsExample,
		GroupID: "data",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := a.openModel(args[0])
			if err != nil {
				return err
			}

			kws := m.AllKeywords()
			if len(libraries) > 0 {
				for _, path := range libraries {
					spec, err := kwspec.ReadFile(a.fsys, path)
					if err != nil {
						return err
					}
					log.Info().Str("path", path).Int("count", len(spec.Keywords)).Msg("Library keywords loaded")
					kws = append(kws, spec.Keywords...)
				}
				kws = datamodel.Unique(kws)
			}

			r, err := a.renderer(cmd.OutOrStdout())
			if err != nil {
				return err
			}
			return r.RenderResult(&display.KeywordList{Keywords: kws})
		},
	}

	cmd.Flags().StringArrayVar(&libraries, "library", nil, MsgFlagLibrary)
	return cmd
}

func newDocCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "doc <path> <keyword>",
		Short:   MsgDocShort,
		GroupID: "data",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := a.openModel(args[0])
			if err != nil {
				return err
			}
			kw, err := m.FindKeyword(args[1])
			if err != nil {
				return err
			}
			r, err := a.renderer(cmd.OutOrStdout())
			if err != nil {
				return err
			}
			return r.RenderResult(&display.KeywordDoc{Keyword: kw})
		},
	}
}

func newSpecCmd(a *app) *cobra.Command {
	var (
		outFile string
		name    string
	)

	cmd := &cobra.Command{
		Use:     "spec <path>",
		Short:   MsgSpecShort,
		GroupID: "data",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := a.openModel(args[0])
			if err != nil {
				return err
			}

			if name == "" {
				name = specName(m)
			}
			if name == "" {
				return errors.New(errors.ErrInvalidInput, MsgNothingOpened)
			}

			spec := kwspec.New(name, m.AllKeywords())
			if outFile == "" {
				_, err := spec.WriteTo(cmd.OutOrStdout())
				return err
			}

			data, err := spec.Bytes()
			if err != nil {
				return err
			}
			if err := a.fsys.WriteFile(outFile, data, 0644); err != nil {
				return errors.Wrap(err, errors.ErrFileWrite, "cannot write keyword spec").
					WithDetail("path", outFile)
			}

			r, err := a.renderer(cmd.OutOrStdout())
			if err != nil {
				return err
			}
			return r.RenderResult(&display.SpecReport{
				Name:     name,
				Output:   outFile,
				Keywords: len(spec.Keywords),
			})
		},
	}

	cmd.Flags().StringVarP(&outFile, "out", "o", "", MsgFlagSpecOut)
	cmd.Flags().StringVar(&name, "name", "", MsgFlagName)
	return cmd
}

// specName is the root suite name, or the first resource name when a
// resource file was opened
func specName(m *datamodel.DataModel) string {
	if s := m.Suite(); s != nil {
		return s.Name()
	}
	if res := m.Resources(); len(res) > 0 {
		return res[0].Name()
	}
	return ""
}

func newSaveCmd(a *app) *cobra.Command {
	var (
		formatName string
		all        bool
	)

	cmd := &cobra.Command{
		Use:     "save <path>",
		Short:   MsgSaveShort,
		Long:    MsgSaveLong,
		GroupID: "data",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.GetLogger("cmd.save")

			m, err := a.openModel(args[0])
			if err != nil {
				return err
			}
			if formatName == "" {
				formatName = a.cfg.Formats.Default
			}

			if all {
				markAllDirty(m)
			}

			report := &display.SaveReport{Timestamp: time.Now()}
			for _, s := range m.FilesWithoutFormat(nil) {
				setter, ok := s.(formatSetter)
				if !ok {
					continue
				}
				if err := setter.SetFormat(formatName); err != nil {
					return err
				}
				report.Formatted = append(report.Formatted, s.Source())
			}

			pending := dirtyFiles(m)
			logger.Info().Int("count", len(pending)).Bool("all", all).Msg("Saving files")

			saveErr := m.Serialize(nil)
			var serr *datamodel.SerializationError
			if stderrors.As(saveErr, &serr) {
				for _, f := range serr.Failures {
					report.Failed = append(report.Failed, display.SaveFailure{Source: f.Source, Error: f.Err.Error()})
				}
			} else if saveErr != nil {
				return saveErr
			}

			// successful writes clear the dirty flag
			for _, df := range pending {
				if !df.IsDirty() {
					report.Saved = append(report.Saved, df.Source())
				}
			}

			r, err := a.renderer(cmd.OutOrStdout())
			if err != nil {
				return err
			}
			if err := r.RenderResult(report); err != nil {
				return err
			}
			return saveErr
		},
	}

	cmd.Flags().StringVar(&formatName, "format", "", MsgFlagFormat)
	cmd.Flags().BoolVar(&all, "all", false, MsgFlagAll)
	return cmd
}

type dirtyMarker interface {
	MarkDirty()
}

type formatSetter interface {
	SetFormat(name string) error
}

// markAllDirty flags every suite with a format and every resource
func markAllDirty(m *datamodel.DataModel) {
	var walk func(s types.Suite)
	walk = func(s types.Suite) {
		if d, ok := s.(dirtyMarker); ok && s.HasFormat() {
			d.MarkDirty()
		}
		for _, child := range s.Suites() {
			walk(child)
		}
	}
	if s := m.Suite(); s != nil {
		walk(s)
	}
	for _, res := range m.Resources() {
		if d, ok := res.(dirtyMarker); ok {
			d.MarkDirty()
		}
	}
}

// dirtyFiles lists every modified suite, at any depth, and resource
func dirtyFiles(m *datamodel.DataModel) []types.DataFile {
	var files []types.DataFile
	var walk func(s types.Suite)
	walk = func(s types.Suite) {
		if s.IsDirty() {
			files = append(files, s)
		}
		for _, child := range s.Suites() {
			walk(child)
		}
	}
	if s := m.Suite(); s != nil {
		walk(s)
	}
	for _, res := range m.Resources() {
		if res.IsDirty() {
			files = append(files, res)
		}
	}
	return files
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   MsgVersionShort,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), MsgVersionFormat, version.Version, version.Commit, version.Date)
			return err
		},
	}
}

func newManCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "man <dir>",
		Short:   MsgManShort,
		GroupID: "misc",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := os.MkdirAll(args[0], 0755); err != nil {
				return errors.Wrap(err, errors.ErrFileWrite, "cannot create man directory").
					WithDetail("path", args[0])
			}
			header := &doc.GenManHeader{
				Title:   "RIDE",
				Section: "1",
				Source:  "ride " + version.Version,
				Manual:  "ride manual",
			}
			return doc.GenManTree(cmd.Root(), header, args[0])
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		Long:                  MsgCompletionLong,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		GroupID:               "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletionV2(out, true)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			default:
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
		},
	}
}
