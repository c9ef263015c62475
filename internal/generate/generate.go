package generate

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ThomasCrouzet/nagmaps/internal/config"
	"github.com/ThomasCrouzet/nagmaps/internal/filter"
	"github.com/ThomasCrouzet/nagmaps/internal/logo"
	"github.com/ThomasCrouzet/nagmaps/internal/model"
	"github.com/ThomasCrouzet/nagmaps/internal/render"
	"github.com/ThomasCrouzet/nagmaps/internal/source"
	"github.com/ThomasCrouzet/nagmaps/internal/util"
	"github.com/rs/zerolog"
)

// DefaultOverviewFile is written relative to the working directory.
const DefaultOverviewFile = "overview.cfg"

// LogoResolver ensures a local copy of a logo exists.
type LogoResolver interface {
	Resolve(ctx context.Context, ref string) (string, error)
}

// Generator turns the host groups of a source into NagVis map files.
type Generator struct {
	Config       *config.Config
	Source       source.GroupSource
	Logos        LogoResolver
	Renderer     render.Renderer
	OutputDir    string
	OverviewFile string
	Log          zerolog.Logger

	// Warn reports non-fatal problems. If nil they are logged.
	Warn    func(msg string)
	// Written is called with the path of every map file written.
	Written func(path string)
}

// Result summarises a generator run.
type Result struct {
	Groups   []string // all groups returned by the source
	Targets  []string // groups that got a map
	Files    []string // per-group map files
	Overview string   // overview map file
}

// New returns a Generator wired from cfg.
func New(cfg *config.Config, src source.GroupSource, outputDir string, log zerolog.Logger) *Generator {
	return &Generator{
		Config:       cfg,
		Source:       src,
		Logos:        logo.NewResolver(cfg.ImagePath),
		Renderer:     render.NewNagVis(cfg.Iconset),
		OutputDir:    outputDir,
		OverviewFile: DefaultOverviewFile,
		Log:          log,
	}
}

// Run fetches host groups, filters them and writes one map per group and
// the overview map. Files written before an error stay in place.
func (g *Generator) Run(ctx context.Context) (*Result, error) {
	if err := os.MkdirAll(g.Config.ImagePath, 0755); err != nil {
		return nil, fmt.Errorf("creating image directory: %w", err)
	}

	groups, err := g.Source.Groups(ctx)
	if err != nil {
		return nil, &source.SourceError{Source: source.DisplayName(g.Source), Err: err}
	}

	res := &Result{Groups: groups}
	res.Targets = filter.New(g.Config.Rules(), g.Log).Apply(groups)
	g.Log.Debug().Strs("targets", res.Targets).Msg("filtered host groups")

	for _, group := range res.Targets {
		meta := g.resolveMetadata(ctx, group)
		doc := g.Renderer.GroupMap(group, meta)
		g.Log.Debug().Str("group", group).Msg(doc.Content)

		path := filepath.Join(g.OutputDir, util.MapFileName(group))
		if err := g.write(path, doc); err != nil {
			return res, err
		}
		res.Files = append(res.Files, path)
	}

	overview := g.OverviewFile
	if overview == "" {
		overview = DefaultOverviewFile
	}
	if err := g.write(overview, g.Renderer.Overview(res.Targets, g.Config.Backend)); err != nil {
		return res, err
	}
	res.Overview = overview

	return res, nil
}

// resolveMetadata applies defaults and fetches a remote logo. If the fetch
// fails the map keeps referencing the remote logo.
func (g *Generator) resolveMetadata(ctx context.Context, group string) model.GroupMetadata {
	meta := g.Config.Metadata(group)
	if !logo.IsRemote(meta.Logo) || g.Logos == nil {
		return meta
	}

	local, err := g.Logos.Resolve(ctx, meta.Logo)
	if err != nil {
		g.warn(fmt.Sprintf("error while trying to fetch and write to disk: %v", err))
		return meta
	}
	meta.Logo = filepath.Base(local)
	return meta
}

func (g *Generator) write(path string, doc model.MapDocument) error {
	if err := os.WriteFile(path, []byte(doc.Content), 0644); err != nil {
		return fmt.Errorf("writing map %s: %w", doc.Name, err)
	}
	if g.Written != nil {
		g.Written(path)
	}
	return nil
}

func (g *Generator) warn(msg string) {
	if g.Warn != nil {
		g.Warn(msg)
		return
	}
	g.Log.Warn().Msg(msg)
}
