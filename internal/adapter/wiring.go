package adapter

import (
	"fmt"

	"github.com/Cyclone1070/fileview/internal/config"
	"github.com/Cyclone1070/fileview/internal/tool/directory"
	"github.com/Cyclone1070/fileview/internal/tool/file"
	"github.com/Cyclone1070/fileview/internal/tool/search"
	"github.com/Cyclone1070/fileview/internal/tool/service/fs"
	"github.com/Cyclone1070/fileview/internal/tool/service/git"
	"github.com/Cyclone1070/fileview/internal/tool/service/path"
	"go.uber.org/zap"
)

// Build canonicalises the configured root and wires every tool onto it.
// The canonical root is written back to cfg.Root.
func Build(cfg *config.Config, logger *zap.Logger) (*Service, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	root, err := path.CanonicaliseRoot(cfg.Root)
	if err != nil {
		return nil, err
	}
	cfg.Root = root

	osFS := fs.NewOSFileSystem()
	resolver := path.NewResolver(root, path.Mode(cfg.Sandbox.Mode))

	var matcher interface {
		ShouldIgnore(relativePath string, isDir bool) bool
	} = &git.NoOpMatcher{}
	if len(cfg.Search.Exclude) > 0 || cfg.Search.RespectGitignore {
		m, err := git.NewIgnoreMatcher(root, cfg.Search.Exclude, cfg.Search.RespectGitignore, osFS)
		if err != nil {
			return nil, fmt.Errorf("failed to load ignore patterns: %w", err)
		}
		matcher = m
	}

	logger.Info("serving root",
		zap.String("root", root),
		zap.String("sandbox_mode", string(resolver.Mode())),
		zap.Bool("write_enabled", cfg.Write.Enabled),
	)

	return NewService(
		resolver,
		directory.NewListDirectoryTool(osFS, matcher, resolver),
		file.NewReadFileTool(osFS, cfg),
		search.NewSearchContentTool(osFS, matcher, resolver, cfg, logger.Named("search")),
		file.NewWriteGate(osFS, cfg, logger.Named("write")),
		logger,
	), nil
}
