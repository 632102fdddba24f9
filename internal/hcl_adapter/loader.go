package hcl_adapter

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/specialistvlad/guessgame/internal/config"
	"github.com/specialistvlad/guessgame/internal/ctxlog"
	"github.com/specialistvlad/guessgame/internal/fsutil"
)

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new HCL configuration loader.
func NewLoader() *Loader {
	return &Loader{}
}

var _ config.Loader = (*Loader)(nil)

// Load parses every .hcl file found under paths and merges them over
// config.Default in path order. Later files override earlier ones.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.", "path_count", len(paths))

	model := config.Default()

	files, err := l.findAllHCLFiles(paths)
	if err != nil {
		return nil, err
	}
	logger.Debug("Discovered HCL files.", "count", len(files))

	parser := hclparse.NewParser()
	for _, file := range files {
		hclFile, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse HCL file %s: %w", file, diags)
		}

		var root fileRoot
		if diags := gohcl.DecodeBody(hclFile.Body, nil, &root); diags.HasErrors() {
			return nil, fmt.Errorf("failed to decode HCL file %s: %w", file, diags)
		}

		if err := l.mergeMessages(model, root.Messages); err != nil {
			return nil, fmt.Errorf("%s: %w", file, err)
		}
		if err := l.mergeInput(model, root.Input); err != nil {
			return nil, fmt.Errorf("%s: %w", file, err)
		}
		logger.Debug("Merged configuration file.", "file", file)
	}

	if err := model.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	logger.Debug("HCL loading complete.", "files", len(files), "max_read_retries", model.Input.MaxReadRetries)
	return model, nil
}

func (l *Loader) mergeMessages(model *config.Model, block *messagesBlock) error {
	if block == nil {
		return nil
	}
	attrs, diags := block.Body.JustAttributes()
	if diags.HasErrors() {
		return fmt.Errorf("invalid messages block: %w", diags)
	}

	names := make([]string, 0, len(attrs))
	for name := range attrs {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		key := config.MessageKey(name)
		expr := attrs[name].Expr
		if err := config.ValidateMessage(key, expr); err != nil {
			return err
		}
		model.Messages[key] = expr
	}
	return nil
}

func (l *Loader) mergeInput(model *config.Model, block *inputBlock) error {
	if block == nil {
		return nil
	}
	if block.MaxReadRetries != nil {
		model.Input.MaxReadRetries = *block.MaxReadRetries
	}
	if block.RetryInterval != nil {
		d, err := time.ParseDuration(*block.RetryInterval)
		if err != nil {
			return fmt.Errorf("invalid retry_interval: %w", err)
		}
		model.Input.RetryInterval = d
	}
	return nil
}

// findAllHCLFiles resolves every path to a flat, de-duplicated file list.
// Unlike discovery of optional locations, an explicit path that does not
// exist is an error.
func (l *Loader) findAllHCLFiles(paths []string) ([]string, error) {
	var allFiles []string
	seen := make(map[string]struct{})

	for _, path := range paths {
		files, err := fsutil.FindFilesByExtension(path, ".hcl")
		if err != nil {
			return nil, err
		}
		for _, f := range files {
			if _, wasSeen := seen[f]; wasSeen {
				continue
			}
			seen[f] = struct{}{}
			allFiles = append(allFiles, f)
		}
	}
	return allFiles, nil
}
