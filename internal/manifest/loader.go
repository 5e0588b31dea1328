package manifest

import (
	"context"
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/vk/composergo/internal/ctxlog"
	"github.com/vk/composergo/internal/fsutil"
)

// sceneFile represents the top-level structure of a scene manifest file.
type sceneFile struct {
	Scenes []*sceneBlock `hcl:"scene,block"`
}

// sceneBlock represents a single `scene` block.
type sceneBlock struct {
	Name    string        `hcl:"name,label"`
	Root    string        `hcl:"root"`
	Context *contextBlock `hcl:"context,block"`
}

// contextBlock represents the content of the `context` block within a scene.
type contextBlock struct {
	Body hcl.Body `hcl:",remain"`
}

// Loader parses scene manifests into the format-agnostic model.
type Loader struct {
	parser *hclparse.Parser
}

// NewLoader creates a new manifest loader.
func NewLoader() *Loader {
	return &Loader{parser: hclparse.NewParser()}
}

// Load reads every .hcl file under path (a single file or a directory walked
// recursively) and returns the combined model. Duplicate scene names across
// files are a load error.
func (l *Loader) Load(ctx context.Context, path string) (*Model, error) {
	logger := ctxlog.FromContext(ctx)

	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat scenes path: %w", err)
	}

	filePaths := []string{path}
	if info.IsDir() {
		filePaths, err = fsutil.FindFilesByExtension(path, ".hcl")
		if err != nil {
			return nil, fmt.Errorf("failed to walk scenes directory %s: %w", path, err)
		}
	}
	if len(filePaths) == 0 {
		logger.Warn("No .hcl scene files found in path.", "path", path)
	}

	model := &Model{}
	seen := make(map[string]string)

	for _, filePath := range filePaths {
		hclFile, diags := l.parser.ParseHCLFile(filePath)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse HCL file %s: %w", filePath, diags)
		}

		var file sceneFile
		if diags := gohcl.DecodeBody(hclFile.Body, nil, &file); diags.HasErrors() {
			return nil, fmt.Errorf("failed to decode scene file %s: %w", filePath, diags)
		}

		for _, block := range file.Scenes {
			if prior, dup := seen[block.Name]; dup {
				return nil, fmt.Errorf("duplicate scene %q in %s (already defined in %s)", block.Name, filePath, prior)
			}
			seen[block.Name] = filePath

			scene, err := l.translateScene(block)
			if err != nil {
				return nil, fmt.Errorf("scene %q in %s: %w", block.Name, filePath, err)
			}
			model.Scenes = append(model.Scenes, scene)
		}
		logger.Debug("Loaded scene definitions from HCL file.", "file", filePath, "scenes", len(file.Scenes))
	}

	logger.Info("Scene manifests loaded successfully.", "scenes_loaded", len(model.Scenes))
	return model, nil
}

// translateScene converts the HCL-specific scene schema into the agnostic
// model, evaluating every context attribute to a native Go value.
func (l *Loader) translateScene(block *sceneBlock) (*Scene, error) {
	scene := &Scene{
		Name:   block.Name,
		Root:   block.Root,
		Values: make(map[string]any),
	}

	if block.Context == nil {
		return scene, nil
	}

	attrs, diags := block.Context.Body.JustAttributes()
	if diags.HasErrors() {
		return nil, fmt.Errorf("invalid context block: %w", diags)
	}

	for name, attr := range attrs {
		val, diags := attr.Expr.Value(nil)
		if diags.HasErrors() {
			return nil, fmt.Errorf("evaluating context value %q: %w", name, diags)
		}
		goVal, err := fromCty(val)
		if err != nil {
			return nil, fmt.Errorf("converting context value %q: %w", name, err)
		}
		scene.Values[name] = goVal
	}

	return scene, nil
}
