package game

// ResourceConfig represents the top-level resource manifest loaded from YAML.
// It defines the structure of assets/config/resources.yaml.
//
// Structure:
//
//	version: "1.0"
//	base_path: assets
//	groups:
//	  game:
//	    sounds: [...]
//	    music: [...]
//	    models: [...]
type ResourceConfig struct {
	Version  string                   `yaml:"version"`
	BasePath string                   `yaml:"base_path"`
	Groups   map[string]ResourceGroup `yaml:"groups"`
}

// ResourceGroup is a collection of related resources that are checked and loaded together.
type ResourceGroup struct {
	Sounds []AssetResource `yaml:"sounds"` // one-shot effects
	Music  []AssetResource `yaml:"music"`  // looping background tracks
	Models []AssetResource `yaml:"models"` // 3D model files, consumed by the platform renderer
	Fonts  []AssetResource `yaml:"fonts"`
}

// AssetResource is a single resource definition.
//
// Example:
//   - id: SOUND_EXPLOSION
//     path: sounds/explosion.wav
type AssetResource struct {
	ID   string `yaml:"id"`
	Path string `yaml:"path"`
}

// buildFullPath combines the base path with a resource's relative path.
func buildFullPath(basePath, relativePath string) string {
	if basePath == "" {
		return relativePath
	}
	if len(relativePath) > 0 && relativePath[0] == '/' {
		return basePath + relativePath
	}
	return basePath + "/" + relativePath
}
