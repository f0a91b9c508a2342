package game

import (
	"errors"
	"fmt"
	"path"

	"gopkg.in/yaml.v3"
)

// 资源清单中使用的资源 ID
const (
	ImageBackground  = "IMAGE_BG"
	ImageDesk        = "IMAGE_DESK"
	ImagePlayerUp    = "IMAGE_PLAYER_UP"
	ImagePlayerDown  = "IMAGE_PLAYER_DOWN"
	ImagePlayerLeft  = "IMAGE_PLAYER_LEFT"
	ImagePlayerRight = "IMAGE_PLAYER_RIGHT"
	SoundBGM         = "SOUND_BGM"
	FontHUD          = "FONT_HUD"
)

// PlayerImageID 返回朝向对应的玩家精灵 ID
func PlayerImageID(d Direction) string {
	switch d {
	case DirectionUp:
		return ImagePlayerUp
	case DirectionLeft:
		return ImagePlayerLeft
	case DirectionRight:
		return ImagePlayerRight
	default:
		return ImagePlayerDown
	}
}

// ResourceConfig represents the top-level resource manifest loaded from YAML.
// It defines the structure of assets/config/resources.yaml.
//
// Structure:
//
//	version: "1.0"
//	base_path: assets
//	groups:
//	  game:
//	    images: [...]
//	    sounds: [...]
//	    fonts: [...]
type ResourceConfig struct {
	Version  string                   `yaml:"version"`   // Manifest version
	BasePath string                   `yaml:"base_path"` // Base path for all resources (e.g., "assets")
	Groups   map[string]ResourceGroup `yaml:"groups"`    // Resource groups keyed by group name
}

// ResourceGroup represents a collection of resources loaded together.
//
// Example:
//
//	game:
//	  images:
//	    - id: IMAGE_BG
//	      path: images/bg
type ResourceGroup struct {
	Images []ImageResource `yaml:"images"`
	Sounds []SoundResource `yaml:"sounds"`
	Fonts  []FontResource  `yaml:"fonts"`
}

// ImageResource 单个图片资源
// Path 相对 base_path，省略扩展名时默认为 .png
type ImageResource struct {
	ID   string `yaml:"id"`
	Path string `yaml:"path"`
}

// SoundResource 单个音频资源
// Path 相对 base_path，省略扩展名时默认为 .mp3
type SoundResource struct {
	ID   string `yaml:"id"`
	Path string `yaml:"path"`
}

// FontResource 单个字体资源（TTF/OTF）
type FontResource struct {
	ID   string `yaml:"id"`
	Path string `yaml:"path"`
}

// ParseResourceConfig 解析资源清单
//
// 返回：
//   - *ResourceConfig: 解析后的清单
//   - error: YAML 语法错误、ID 为空或重复时返回错误
func ParseResourceConfig(data []byte) (*ResourceConfig, error) {
	var cfg ResourceConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse resource config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid resource config: %w", err)
	}
	return &cfg, nil
}

// Validate 检查资源 ID 非空且全局唯一
func (c *ResourceConfig) Validate() error {
	var errs []error
	seen := make(map[string]string)

	check := func(group, id, p string) {
		switch {
		case id == "":
			errs = append(errs, fmt.Errorf("group %s: resource with empty id (path %q)", group, p))
		case p == "":
			errs = append(errs, fmt.Errorf("group %s: resource %s has empty path", group, id))
		case seen[id] != "":
			errs = append(errs, fmt.Errorf("group %s: duplicate resource id %s (also in group %s)", group, id, seen[id]))
		default:
			seen[id] = group
		}
	}

	for name, g := range c.Groups {
		for _, r := range g.Images {
			check(name, r.ID, r.Path)
		}
		for _, r := range g.Sounds {
			check(name, r.ID, r.Path)
		}
		for _, r := range g.Fonts {
			check(name, r.ID, r.Path)
		}
	}
	return errors.Join(errs...)
}

// buildFullPath constructs the full file path for a resource.
// It combines the base path with the resource's relative path.
//
// Parameters:
//   - basePath: The base path from ResourceConfig (e.g., "assets")
//   - relativePath: The resource's relative path (e.g., "images/bg.png")
//   - defaultExt: Extension appended when relativePath has none (e.g., ".png")
//
// Returns:
//   - The full slash-separated path (e.g., "assets/images/bg.png")
func buildFullPath(basePath, relativePath, defaultExt string) string {
	full := path.Join(basePath, relativePath)
	if basePath == "" {
		full = relativePath
	}
	if path.Ext(full) == "" {
		full += defaultExt
	}
	return full
}
