package game

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/jpeg" // Register JPEG decoder
	_ "image/png"  // Register PNG decoder
	"io"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/mp3"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/Drodd/2dBakery/pkg/embedded"
	"github.com/Drodd/2dBakery/pkg/logging"
)

// ErrNoAudioContext 没有音频上下文时无法创建播放器（如终端模式）
var ErrNoAudioContext = errors.New("audio context not available")

// *audio.Player 直接作为背景音乐播放器使用
var _ MusicPlayer = (*audio.Player)(nil)

// Opener 打开资源文件
type Opener func(path string) (io.ReadCloser, error)

// ResourceManager is responsible for centralized management of game resources.
// It provides loading and caching for images, looping music and font sources,
// so each file is decoded only once.
//
// Files are opened through an Opener, by default embedded resources first and
// then the working directory, so sprites can be dropped next to the binary.
//
// Not thread-safe. All loading happens on the game goroutine in the loading scene.
//
// Usage:
//
//	rm := NewResourceManager(audio.NewContext(48000))
//	if err := rm.LoadResourceConfig("assets/config/resources.yaml"); err != nil {
//	    ...
//	}
//	bg, err := rm.LoadImageByID(ImageBackground)
type ResourceManager struct {
	imageCache      map[string]*ebiten.Image          // path -> Image
	audioCache      map[string]*audio.Player          // path -> Player
	fontSourceCache map[string]*text.GoTextFaceSource // path -> face source
	audioContext    *audio.Context                    // nil disables audio
	open            Opener

	config      *ResourceConfig   // Parsed manifest
	resourceMap map[string]string // Resource ID -> file path

	logger *log.Logger
}

// NewResourceManager creates and initializes a new ResourceManager instance.
//
// Parameters:
//   - audioContext: The global audio context used for decoding music. May be nil,
//     in which case LoadAudio always fails with ErrNoAudioContext.
func NewResourceManager(audioContext *audio.Context) *ResourceManager {
	return &ResourceManager{
		imageCache:      make(map[string]*ebiten.Image),
		audioCache:      make(map[string]*audio.Player),
		fontSourceCache: make(map[string]*text.GoTextFaceSource),
		audioContext:    audioContext,
		open:            embedded.OpenWithFallback,
		resourceMap:     make(map[string]string),
		logger:          logging.For("ResourceManager"),
	}
}

// SetOpener 替换文件打开方式（测试中可注入内存文件系统）
func (rm *ResourceManager) SetOpener(open Opener) {
	rm.open = open
}

// readAll 通过 Opener 读取整个文件
func (rm *ResourceManager) readAll(path string) ([]byte, error) {
	f, err := rm.open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return data, nil
}

// decodeImage 解码 PNG/JPEG 数据
func decodeImage(path string, data []byte) (image.Image, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", path, err)
	}
	return img, nil
}

// LoadImage loads an image file from the specified path and caches it for future use.
// If the image has already been loaded, it returns the cached version.
//
// Returns:
//   - A pointer to the loaded ebiten.Image.
//   - An error if the file cannot be opened or decoded. Does not panic.
func (rm *ResourceManager) LoadImage(path string) (*ebiten.Image, error) {
	if cachedImage, exists := rm.imageCache[path]; exists {
		return cachedImage, nil
	}

	data, err := rm.readAll(path)
	if err != nil {
		return nil, err
	}
	img, err := decodeImage(path, data)
	if err != nil {
		return nil, err
	}

	ebitenImg := ebiten.NewImageFromImage(img)
	rm.imageCache[path] = ebitenImg
	rm.logger.Debug("image loaded", "path", path, "size", img.Bounds().Size())
	return ebitenImg, nil
}

// GetImage retrieves a previously loaded image from the cache, or nil.
func (rm *ResourceManager) GetImage(path string) *ebiten.Image {
	return rm.imageCache[path]
}

// loopStream 解码后的音频流
type loopStream interface {
	io.ReadSeeker
	Length() int64
}

// decodeAudio 根据扩展名解码 MP3/OGG
func decodeAudio(path string, data []byte) (loopStream, error) {
	reader := bytes.NewReader(data)
	ext := strings.ToLower(filepath.Ext(path))

	switch ext {
	case ".mp3":
		s, err := mp3.DecodeWithoutResampling(reader)
		if err != nil {
			return nil, fmt.Errorf("failed to decode MP3 audio %s: %w", path, err)
		}
		return s, nil
	case ".ogg":
		s, err := vorbis.DecodeWithoutResampling(reader)
		if err != nil {
			return nil, fmt.Errorf("failed to decode OGG audio %s: %w", path, err)
		}
		return s, nil
	}
	return nil, fmt.Errorf("unsupported audio format: %s (supported: .mp3, .ogg)", ext)
}

// LoadAudio loads a music file and wraps it in an infinite loop.
// If the audio has already been loaded, it returns the cached player.
// Supported formats: MP3 (.mp3) and OGG Vorbis (.ogg).
//
// Returns:
//   - A player that is ready but not started.
//   - ErrNoAudioContext when the manager was created without audio, or an
//     error if the file cannot be opened or decoded.
func (rm *ResourceManager) LoadAudio(path string) (*audio.Player, error) {
	if cachedPlayer, exists := rm.audioCache[path]; exists {
		return cachedPlayer, nil
	}
	if rm.audioContext == nil {
		return nil, fmt.Errorf("load %s: %w", path, ErrNoAudioContext)
	}

	data, err := rm.readAll(path)
	if err != nil {
		return nil, err
	}
	stream, err := decodeAudio(path, data)
	if err != nil {
		return nil, err
	}

	player, err := rm.audioContext.NewPlayer(audio.NewInfiniteLoop(stream, stream.Length()))
	if err != nil {
		return nil, fmt.Errorf("failed to create audio player for %s: %w", path, err)
	}

	rm.audioCache[path] = player
	rm.logger.Debug("audio loaded", "path", path)
	return player, nil
}

// GetAudioPlayer retrieves a previously loaded audio player, or nil.
func (rm *ResourceManager) GetAudioPlayer(path string) *audio.Player {
	return rm.audioCache[path]
}

// LoadFontSource 加载 TTF/OTF 字体源，不同字号共用同一个源
func (rm *ResourceManager) LoadFontSource(path string) (*text.GoTextFaceSource, error) {
	if cached, exists := rm.fontSourceCache[path]; exists {
		return cached, nil
	}

	data, err := rm.readAll(path)
	if err != nil {
		return nil, err
	}
	source, err := text.NewGoTextFaceSource(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to create font source for %s: %w", path, err)
	}

	rm.fontSourceCache[path] = source
	return source, nil
}

// LoadResourceConfig 加载并解析资源清单，建立 ID 到路径的映射
func (rm *ResourceManager) LoadResourceConfig(configPath string) error {
	data, err := rm.readAll(configPath)
	if err != nil {
		return fmt.Errorf("failed to read resource config: %w", err)
	}
	cfg, err := ParseResourceConfig(data)
	if err != nil {
		return fmt.Errorf("%s: %w", configPath, err)
	}
	rm.SetResourceConfig(cfg)
	return nil
}

// SetResourceConfig 使用已解析的清单
func (rm *ResourceManager) SetResourceConfig(cfg *ResourceConfig) {
	rm.config = cfg
	rm.buildResourceMap()
}

// buildResourceMap 建立资源 ID -> 完整路径映射
func (rm *ResourceManager) buildResourceMap() {
	rm.resourceMap = make(map[string]string)
	if rm.config == nil {
		return
	}

	for _, group := range rm.config.Groups {
		for _, img := range group.Images {
			rm.resourceMap[img.ID] = buildFullPath(rm.config.BasePath, img.Path, ".png")
		}
		for _, sound := range group.Sounds {
			rm.resourceMap[sound.ID] = buildFullPath(rm.config.BasePath, sound.Path, ".mp3")
		}
		for _, font := range group.Fonts {
			rm.resourceMap[font.ID] = buildFullPath(rm.config.BasePath, font.Path, "")
		}
	}
}

// PathForID 返回资源 ID 对应的文件路径
func (rm *ResourceManager) PathForID(resourceID string) (string, bool) {
	p, ok := rm.resourceMap[resourceID]
	return p, ok
}

// HasResource 清单中是否声明了该资源
func (rm *ResourceManager) HasResource(resourceID string) bool {
	_, ok := rm.resourceMap[resourceID]
	return ok
}

func (rm *ResourceManager) resolve(resourceID string) (string, error) {
	if rm.config == nil {
		return "", errors.New("resource config not loaded - call LoadResourceConfig first")
	}
	p, ok := rm.resourceMap[resourceID]
	if !ok {
		return "", fmt.Errorf("resource ID not found: %s", resourceID)
	}
	return p, nil
}

// LoadImageByID 按资源 ID 加载图片
func (rm *ResourceManager) LoadImageByID(resourceID string) (*ebiten.Image, error) {
	p, err := rm.resolve(resourceID)
	if err != nil {
		return nil, err
	}
	return rm.LoadImage(p)
}

// GetImageByID 按资源 ID 获取已加载的图片，未加载或加载失败时返回 nil
func (rm *ResourceManager) GetImageByID(resourceID string) *ebiten.Image {
	p, ok := rm.resourceMap[resourceID]
	if !ok {
		return nil
	}
	return rm.GetImage(p)
}

// LoadAudioByID 按资源 ID 加载循环音乐
func (rm *ResourceManager) LoadAudioByID(resourceID string) (*audio.Player, error) {
	p, err := rm.resolve(resourceID)
	if err != nil {
		return nil, err
	}
	return rm.LoadAudio(p)
}

// LoadFontSourceByID 按资源 ID 加载字体源
func (rm *ResourceManager) LoadFontSourceByID(resourceID string) (*text.GoTextFaceSource, error) {
	p, err := rm.resolve(resourceID)
	if err != nil {
		return nil, err
	}
	return rm.LoadFontSource(p)
}

// LoadResourceGroup 加载资源组中的所有图片
//
// 与逐个加载不同，单个图片失败不会中断加载：
// 所有图片都会尝试一次，失败的错误合并后返回，成功的图片照常进入缓存。
// 音频与字体按需通过 LoadAudioByID / LoadFontSourceByID 加载。
func (rm *ResourceManager) LoadResourceGroup(groupName string) error {
	if rm.config == nil {
		return errors.New("resource config not loaded - call LoadResourceConfig first")
	}

	group, exists := rm.config.Groups[groupName]
	if !exists {
		return fmt.Errorf("resource group not found: %s", groupName)
	}

	var errs []error
	for _, img := range group.Images {
		if _, err := rm.LoadImageByID(img.ID); err != nil {
			errs = append(errs, fmt.Errorf("image %s in group %s: %w", img.ID, groupName, err))
		}
	}
	return errors.Join(errs...)
}
