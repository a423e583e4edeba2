package game

import (
	"bytes"
	"fmt"
	"io"
	"path/filepath"
	"sort"
	"strings"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/mp3"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
	"gopkg.in/yaml.v3"

	"github.com/gonewx/armadness/pkg/embedded"
)

// FileReader reads a resource file by its slash-separated path.
type FileReader func(path string) ([]byte, error)

// ResourceManager is responsible for centralized management of game resources.
// It resolves resource IDs from the YAML manifest, checks that declared assets exist,
// and loads and caches audio players and font faces.
//
// Thread Safety Note:
// This implementation is NOT thread-safe; it is only used from the game loop.
type ResourceManager struct {
	audioContext  *audio.Context // nil when audio could not be initialised
	readFile      FileReader
	audioCache    map[string]*audio.Player
	fontFaceCache map[float64]*text.GoTextFace
	fontSource    *text.GoTextFaceSource

	config      *ResourceConfig
	resourceMap map[string]string // Resource ID -> full path
}

// NewResourceManager creates a ResourceManager.
// audioContext may be nil; audio loads then fail with ErrAudioUnavailable.
func NewResourceManager(audioContext *audio.Context) *ResourceManager {
	return &ResourceManager{
		audioContext:  audioContext,
		readFile:      embedded.ReadAsset,
		audioCache:    make(map[string]*audio.Player),
		fontFaceCache: make(map[float64]*text.GoTextFace),
		resourceMap:   make(map[string]string),
	}
}

// SetFileReader replaces the file reader (used by tests).
func (rm *ResourceManager) SetFileReader(r FileReader) {
	rm.readFile = r
}

// AudioAvailable reports whether sounds can be played at all.
func (rm *ResourceManager) AudioAvailable() bool {
	return rm.audioContext != nil
}

// LoadResourceConfig loads and parses the YAML resource manifest.
func (rm *ResourceManager) LoadResourceConfig(configPath string) error {
	data, err := rm.readFile(configPath)
	if err != nil {
		return fmt.Errorf("failed to read resource config %s: %w", configPath, err)
	}

	var config ResourceConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return fmt.Errorf("failed to parse resource config %s: %w", configPath, err)
	}

	rm.config = &config
	rm.buildResourceMap()
	return nil
}

// buildResourceMap constructs the resource ID -> full path mapping.
func (rm *ResourceManager) buildResourceMap() {
	rm.resourceMap = make(map[string]string)
	if rm.config == nil {
		return
	}

	for _, group := range rm.config.Groups {
		for _, list := range [][]AssetResource{group.Sounds, group.Music, group.Models, group.Fonts} {
			for _, res := range list {
				rm.resourceMap[res.ID] = buildFullPath(rm.config.BasePath, res.Path)
			}
		}
	}
}

// ResourcePath returns the full path for a resource ID.
func (rm *ResourceManager) ResourcePath(resourceID string) (string, bool) {
	p, ok := rm.resourceMap[resourceID]
	return p, ok
}

// CheckAssets verifies that every declared resource can be read.
// It returns nil, or an *AssetMissingError listing every missing resource in ID order.
func (rm *ResourceManager) CheckAssets() error {
	ids := make([]string, 0, len(rm.resourceMap))
	for id := range rm.resourceMap {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	var missing []MissingAsset
	for _, id := range ids {
		path := rm.resourceMap[id]
		if _, err := rm.readFile(path); err != nil {
			missing = append(missing, MissingAsset{ID: id, Path: path, Err: err})
		}
	}

	if len(missing) == 0 {
		return nil
	}
	return &AssetMissingError{Missing: missing}
}

// decodeStream decodes audio data by file extension.
// Supported formats: MP3 (.mp3), WAV (.wav) and OGG Vorbis (.ogg).
func decodeStream(path string, data []byte) (io.ReadSeeker, int64, error) {
	reader := bytes.NewReader(data)

	switch strings.ToLower(filepath.Ext(path)) {
	case ".mp3":
		s, err := mp3.DecodeWithoutResampling(reader)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to decode MP3 audio %s: %w", path, err)
		}
		return s, s.Length(), nil
	case ".wav":
		s, err := wav.DecodeWithoutResampling(reader)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to decode WAV audio %s: %w", path, err)
		}
		return s, s.Length(), nil
	case ".ogg":
		s, err := vorbis.DecodeWithoutResampling(reader)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to decode OGG audio %s: %w", path, err)
		}
		return s, s.Length(), nil
	default:
		return nil, 0, fmt.Errorf("unsupported audio format: %s (supported: .mp3, .wav, .ogg)", path)
	}
}

// loadPlayer loads and caches an audio player; loop wraps the stream in an infinite loop.
func (rm *ResourceManager) loadPlayer(path string, loop bool) (*audio.Player, error) {
	if cached, exists := rm.audioCache[path]; exists {
		return cached, nil
	}
	if rm.audioContext == nil {
		return nil, ErrAudioUnavailable
	}

	data, err := rm.readFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read audio file %s: %w", path, err)
	}

	stream, length, err := decodeStream(path, data)
	if err != nil {
		return nil, err
	}

	var src io.Reader = stream
	if loop {
		src = audio.NewInfiniteLoop(stream, length)
	}

	player, err := rm.audioContext.NewPlayer(src)
	if err != nil {
		return nil, fmt.Errorf("failed to create audio player for %s: %w", path, err)
	}

	rm.audioCache[path] = player
	return player, nil
}

// LoadSoundEffect loads a one-shot sound effect.
func (rm *ResourceManager) LoadSoundEffect(path string) (*audio.Player, error) {
	return rm.loadPlayer(path, false)
}

// LoadAudio loads looping background music.
func (rm *ResourceManager) LoadAudio(path string) (*audio.Player, error) {
	return rm.loadPlayer(path, true)
}

// LoadSoundByID loads a sound effect by resource ID.
func (rm *ResourceManager) LoadSoundByID(resourceID string) (*audio.Player, error) {
	path, ok := rm.resourceMap[resourceID]
	if !ok {
		return nil, fmt.Errorf("sound resource ID not found: %s", resourceID)
	}
	return rm.LoadSoundEffect(path)
}

// LoadMusicByID loads looping music by resource ID.
func (rm *ResourceManager) LoadMusicByID(resourceID string) (*audio.Player, error) {
	path, ok := rm.resourceMap[resourceID]
	if !ok {
		return nil, fmt.Errorf("music resource ID not found: %s", resourceID)
	}
	return rm.LoadAudio(path)
}

// DefaultFont returns the built-in Go Regular face at the given size.
func (rm *ResourceManager) DefaultFont(size float64) (*text.GoTextFace, error) {
	if face, ok := rm.fontFaceCache[size]; ok {
		return face, nil
	}

	if rm.fontSource == nil {
		source, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
		if err != nil {
			return nil, fmt.Errorf("failed to create default font source: %w", err)
		}
		rm.fontSource = source
	}

	face := &text.GoTextFace{
		Source:    rm.fontSource,
		Size:      size,
		Direction: text.DirectionLeftToRight,
	}
	rm.fontFaceCache[size] = face
	return face, nil
}
