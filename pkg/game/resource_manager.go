package game

import (
	"fmt"
	"image"
	"image/color"
	_ "image/png" // Register PNG decoder
	"io"
	"log"
	"os"

	"github.com/decker502/javelin/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// 生成的后备标枪贴图尺寸（贴图默认朝上）
const (
	fallbackSpriteWidth  = 9
	fallbackSpriteHeight = 56
)

// ResourceManager is responsible for loading and caching images.
//
// Images are looked up in the embedded FS first and then on disk, decoded once,
// and reused for every frame afterwards.
//
// Thread Safety Note:
// This implementation is NOT thread-safe; it is only used from the game loop.
type ResourceManager struct {
	imageCache map[string]*ebiten.Image // Cache for loaded images: path -> Image
}

// NewResourceManager creates a new ResourceManager instance.
func NewResourceManager() *ResourceManager {
	return &ResourceManager{
		imageCache: make(map[string]*ebiten.Image),
	}
}

// LoadImage loads an image from the given path and caches it.
//
// Parameters:
//   - path: The resource path (e.g., "assets/images/arrow.png").
//
// Returns:
//   - A pointer to the loaded ebiten.Image, or an error if loading fails.
func (rm *ResourceManager) LoadImage(path string) (*ebiten.Image, error) {
	if cachedImage, exists := rm.imageCache[path]; exists {
		return cachedImage, nil
	}

	file, err := openResource(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image file %s: %w", path, err)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", path, err)
	}

	ebitenImg := ebiten.NewImageFromImage(img)
	rm.imageCache[path] = ebitenImg

	return ebitenImg, nil
}

// GetImage retrieves a previously loaded image from the cache, or nil.
func (rm *ResourceManager) GetImage(path string) *ebiten.Image {
	return rm.imageCache[path]
}

// LoadSprite 加载标枪贴图，失败时使用程序生成的后备贴图
func (rm *ResourceManager) LoadSprite(path string) *ebiten.Image {
	img, err := rm.LoadImage(path)
	if err == nil {
		return img
	}

	log.Printf("[ResourceManager] Warning: %v (using generated sprite)", err)
	img = NewArrowSprite()
	rm.imageCache[path] = img
	return img
}

// openResource 优先从嵌入资源打开，否则从文件系统打开
func openResource(path string) (io.ReadCloser, error) {
	if embedded.IsInitialized() && embedded.Exists(path) {
		return embedded.Open(path)
	}
	return os.Open(path)
}

// NewArrowSprite 生成一支朝上的标枪：木色杆身加金属尖端
func NewArrowSprite() *ebiten.Image {
	img := ebiten.NewImage(fallbackSpriteWidth, fallbackSpriteHeight)

	shaft := color.RGBA{R: 181, G: 136, B: 82, A: 255}
	tip := color.RGBA{R: 210, G: 210, B: 220, A: 255}

	cx := float32(fallbackSpriteWidth) / 2
	vector.DrawFilledRect(img, cx-1, 10, 2, fallbackSpriteHeight-10, shaft, false)
	vector.StrokeLine(img, cx, 0, 0, 12, 1.5, tip, true)
	vector.StrokeLine(img, cx, 0, fallbackSpriteWidth, 12, 1.5, tip, true)
	vector.StrokeLine(img, 0, 12, fallbackSpriteWidth, 12, 1.5, tip, true)

	return img
}
