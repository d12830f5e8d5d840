package game

import (
	"fmt"
	"image/color"
	"log"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/gonewx/fishtank/pkg/config"
)

// Named image resources used by the tank scene.
const (
	ImageBackground = "BG"
	ImageFish       = "NEMO"
	ImageFood       = "FOOD"
	ImageHeart      = "HEART"
)

// ImageGenerator draws an image resource of the given size.
type ImageGenerator func(width, height int) *ebiten.Image

type imageSpec struct {
	width, height int
	generate      ImageGenerator
}

// ResourceManager is responsible for centralized management of game resources.
// It provides loading and caching of the named images,
// ensuring that resources are created only once and reused throughout the game.
//
// No asset files ship with the tank: every image is drawn procedurally with
// ebiten/vector at the size given by the tank config.
//
// Thread Safety Note:
// This implementation is NOT thread-safe. For the single-threaded game loop,
// no synchronization is needed.
//
// Usage:
//
//	rm := NewResourceManager(config.DefaultTankConfig())
//	img, err := rm.LoadImage(ImageFish)
//	if err != nil {
//	    log.Printf("Failed to load image: %v", err)
//	}
type ResourceManager struct {
	imageCache map[string]*ebiten.Image // Cache for loaded images: name -> Image
	specs      map[string]imageSpec     // Registered generators: name -> spec
}

// NewResourceManager creates a ResourceManager with generators for the four
// tank images registered.
//
// Parameters:
//   - cfg: The tank config providing scene and sprite sizes.
//
// Returns:
//   - A pointer to a newly initialized ResourceManager with an empty cache.
func NewResourceManager(cfg *config.TankConfig) *ResourceManager {
	rm := &ResourceManager{
		imageCache: make(map[string]*ebiten.Image),
		specs:      make(map[string]imageSpec),
	}

	tankHeight := int(float64(cfg.Scene.Height) * cfg.Scene.TankHeightRatio)
	rm.RegisterGenerator(ImageBackground, cfg.Scene.Width, tankHeight, drawBackground)
	rm.RegisterGenerator(ImageFish, cfg.Sprites.Fish.Width, cfg.Sprites.Fish.Height, drawFish)
	rm.RegisterGenerator(ImageFood, cfg.Sprites.Food.Width, cfg.Sprites.Food.Height, drawFood)
	rm.RegisterGenerator(ImageHeart, cfg.Sprites.Heart.Width, cfg.Sprites.Heart.Height, drawHeart)
	return rm
}

// RegisterGenerator registers (or replaces) the generator of a named image.
// A cached image of the same name is dropped.
func (rm *ResourceManager) RegisterGenerator(name string, width, height int, generate ImageGenerator) {
	rm.specs[name] = imageSpec{width: width, height: height, generate: generate}
	delete(rm.imageCache, name)
}

// LoadImage returns the named image, generating and caching it on first use.
//
// Parameters:
//   - name: The resource name, e.g. ImageFish.
//
// Returns:
//   - A pointer to the ebiten.Image, or an error if the name is unknown.
func (rm *ResourceManager) LoadImage(name string) (*ebiten.Image, error) {
	// Check if the image is already cached
	if cachedImage, exists := rm.imageCache[name]; exists {
		return cachedImage, nil
	}

	spec, ok := rm.specs[name]
	if !ok {
		return nil, fmt.Errorf("unknown image resource %q", name)
	}
	if spec.width <= 0 || spec.height <= 0 {
		return nil, fmt.Errorf("image resource %q has invalid size %dx%d", name, spec.width, spec.height)
	}

	img := spec.generate(spec.width, spec.height)
	if img == nil {
		return nil, fmt.Errorf("generator for image resource %q returned nil", name)
	}

	rm.imageCache[name] = img
	return img, nil
}

// GetImage retrieves a previously loaded image from the cache.
// If the image has not been loaded yet, it returns nil.
func (rm *ResourceManager) GetImage(name string) *ebiten.Image {
	return rm.imageCache[name]
}

// LoadAll generates every registered image.
func (rm *ResourceManager) LoadAll() error {
	names := make([]string, 0, len(rm.specs))
	for name := range rm.specs {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if _, err := rm.LoadImage(name); err != nil {
			return fmt.Errorf("failed to load image %s: %w", name, err)
		}
	}
	log.Printf("[ResourceManager] Loaded %d images", len(names))
	return nil
}

// ============================================================================
// 程序生成的精灵
// ============================================================================

var (
	waterColor     = color.RGBA{R: 170, G: 214, B: 240, A: 255}
	waterEdgeColor = color.RGBA{R: 90, G: 150, B: 200, A: 255}
	sandColor      = color.RGBA{R: 230, G: 210, B: 160, A: 255}
	fishColor      = color.RGBA{R: 255, G: 130, B: 30, A: 255}
	stripeColor    = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	eyeColor       = color.RGBA{R: 20, G: 20, B: 20, A: 255}
	foodColor      = color.RGBA{R: 140, G: 90, B: 50, A: 255}
	heartColor     = color.RGBA{R: 230, G: 40, B: 80, A: 255}
)

func drawBackground(width, height int) *ebiten.Image {
	img := ebiten.NewImage(width, height)
	img.Fill(waterColor)

	w, h := float32(width), float32(height)
	sand := h * 0.08
	vector.DrawFilledRect(img, 0, h-sand, w, sand, sandColor, false)
	vector.StrokeRect(img, 1, 1, w-2, h-2, 2, waterEdgeColor, false)
	return img
}

func drawFish(width, height int) *ebiten.Image {
	img := ebiten.NewImage(width, height)
	w, h := float32(width), float32(height)

	// 尾巴：从身体后端向左扇形展开的线段
	tailX := w * 0.25
	for i := float32(0); i <= h*0.8; i++ {
		vector.StrokeLine(img, tailX, h/2, 0, h*0.1+i, 1, fishColor, true)
	}

	// 身体：沿水平轴排列的圆近似椭圆
	bodyR := h * 0.45
	for cx := w * 0.35; cx <= w-bodyR; cx += 1 {
		vector.DrawFilledCircle(img, cx, h/2, bodyR, fishColor, true)
	}

	vector.StrokeLine(img, w*0.55, h*0.1, w*0.55, h*0.9, w*0.06, stripeColor, true)
	vector.DrawFilledCircle(img, w*0.82, h*0.4, h*0.08, eyeColor, true)
	return img
}

func drawFood(width, height int) *ebiten.Image {
	img := ebiten.NewImage(width, height)
	r := float32(min(width, height)) / 2
	vector.DrawFilledCircle(img, float32(width)/2, float32(height)/2, r, foodColor, true)
	return img
}

func drawHeart(width, height int) *ebiten.Image {
	img := ebiten.NewImage(width, height)
	w, h := float32(width), float32(height)

	// 上半部分两个圆
	r := w / 4
	vector.DrawFilledCircle(img, r, r, r, heartColor, true)
	vector.DrawFilledCircle(img, w-r, r, r, heartColor, true)

	// 下半部分逐行收窄到底部尖端
	top := r
	for y := top; y < h; y++ {
		t := (y - top) / (h - top)
		half := (w / 2) * (1 - t)
		vector.DrawFilledRect(img, w/2-half, y, half*2, 1, heartColor, true)
	}
	return img
}
