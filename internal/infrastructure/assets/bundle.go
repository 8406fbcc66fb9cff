package assets

import (
	"fmt"
	_ "image/png"
	"io/fs"
	"path"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/younwookim/hanoi/internal/domain/entity"
)

// Bundle holds every image the renderer needs for one theme
type Bundle struct {
	Theme entity.Theme

	MainMenu  *ebiten.Image
	Options   *ebiten.Image
	GameBoard *ebiten.Image
	Credits   *ebiten.Image

	Buttons         map[entity.ButtonFlag]*ebiten.Image
	ButtonsSelected map[entity.ButtonFlag]*ebiten.Image

	// Indexed by disc size
	Discs         []*ebiten.Image
	DiscsSelected []*ebiten.Image

	Difficulty map[int]*ebiten.Image
	Resolution map[entity.Resolution]*ebiten.Image
	Style      map[entity.Theme]*ebiten.Image

	IllegalMove *ebiten.Image
	Victory     *ebiten.Image

	// Indexed by zero-based slide
	Tutorial []*ebiten.Image
}

// Loader decodes images from an asset directory.
// Images shared between themes are decoded once and reused across Load calls.
type Loader struct {
	fsys  fs.FS
	cache map[string]*ebiten.Image
}

// NewLoader creates a loader reading from fsys
func NewLoader(fsys fs.FS) *Loader {
	return &Loader{
		fsys:  fsys,
		cache: make(map[string]*ebiten.Image),
	}
}

// Load builds the bundle for theme from fsys
func Load(fsys fs.FS, theme entity.Theme) (*Bundle, error) {
	return NewLoader(fsys).Load(theme)
}

// Load builds the bundle for theme. The first unreadable image aborts the load.
func (l *Loader) Load(theme entity.Theme) (*Bundle, error) {
	b := &Bundle{
		Theme:           theme,
		Buttons:         make(map[entity.ButtonFlag]*ebiten.Image, len(buttonPrefixes)),
		ButtonsSelected: make(map[entity.ButtonFlag]*ebiten.Image, len(buttonPrefixes)),
		Difficulty:      make(map[int]*ebiten.Image, len(entity.Difficulties)),
		Resolution:      make(map[entity.Resolution]*ebiten.Image, len(entity.Resolutions)),
		Style:           make(map[entity.Theme]*ebiten.Image, len(entity.Themes)),
	}

	var err error
	load := func(name string) *ebiten.Image {
		if err != nil {
			return nil
		}
		var img *ebiten.Image
		img, err = l.image(name)
		return img
	}

	dir := ThemeDir(theme)
	b.MainMenu = load(path.Join(dir, MenuBackgroundFile))
	b.Options = load(path.Join(dir, OptionsBackgroundFile))
	b.GameBoard = load(path.Join(dir, GameBackgroundFile))
	b.Credits = load(CreditsFile)

	for flag := range buttonPrefixes {
		b.Buttons[flag] = load(ButtonFile(flag, false))
		b.ButtonsSelected[flag] = load(ButtonFile(flag, true))
	}
	for size := 0; size < MaxDiscs; size++ {
		b.Discs = append(b.Discs, load(DiscFile(size, false)))
		b.DiscsSelected = append(b.DiscsSelected, load(DiscFile(size, true)))
	}
	for i, d := range entity.Difficulties {
		b.Difficulty[d] = load(DifficultyFile(i))
	}
	for i, r := range entity.Resolutions {
		b.Resolution[r] = load(ResolutionFile(i))
	}
	for i, t := range entity.Themes {
		b.Style[t] = load(StyleFile(i))
	}

	b.IllegalMove = load(IllegalMoveFile)
	b.Victory = load(VictoryFile)

	for slide := 0; slide < entity.TutorialSlides; slide++ {
		b.Tutorial = append(b.Tutorial, load(TutorialFile(slide)))
	}

	if err != nil {
		return nil, fmt.Errorf("failed to load %s assets: %w", theme, err)
	}
	return b, nil
}

func (l *Loader) image(name string) (*ebiten.Image, error) {
	if img, ok := l.cache[name]; ok {
		return img, nil
	}

	f, err := l.fsys.Open(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMissingAsset, err)
	}
	defer func() { _ = f.Close() }()

	img, _, err := ebitenutil.NewImageFromReader(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", name, err)
	}

	l.cache[name] = img
	return img, nil
}
