package assets

import (
	"errors"
	"fmt"
	"io/fs"
	"path"
	"strings"
)

var (
	// ErrMissingAsset reports a required file or folder that does not exist
	ErrMissingAsset = errors.New("missing asset")
	// ErrThemeFolder reports a theme folder with the wrong number of images
	ErrThemeFolder = errors.New("malformed theme folder")
)

// themeImageCount is the number of PNG files each theme folder must hold
const themeImageCount = 3

// Check verifies that fsys is a complete asset directory: every theme folder
// holds exactly three PNG files and every common image is present.
// It stops at the first problem found.
func Check(fsys fs.FS) error {
	for _, dir := range ThemeDirs() {
		entries, err := fs.ReadDir(fsys, dir)
		if err != nil {
			return fmt.Errorf("%w: theme folder %q: %v", ErrMissingAsset, dir, err)
		}

		pngs := 0
		for _, e := range entries {
			if !e.IsDir() && strings.EqualFold(path.Ext(e.Name()), ".png") {
				pngs++
			}
		}
		if pngs != themeImageCount {
			return fmt.Errorf("%w: %q should contain exactly %d PNG files, found %d",
				ErrThemeFolder, dir, themeImageCount, pngs)
		}
	}

	for _, name := range CommonFiles() {
		info, err := fs.Stat(fsys, name)
		if err != nil || info.IsDir() {
			return fmt.Errorf("%w: image %q", ErrMissingAsset, name)
		}
	}

	return nil
}
