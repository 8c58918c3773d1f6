package display

import (
	"github.com/filetug/fx/pkg/browser"
	"github.com/gdamore/tcell/v2"
)

// ColorNames names one color per drawing role.
// Names are anything tcell.GetColor understands: W3C names or #rrggbb.
type ColorNames struct {
	Background   string
	Text         string
	FileType     string
	DirType      string
	Debug        string
	Hover        string
	NoPermission string
	Status       string
}

var DefaultColorNames = ColorNames{
	Background:   "black",
	Text:         "slateblue",
	FileType:     "slategray",
	DirType:      "yellow",
	Debug:        "red",
	Hover:        "#c7c7c7",
	NoPermission: "red",
	Status:       "green",
}

// AllocatePalette resolves names to colors.
// A name tcell does not know falls back to the matching browser.DefaultPalette color.
func AllocatePalette(names ColorNames) browser.Palette {
	fallback := browser.DefaultPalette
	return browser.Palette{
		Background:   resolveColor(names.Background, fallback.Background),
		Text:         resolveColor(names.Text, fallback.Text),
		FileType:     resolveColor(names.FileType, fallback.FileType),
		DirType:      resolveColor(names.DirType, fallback.DirType),
		Debug:        resolveColor(names.Debug, fallback.Debug),
		Hover:        resolveColor(names.Hover, fallback.Hover),
		NoPermission: resolveColor(names.NoPermission, fallback.NoPermission),
		Status:       resolveColor(names.Status, fallback.Status),
	}
}

func resolveColor(name string, fallback tcell.Color) tcell.Color {
	if name == "" {
		return fallback
	}
	if c := tcell.GetColor(name); c != tcell.ColorDefault {
		return c
	}
	return fallback
}
