package revealdown

import (
	"net/http"
	"os"
	"path/filepath"

	"github.com/gobuffalo/packr/v2"
)

// revealDir is the directory the default header and footer load reveal.js
// from, relative to the page.
const revealDir = "reveal.js"

var (
	cssBox    = packr.New("css", "./dist_temp/reveal.js/css")
	libBox    = packr.New("lib", "./dist_temp/reveal.js/lib")
	jsBox     = packr.New("js", "./dist_temp/reveal.js/js")
	pluginBox = packr.New("plugin", "./dist_temp/reveal.js/plugin")

	revealBoxes = []*packr.Box{cssBox, libBox, jsBox, pluginBox}
)

// EmitRevealJS writes the bundled reveal.js distribution to
// destDir/reveal.js.
func EmitRevealJS(destDir string) error {
	for _, b := range revealBoxes {
		destPath := filepath.Join(destDir, revealDir, b.Name)
		if err := os.MkdirAll(destPath, 0777); err != nil {
			return err
		}
		for _, f := range b.List() {
			data, err := b.Find(f)
			if err != nil {
				return err
			}
			fPath := filepath.Join(destPath, f)
			if err := os.MkdirAll(filepath.Dir(fPath), 0777); err != nil {
				return err
			}
			if err := os.WriteFile(fPath, data, 0666); err != nil {
				return err
			}
		}
	}
	return nil
}

// ServeRevealJS returns a mux serving the bundled reveal.js below /reveal.js/.
func ServeRevealJS() *http.ServeMux {
	mux := http.NewServeMux()
	for _, b := range revealBoxes {
		prefix := "/" + revealDir + "/" + b.Name + "/"
		mux.Handle(prefix, http.StripPrefix(prefix, http.FileServer(b)))
	}
	return mux
}
