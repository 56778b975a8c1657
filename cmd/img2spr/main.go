// Command img2spr converts an image into a .spr sprite file using the
// 16-color console palette and the shaded block glyphs.
//
// Usage examples:
//
//	# 40 columns wide, height from the image aspect
//	img2spr -w 40 ship.png
//
//	# Fixed size, explicit output, ANSI preview on stdout
//	img2spr -w 32 -h 16 -o assets/ship.spr -preview ship.webp
package main

import (
	"bufio"
	"flag"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"

	"github.com/lixenwraith/conengine/constant"
	"github.com/lixenwraith/conengine/sprite"
)

func main() {
	var (
		width   int
		height  int
		output  string
		preview bool
	)

	flag.IntVar(&width, "w", 80, "Output width in cells")
	flag.IntVar(&height, "h", 0, "Output height in cells (0 = keep aspect)")
	flag.StringVar(&output, "o", "", "Output .spr path (default: input name with .spr)")
	flag.BoolVar(&preview, "preview", false, "Print an ANSI preview to stdout")
	flag.Parse()

	if flag.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Usage: img2spr [options] <image>")
		fmt.Fprintln(os.Stderr, "\nFormats: png, jpeg, gif, bmp, webp")
		fmt.Fprintln(os.Stderr, "\nOptions:")
		flag.PrintDefaults()
		os.Exit(1)
	}

	inPath := flag.Arg(0)
	img, err := loadImage(inPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading image: %v\n", err)
		os.Exit(1)
	}

	bounds := img.Bounds()
	fmt.Fprintf(os.Stderr, "Image: %s (%dx%d)\n", inPath, bounds.Dx(), bounds.Dy())

	w, h := CellSize(bounds.Dx(), bounds.Dy(), width)
	if height > 0 {
		h = height
	}
	if w <= 0 || h <= 0 {
		fmt.Fprintf(os.Stderr, "Invalid output size %dx%d\n", w, h)
		os.Exit(1)
	}

	spr := Convert(img, w, h, NewMatcher())
	fmt.Fprintf(os.Stderr, "Output: %dx%d cells\n", spr.Width(), spr.Height())

	if output == "" {
		output = strings.TrimSuffix(inPath, filepath.Ext(inPath)) + ".spr"
	}
	if err := spr.Save(output); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing sprite: %v\n", err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stderr, "Wrote %s\n", output)

	if preview {
		out := bufio.NewWriter(os.Stdout)
		writeANSI(out, spr)
		out.Flush()
	}
}

func loadImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	return img, err
}

// ansiBase maps console color order to ANSI color numbers
var ansiBase = [8]int{0, 4, 2, 6, 1, 5, 3, 7}

func ansiFg(idx uint8) int {
	if idx >= 8 {
		return 90 + ansiBase[idx-8]
	}
	return 30 + ansiBase[idx]
}

func ansiBg(idx uint8) int {
	if idx >= 8 {
		return 100 + ansiBase[idx-8]
	}
	return 40 + ansiBase[idx]
}

// writeANSI renders the sprite with 16-color SGR sequences
func writeANSI(w io.Writer, spr *sprite.Sprite) {
	for y := 0; y < spr.Height(); y++ {
		last := -1
		for x := 0; x < spr.Width(); x++ {
			glyph, attr := spr.Glyph(x, y), spr.Color(x, y)
			if glyph == constant.PixelEmpty {
				if last != -1 {
					fmt.Fprint(w, "\x1b[0m")
					last = -1
				}
				fmt.Fprint(w, " ")
				continue
			}
			if int(attr) != last {
				fmt.Fprintf(w, "\x1b[%d;%dm", ansiFg(constant.Foreground(attr)), ansiBg(constant.Background(attr)))
				last = int(attr)
			}
			fmt.Fprintf(w, "%c", rune(glyph))
		}
		fmt.Fprint(w, "\x1b[0m\n")
	}
}
