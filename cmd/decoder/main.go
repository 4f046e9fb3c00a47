// Command decoder decodes a PNG file through this module's decoder and
// re-encodes it with the standard library's image/png package, as a
// round-trip sanity check: if the output opens cleanly elsewhere, the
// decode was faithful.
package main

import (
	"flag"
	"fmt"
	"image/png"
	"log"
	"os"
	"path/filepath"

	"github.com/pngcore/decoder/internal/decoder"
	"github.com/pngcore/decoder/internal/sink"
)

func main() {
	home, err := os.UserHomeDir()
	if err != nil {
		log.Fatal(err)
	}
	defaultFilePath := filepath.Join(home, "Pictures", "smiley.png")

	var pngPath string
	var outPath string
	var maxWidth, maxHeight int
	flag.StringVar(&pngPath, "png", defaultFilePath, "png file to decode")
	flag.StringVar(&outPath, "out", "image.png", "where to write the re-encoded png")
	flag.IntVar(&maxWidth, "max-width", 0, "reject images wider than this (0 = unlimited)")
	flag.IntVar(&maxHeight, "max-height", 0, "reject images taller than this (0 = unlimited)")
	flag.Parse()

	file, err := os.Open(pngPath)
	if err != nil {
		log.Fatal(err)
	}
	defer file.Close()

	log.Printf("decoding %s\n", pngPath)

	mem := sink.NewMemory(maxWidth, maxHeight)
	if err := decoder.Decode(file, mem); err != nil {
		log.Fatal(err)
	}

	bounds := mem.Img.Bounds()
	log.Printf("decoded %dx%d image\n", bounds.Dx(), bounds.Dy())
	if mem.PaletteLen > 0 {
		log.Printf("palette entries: %d\n", mem.PaletteLen)
	}
	if mem.HasDPI {
		log.Printf("resolution: %.2f x %.2f dpi\n", mem.DPIX, mem.DPIY)
	}
	for _, p := range mem.Properties {
		log.Printf("property: %s=%s\n", p.Name, p.Value)
	}

	out, err := os.Create(outPath)
	if err != nil {
		log.Fatal(err)
	}
	defer out.Close()

	if err := png.Encode(out, mem.Img); err != nil {
		log.Fatal(err)
	}
	fmt.Printf("wrote %s\n", outPath)
}
