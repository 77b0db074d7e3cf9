package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"strings"

	"platewatch/pkg/ocr"

	"gocv.io/x/gocv"
)

// Dumps the preprocessed binary image next to the input and prints the
// extraction result. Useful when tuning threshold or CLAHE parameters
// against a crop that refuses to read.
func main() {
	flag.Parse()
	if flag.NArg() != 1 {
		log.Fatalf("usage: cmd_debug_preproc <image>")
	}
	in := flag.Arg(0)

	img := gocv.IMRead(in, gocv.IMReadColor)
	if img.Empty() {
		log.Fatalf("read %s", in)
	}
	defer img.Close()

	bin := ocr.Preprocess(img, ocr.DefaultPreprocessConfig())
	defer bin.Close()

	out := strings.TrimSuffix(in, ".jpg") + ".preproc.png"
	if ok := gocv.IMWrite(out, bin); !ok {
		log.Fatalf("write %s", out)
	}
	log.Printf("preprocessed image written to %s", out)

	plate, err := ocr.ExtractPlate(bin, ocr.DefaultExtractorConfig())
	if errors.Is(err, ocr.ErrNoPlate) {
		fmt.Println("no plate pattern detected")
		return
	}
	if err != nil {
		log.Fatalf("ocr: %v", err)
	}
	fmt.Printf("plate=%s\n", plate)
}
