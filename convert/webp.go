// convert/webp.go

package convert

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
	"github.com/kolesa-team/go-webp/encoder"
	"github.com/kolesa-team/go-webp/webp"
)

// WebPQuality is the fixed lossy quality setting used for every conversion,
// on the codec's 0-100 scale.
const WebPQuality = 85

// ConvertPNGToWebP converts one PNG file to WebP format, creating missing
// destination parent directories as needed.
//
// Every fault - missing source, unreadable image, codec failure, permission
// problem - comes back as an error, never as a panic. One corrupt or locked
// file must never abort the batch, so the caller can simply record the error
// and move on.
func ConvertPNGToWebP(sourcePath, destPath string) (err error) {
	// The codec boundary is the one place a misbehaving decoder could panic;
	// fold that into the error contract too.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("codec failure for %s: %v", sourcePath, r)
		}
	}()

	info, statErr := os.Stat(sourcePath)
	if statErr != nil {
		return fmt.Errorf("source file not accessible: %w", statErr)
	}
	if !info.Mode().IsRegular() {
		return fmt.Errorf("source is not a regular file: %s", sourcePath)
	}

	if err := os.MkdirAll(filepath.Dir(destPath), 0755); err != nil {
		return fmt.Errorf("failed to create destination directory: %w", err)
	}

	img, err := imaging.Open(sourcePath)
	if err != nil {
		return fmt.Errorf("failed to decode %s: %w", sourcePath, err)
	}

	out, err := os.Create(destPath)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", destPath, err)
	}
	defer out.Close()

	options, err := encoder.NewLossyEncoderOptions(encoder.PresetDefault, WebPQuality)
	if err != nil {
		return fmt.Errorf("failed to prepare WebP encoder: %w", err)
	}

	if err := webp.Encode(out, img, options); err != nil {
		return fmt.Errorf("failed to encode %s: %w", destPath, err)
	}

	return nil
}
