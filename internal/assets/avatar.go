package assets

import (
	"bytes"
	"fmt"
	"image"

	"github.com/disintegration/imaging"
	"github.com/gogpu/gg"
)

// PlaceholderName is the source name reported for the generated avatar.
const PlaceholderName = "avatar.png"

// PlaceholderAvatar is shown at startup when no default avatar is configured.
// It is deliberately not square so the initial crop is visible.
func PlaceholderAvatar() image.Image {
	const w, h = 480, 360

	dc := gg.NewContext(w, h)
	defer dc.Close()

	dc.SetFillBrush(gg.NewLinearGradientBrush(0, 0, w, h).
		AddColorStop(0, gg.Hex("#3a6ea5")).
		AddColorStop(1, gg.Hex("#c0d6df")))
	dc.DrawRectangle(0, 0, w, h)
	_ = dc.Fill()

	dc.SetHexColor("#f2e9e4")
	dc.DrawCircle(h/2, h*0.38, h*0.2)
	_ = dc.Fill()
	dc.DrawEllipse(h/2, h*0.95, h*0.34, h*0.3)
	_ = dc.Fill()

	return dc.Image()
}

// PlaceholderPNG encodes PlaceholderAvatar so it can be loaded like a file.
func PlaceholderPNG() ([]byte, error) {
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, PlaceholderAvatar(), imaging.PNG); err != nil {
		return nil, fmt.Errorf("encode placeholder avatar: %w", err)
	}
	return buf.Bytes(), nil
}
