// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package stego

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"math"
)

const (
	carrierWidth  = 640
	carrierHeight = 360
)

// builtinNames lists every procedural carrier identifier this package
// recognizes. An unrecognized or empty identifier falls back to "aurora",
// matching the original's "default case also produces a gradient" rule.
var builtinNames = map[string]struct{}{
	"aurora": {}, "horizon": {}, "nebula": {},
	"solstice": {}, "midnight": {}, "cinder": {},
}

// resolveCarrier turns a CarrierSource into a concrete RGBA image, either
// by decoding caller-uploaded bytes or generating a built-in.
func resolveCarrier(source CarrierSource) (*image.RGBA, error) {
	if len(source.UploadedData) > 0 {
		return decodeUploaded(source.UploadedMIME, source.UploadedData)
	}
	return generateBuiltin(source.BuiltIn), nil
}

func decodeUploaded(mime string, data []byte) (*image.RGBA, error) {
	if mime != "image/png" {
		return nil, &ErrUnsupportedFormat{MIME: mime}
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, &ErrDecodeCarrier{Detail: err.Error()}
	}
	return toRGBA(img), nil
}

func toRGBA(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok {
		return rgba
	}
	bounds := img.Bounds()
	out := image.NewRGBA(bounds)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			out.Set(x, y, img.At(x, y))
		}
	}
	return out
}

// generateBuiltin produces a deterministic 640x360 gradient carrier for
// one of the six named themes, then applies the same deterministic
// pseudo-noise post-pass the original implementation applies to every
// carrier: r = r +sat ((x*y+13) % 7); g = g -sat ((x+y+11) % 5).
func generateBuiltin(identifier string) *image.RGBA {
	if _, ok := builtinNames[identifier]; !ok {
		identifier = "aurora"
	}

	img := image.NewRGBA(image.Rect(0, 0, carrierWidth, carrierHeight))

	for y := 0; y < carrierHeight; y++ {
		fy := float64(y) / float64(carrierHeight)
		for x := 0; x < carrierWidth; x++ {
			fx := float64(x) / float64(carrierWidth)

			r, g, b := gradientColor(identifier, fx, fy, x, y)

			r = saturatingAdd(r, uint8((x*y+13)%7))
			g = saturatingSub(g, uint8((x+y+11)%5))

			img.SetRGBA(x, y, color.RGBA{R: r, G: g, B: b, A: 255})
		}
	}

	return img
}

// gradientColor computes the base (pre-noise) color for one of the six
// themes as a function of the normalized coordinates fx/fy and the raw
// pixel coordinates x/y (used by the sparkle/ember effects below).
func gradientColor(identifier string, fx, fy float64, x, y int) (r, g, b uint8) {
	switch identifier {
	case "horizon":
		r = scaleChannel(0.85 - 0.35*fy)
		g = scaleChannel(0.55 + 0.25*fx)
		b = scaleChannel(0.35 + 0.45*fy)
	case "nebula":
		r = scaleChannel(0.40 + 0.35*math.Sin(2*math.Pi*fx))
		g = scaleChannel(0.20 + 0.30*math.Cos(2*math.Pi*fy))
		b = scaleChannel(0.60 + 0.30*math.Sin(math.Pi*(fx+fy)))
	case "solstice":
		r = scaleChannel(0.70 + 0.30*fx)
		g = scaleChannel(0.65 + 0.25*(1-fy))
		b = scaleChannel(0.20 + 0.20*fx*fy)
	case "midnight":
		r = scaleChannel(0.05 + 0.10*fy)
		g = scaleChannel(0.05 + 0.10*fx)
		b = scaleChannel(0.20 + 0.35*fy)
		if pseudoRandom(x, y) > 0.985 {
			r, g, b = 255, 255, 255
		}
	case "cinder":
		r = scaleChannel(0.55 + 0.40*(1-fy))
		g = scaleChannel(0.15 + 0.15*fx)
		b = scaleChannel(0.10 * fy)
		if ember := pseudoRandom(x, y); ember > 0.97 {
			r = saturatingAdd(r, uint8((ember-0.97)*8000))
		}
	default: // "aurora"
		r = scaleChannel(0.20 + 0.30*math.Sin(2*math.Pi*fx+fy))
		g = scaleChannel(0.45 + 0.35*math.Cos(2*math.Pi*fy))
		b = scaleChannel(0.55 + 0.30*math.Sin(2*math.Pi*(fx-fy)))
	}
	return r, g, b
}

func scaleChannel(v float64) uint8 {
	if v < 0 {
		v = 0
	}
	if v > 1 {
		v = 1
	}
	return uint8(v * 255)
}

func saturatingAdd(v, delta uint8) uint8 {
	sum := int(v) + int(delta)
	if sum > 255 {
		return 255
	}
	return uint8(sum)
}

func saturatingSub(v, delta uint8) uint8 {
	diff := int(v) - int(delta)
	if diff < 0 {
		return 0
	}
	return uint8(diff)
}

// pseudoRandom is a deterministic integer hash of (x, y) into [0, 1),
// used to scatter sparkle/ember highlights across the midnight and cinder
// carriers without any external RNG dependency.
func pseudoRandom(x, y int) float64 {
	value := uint32(x)*374761393 + uint32(y)*668265263
	value = (value ^ (value >> 13)) * 1274126177
	masked := (value ^ (value >> 16)) & 0x00FFFFFF
	return float64(masked) / float64(0x00FFFFFF)
}
