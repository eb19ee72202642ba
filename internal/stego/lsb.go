// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package stego

import (
	"bytes"
	"encoding/base64"
	"encoding/binary"
	"image"
	"image/png"
)

// CarrierSource selects where the carrier image comes from: a named
// built-in (see carriers.go) or caller-uploaded bytes.
type CarrierSource struct {
	BuiltIn string

	UploadedMIME string
	UploadedData []byte
}

// EmbedResult is the outcome of a successful EmbedPayload call.
type EmbedResult struct {
	MIME      string
	ImageData []byte // raw PNG bytes
}

// Capacity returns the number of payload bytes that can be embedded in a
// w*h image: three usable bits (R, G, B) per pixel, eight bits per byte.
func Capacity(w, h int) int {
	return (w * h * 3) / 8
}

// EmbedPayload embeds payload into the carrier named by source and returns
// the resulting PNG image bytes. Capacity is checked against the 4-byte
// length header plus the payload itself.
func EmbedPayload(source CarrierSource, payload []byte) (EmbedResult, error) {
	img, err := resolveCarrier(source)
	if err != nil {
		return EmbedResult{}, err
	}

	if err := embedMessage(payload, img); err != nil {
		return EmbedResult{}, err
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return EmbedResult{}, &ErrEncodeFailure{Detail: err.Error()}
	}

	return EmbedResult{MIME: "image/png", ImageData: buf.Bytes()}, nil
}

// ExtractPayload reverses EmbedPayload: it decodes pngData as an image,
// reads the 4-byte big-endian length header from the first 32 embedded
// bits, then reads that many payload bytes from the bits that follow.
func ExtractPayload(pngData []byte) ([]byte, error) {
	img, err := png.Decode(bytes.NewReader(pngData))
	if err != nil {
		return nil, &ErrDecodeCarrier{Detail: err.Error()}
	}

	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	capacityBits := w * h * 3

	readBit := bitReader(img, bounds)

	var lengthBytes [4]byte
	for i := 0; i < 32; i++ {
		bit, ok := readBit()
		if !ok {
			return nil, &ErrDecodeCarrier{Detail: "carrier too small to hold a length header"}
		}
		setBit(lengthBytes[:], i, bit)
	}
	length := int(binary.BigEndian.Uint32(lengthBytes[:]))

	requiredBits := 32 + length*8
	if requiredBits > capacityBits || length < 0 {
		return nil, &ErrDecodeCarrier{Detail: "embedded length exceeds carrier capacity"}
	}

	payload := make([]byte, length)
	for i := 0; i < length*8; i++ {
		bit, ok := readBit()
		if !ok {
			return nil, &ErrDecodeCarrier{Detail: "carrier truncated before end of payload"}
		}
		setBit(payload, i, bit)
	}

	return payload, nil
}

// embedMessage writes a 4-byte big-endian length header followed by
// payload into img's R, G, B LSBs, row-major, skipping the alpha channel.
// Pixels beyond the payload's bit length are left untouched.
func embedMessage(payload []byte, img *image.RGBA) error {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	capacity := Capacity(w, h)

	var lengthBytes [4]byte
	binary.BigEndian.PutUint32(lengthBytes[:], uint32(len(payload)))

	full := append(lengthBytes[:], payload...)
	if len(full) > capacity {
		return &ErrPayloadTooLarge{Required: len(payload), Capacity: capacity}
	}

	bitIdx := 0
	totalBits := len(full) * 8

	for y := bounds.Min.Y; y < bounds.Max.Y && bitIdx < totalBits; y++ {
		for x := bounds.Min.X; x < bounds.Max.X && bitIdx < totalBits; x++ {
			c := img.RGBAAt(x, y)
			channels := []*uint8{&c.R, &c.G, &c.B}
			for _, ch := range channels {
				if bitIdx >= totalBits {
					break
				}
				bit := getBit(full, bitIdx)
				*ch = (*ch &^ 1) | bit
				bitIdx++
			}
			img.SetRGBA(x, y, c)
		}
	}

	return nil
}

// bitReader returns a closure that yields the LSB of R, G, B for each
// pixel of img in row-major order, matching embedMessage's write order.
func bitReader(img image.Image, bounds image.Rectangle) func() (uint8, bool) {
	x, y := bounds.Min.X, bounds.Min.Y
	channel := 0

	return func() (uint8, bool) {
		if y >= bounds.Max.Y {
			return 0, false
		}

		r, g, b, _ := img.At(x, y).RGBA()
		var bit uint8
		switch channel {
		case 0:
			bit = uint8(r>>8) & 1
		case 1:
			bit = uint8(g>>8) & 1
		case 2:
			bit = uint8(b>>8) & 1
		}

		channel++
		if channel == 3 {
			channel = 0
			x++
			if x >= bounds.Max.X {
				x = bounds.Min.X
				y++
			}
		}

		return bit, true
	}
}

func getBit(b []byte, idx int) uint8 {
	byteIdx := idx / 8
	bitIdx := 7 - uint(idx%8)
	return (b[byteIdx] >> bitIdx) & 1
}

func setBit(b []byte, idx int, bit uint8) {
	byteIdx := idx / 8
	bitIdx := 7 - uint(idx%8)
	if bit == 1 {
		b[byteIdx] |= 1 << bitIdx
	} else {
		b[byteIdx] &^= 1 << bitIdx
	}
}
