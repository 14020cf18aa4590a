// Package models defines data structures for column signal extraction and plotting.
package models

import "image/color"

// Channel selects one color component of a pixel.
type Channel string

const (
	// ChannelRed selects the red component.
	ChannelRed Channel = "r"
	// ChannelGreen selects the green component.
	ChannelGreen Channel = "g"
)

// Known reports whether the channel selects a component.
// Unknown channels are accepted everywhere and contribute no samples.
func (c Channel) Known() bool {
	return c == ChannelRed || c == ChannelGreen
}

// Value returns the selected 8-bit component of px.
// The second result is false for unknown channels.
func (c Channel) Value(px color.NRGBA) (uint8, bool) {
	switch c {
	case ChannelRed:
		return px.R, true
	case ChannelGreen:
		return px.G, true
	default:
		return 0, false
	}
}
