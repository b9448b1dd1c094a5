package domain

import "strings"

// Channel tags where a line item runs and which platform reports its
// delivery.
type Channel string

const (
	ChannelProgrammaticDisplay Channel = "programmatic-display"
	ChannelProgrammaticVideo   Channel = "programmatic-video"
	ChannelMeta                Channel = "meta"
	ChannelTikTok              Channel = "tiktok"
)

// Channels lists every channel delivery is fetched for.
var Channels = []Channel{
	ChannelProgrammaticDisplay,
	ChannelProgrammaticVideo,
	ChannelMeta,
	ChannelTikTok,
}

// ParseChannel normalises s and reports whether it names a known channel.
func ParseChannel(s string) (Channel, bool) {
	c := Channel(strings.ToLower(strings.TrimSpace(s)))
	switch c {
	case ChannelProgrammaticDisplay, ChannelProgrammaticVideo, ChannelMeta, ChannelTikTok:
		return c, true
	}
	return "", false
}

// Social reports whether the channel is a social platform. Social rows
// identify their line item by a matched name postfix instead of an id.
func (c Channel) Social() bool {
	return c == ChannelMeta || c == ChannelTikTok
}
