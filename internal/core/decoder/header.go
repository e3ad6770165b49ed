package decoder

import "firestige.xyz/pitwall/internal/core"

const (
	// HeaderSize is the length of the header common to every packet.
	HeaderSize = 24

	// SupportedFormat is the only protocol year this decoder understands.
	SupportedFormat = 2020

	// TotalCars is the fixed number of car slots in every per-car array.
	TotalCars = 22

	nameLen = 48
)

// Header is the 24-byte preamble present on every packet.
type Header struct {
	PacketFormat            uint16  `json:"packet_format" yaml:"packet_format"`
	GameMajorVersion        uint8   `json:"game_major_version" yaml:"game_major_version"`
	GameMinorVersion        uint8   `json:"game_minor_version" yaml:"game_minor_version"`
	PacketVersion           uint8   `json:"packet_version" yaml:"packet_version"`
	PacketID                uint8   `json:"packet_id" yaml:"packet_id"`
	SessionUID              uint64  `json:"session_uid" yaml:"session_uid"`
	SessionTime             Seconds `json:"session_time" yaml:"session_time"`
	FrameIdentifier         uint32  `json:"frame_identifier" yaml:"frame_identifier"`
	PlayerCarIndex          uint8   `json:"player_car_index" yaml:"player_car_index"`
	SecondaryPlayerCarIndex uint8   `json:"secondary_player_car_index" yaml:"secondary_player_car_index"` // 255 if no second player
}

// DecodeHeader reads the common header. size is the declared datagram
// length and must cover the header before anything is read.
func DecodeHeader(c *Cursor, size int) (Header, error) {
	if size < HeaderSize {
		return Header{}, &core.SizeError{Kind: "header", Declared: size, Expected: HeaderSize}
	}

	r := &reader{c: c}
	h := Header{
		PacketFormat:            r.u16(),
		GameMajorVersion:        r.u8(),
		GameMinorVersion:        r.u8(),
		PacketVersion:           r.u8(),
		PacketID:                r.u8(),
		SessionUID:              r.u64(),
		SessionTime:             r.seconds(),
		FrameIdentifier:         r.u32(),
		PlayerCarIndex:          r.u8(),
		SecondaryPlayerCarIndex: r.u8(),
	}
	if r.err != nil {
		return Header{}, r.err
	}
	return h, nil
}
