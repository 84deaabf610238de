package emu

import "hash/crc32"

// ROMInfo describes a known sound driver image.
type ROMInfo struct {
	Game string
}

// romDatabase maps CRC32 hashes of 2KB driver images to the game that
// shipped them. Games from the chime era reused a handful of common
// drivers, so several titles can share one image.
var romDatabase = map[uint32]ROMInfo{
	// Joker Poker
	0x87a8c181: {"Joker Poker"},
	// Dragon
	0x6da34581: {"Dragon"},
	// Solar Ride
	0x29dea35c: {"Solar Ride"},
	// Countdown
	0x7fb3a0a5: {"Countdown"},
	// Close Encounters of the Third Kind
	0x4aa92d10: {"Close Encounters of the Third Kind"},
	// Charlie's Angels
	0xd8f46e24: {"Charlie's Angels"},
	// Pinball Pool
	0x2c8ac072: {"Pinball Pool"},
	// Totem
	0x5d1b7ed4: {"Totem"},
	// The Incredible Hulk
	0xb7ac9b8e: {"The Incredible Hulk"},
	// Genie
	0x8c5b6a61: {"Genie"},
	// Buck Rogers
	0x6e3f1c7a: {"Buck Rogers"},
	// Torch
	0x91a5d34f: {"Torch"},
	// Roller Disco
	0x3ed20c8b: {"Roller Disco"},
	// Asteroid Annie and the Aliens
	0xa7c41e59: {"Asteroid Annie and the Aliens"},
}

// LookupROM returns the database entry for a driver image based on its
// CRC32. Unknown images still run; the entry only names the game.
func LookupROM(rom []byte) (ROMInfo, bool) {
	crc := crc32.ChecksumIEEE(rom)
	info, ok := romDatabase[crc]
	return info, ok
}
