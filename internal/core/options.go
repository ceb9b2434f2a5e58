package core

import (
	"encoding/binary"
	"strings"

	"github.com/scigolib/grads/internal/utils"
)

// Endian is the byte order of the binary data files.
type Endian uint8

// Supported byte orders. Little endian is the descriptor default.
const (
	EndianLittle Endian = iota
	EndianBig
	EndianNative
)

// String returns a short name for the byte order.
func (e Endian) String() string {
	switch e {
	case EndianLittle:
		return "little"
	case EndianBig:
		return "big"
	default:
		return "native"
	}
}

// ByteOrder returns the decoder for e.
func (e Endian) ByteOrder() binary.ByteOrder {
	switch e {
	case EndianLittle:
		return binary.LittleEndian
	case EndianBig:
		return binary.BigEndian
	default:
		return utils.HostOrder()
	}
}

// Options holds the flags of the options statement.
type Options struct {
	// Raw keeps every option token in declaration order.
	Raw        []string
	Sequential bool
	Endian     Endian
	YRev       bool
	Template   bool
}

// Has reports whether the option token was declared.
func (o Options) Has(name string) bool {
	for _, opt := range o.Raw {
		if strings.EqualFold(opt, name) {
			return true
		}
	}
	return false
}

// apply merges the tokens of one options statement. Later statements
// override the byte order of earlier ones.
func (o *Options) apply(tokens []string) {
	for _, tok := range tokens {
		o.Raw = append(o.Raw, tok)

		switch strings.ToLower(tok) {
		case "sequential":
			o.Sequential = true
		case "big_endian":
			o.Endian = EndianBig
		case "little_endian":
			o.Endian = EndianLittle
		case "byteswapped":
			if utils.IsHostLittleEndian() {
				o.Endian = EndianBig
			} else {
				o.Endian = EndianLittle
			}
		case "yrev":
			o.YRev = true
		case "template":
			o.Template = true
		}
	}
}
