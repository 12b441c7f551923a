package program

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/ezrec/wordasm/word"
)

// Format is a serialisation of a word stream.
type Format int

//go:generate go tool stringer -linecomment -type=Format
const (
	FORMAT_HEX = Format(0) // hex
	FORMAT_BIN = Format(1) // bin
	FORMAT_LE  = Format(2) // le
	FORMAT_BE  = Format(3) // be
)

var formats = []Format{FORMAT_HEX, FORMAT_BIN, FORMAT_LE, FORMAT_BE}

// ParseFormat returns the format named name.
func ParseFormat(name string) (format Format, err error) {
	for _, format = range formats {
		if format.String() == name {
			return
		}
	}

	err = ErrFormatUnknown(name)
	return
}

type byteOrder interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

func (format Format) order() byteOrder {
	if format == FORMAT_BE {
		return binary.BigEndian
	}
	return binary.LittleEndian
}

// Write serialises the program's words. Text formats are one word per
// line.
func (prog *Program) Write(w io.Writer, format Format) (err error) {
	width := prog.ISA.Width

	var out []byte
	for _, code := range prog.Words() {
		switch format {
		case FORMAT_HEX:
			out = fmt.Appendf(out, "%0*x\n", (width+3)/4, code.Uint())
		case FORMAT_BIN:
			out = fmt.Appendf(out, "%0*b\n", width, code.Uint())
		case FORMAT_LE, FORMAT_BE:
			out = format.order().AppendUint32(out, uint32(code.Uint()))
		default:
			err = ErrFormatUnknown(format.String())
			return
		}
	}

	_, err = w.Write(out)
	return
}

// ReadWords parses a word stream of the given width. Text formats skip
// blank lines and '#' comments.
func ReadWords(r io.Reader, format Format, width int) (words []word.Vector, err error) {
	switch format {
	case FORMAT_HEX, FORMAT_BIN:
		base, prefix := 16, "0x"
		if format == FORMAT_BIN {
			base, prefix = 2, "0b"
		}
		scanner := bufio.NewScanner(r)
		lineno := 0
		for scanner.Scan() {
			lineno++
			line, _, _ := strings.Cut(scanner.Text(), "#")
			line = strings.TrimSpace(line)
			if len(line) == 0 {
				continue
			}
			line = strings.TrimPrefix(line, prefix)
			var value uint64
			value, err = strconv.ParseUint(line, base, width)
			if err != nil {
				err = ErrParseWord{LineNo: lineno, Text: scanner.Text()}
				return
			}
			words = append(words, word.New(width, value))
		}
		err = scanner.Err()
	case FORMAT_LE, FORMAT_BE:
		var buf [WORD_BYTES]byte
		for {
			_, err = io.ReadFull(r, buf[:])
			if errors.Is(err, io.EOF) {
				err = nil
				break
			}
			if errors.Is(err, io.ErrUnexpectedEOF) {
				err = ErrTruncated
				return
			}
			if err != nil {
				return
			}
			words = append(words, word.New(width, uint64(format.order().Uint32(buf[:]))))
		}
	default:
		err = ErrFormatUnknown(format.String())
	}

	return
}
