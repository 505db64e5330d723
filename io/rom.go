// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package io

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ReadRom reads a binary ROM image of big-endian instruction words.
func ReadRom(in io.Reader) (words []uint16, err error) {
	data, err := io.ReadAll(in)
	if err != nil {
		return
	}

	if len(data)%2 != 0 {
		err = ErrRomOdd
		return
	}

	words = make([]uint16, len(data)/2)
	for n := range words {
		words[n] = binary.BigEndian.Uint16(data[n*2:])
	}

	return
}

// WriteRom writes instruction words as a binary ROM image.
func WriteRom(out io.Writer, words []uint16) (err error) {
	data := make([]byte, 0, len(words)*2)
	for _, word := range words {
		data = binary.BigEndian.AppendUint16(data, word)
	}
	_, err = out.Write(data)
	return
}

// ReadListing reads a compiled listing; one hexadecimal word per line.
// Blank lines, and text after a '//', are ignored.
func ReadListing(in io.Reader) (words []uint16, err error) {
	scanner := bufio.NewScanner(in)

	var lineno int
	for scanner.Scan() {
		text := scanner.Text()
		lineno++

		line, _, _ := strings.Cut(text, "//")
		line = strings.TrimSpace(line)
		if len(line) == 0 {
			continue
		}

		var value uint64
		value, err = strconv.ParseUint(line, 16, 16)
		if err != nil {
			err = ErrListingLine{LineNo: lineno, Line: text, Err: ErrListingSyntax}
			return
		}
		words = append(words, uint16(value))
	}

	err = scanner.Err()

	return
}

// WriteListing writes instruction words as a listing; one word per line.
func WriteListing(out io.Writer, words []uint16) (err error) {
	w := bufio.NewWriter(out)
	for _, word := range words {
		_, err = fmt.Fprintf(w, "%04X\n", word)
		if err != nil {
			return
		}
	}
	err = w.Flush()
	return
}
