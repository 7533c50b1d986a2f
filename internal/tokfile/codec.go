// Implements the binary token-file codec: an 8-byte signature, the token
// payload, and a chart-ordered symbol table section. Ported from the
// reference's ExportTokenFile (Decompose.c) and the symmetric reader it
// implies, using encoding/binary for the fixed-width fields instead of
// the reference's manual byte-shifted header packing.
package tokfile

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"strconv"

	"github.com/gmofishsauce/c23tok/internal/symtab"
	"github.com/gmofishsauce/c23tok/internal/token"
)

// Write serializes toks and the occupied slots of syms to w: signature,
// count, tokens, then one (slot, name) entry per chart position.
func Write(w io.Writer, toks *token.List, syms *symtab.Table) error {
	bw := bufio.NewWriter(w)

	if _, err := bw.WriteString(SignaturePrefix + CurrentRevision); err != nil {
		return err
	}

	all := toks.All()
	var countBuf [4]byte
	binary.LittleEndian.PutUint32(countBuf[:], uint32(len(all)))
	if _, err := bw.Write(countBuf[:]); err != nil {
		return err
	}

	var wordBuf [4]byte
	for _, t := range all {
		binary.LittleEndian.PutUint32(wordBuf[:], uint32(t))
		if _, err := bw.Write(wordBuf[:]); err != nil {
			return err
		}
	}

	for _, slot := range syms.Chart() {
		name, _ := syms.Lookup(slot)
		binary.LittleEndian.PutUint32(wordBuf[:], uint32(slot))
		if _, err := bw.Write(wordBuf[:]); err != nil {
			return err
		}
		if _, err := bw.WriteString(name); err != nil {
			return err
		}
		if err := bw.WriteByte(0); err != nil {
			return err
		}
	}

	return bw.Flush()
}

// Result is the decoded contents of a token file: the raw token stream
// and the symbol table it references.
type Result struct {
	Tokens  *token.List
	Symbols *symtab.Table
	// Warning is set when Yolo allowed an otherwise-fatal format mismatch
	// through; empty if the file was fully well-formed.
	Warning string
}

// Read parses a token file from r. If yolo is true, a bad signature or an
// incompatible revision is downgraded from an error to Result.Warning;
// a malformed symbol index is always fatal regardless of yolo.
func Read(r io.Reader, yolo bool) (*Result, error) {
	br := bufio.NewReader(r)

	sig := make([]byte, 8)
	if _, err := io.ReadFull(br, sig); err != nil {
		return nil, fmt.Errorf("reading signature: %w", err)
	}

	res := &Result{}
	prefix := string(sig[:5])
	revision := string(sig[5:8])
	if prefix != SignaturePrefix {
		if !yolo {
			return nil, fmt.Errorf("malformed token file: bad signature %q", sig)
		}
		res.Warning = fmt.Sprintf("warning: unrecognized signature %q, continuing (yolo)", sig)
	} else if n, err := strconv.Atoi(revision); err != nil {
		if !yolo {
			return nil, fmt.Errorf("malformed token file: bad revision %q", revision)
		}
		res.Warning = fmt.Sprintf("warning: unparseable revision %q, continuing (yolo)", revision)
	} else if cur, _ := strconv.Atoi(CurrentRevision); n > cur {
		if !yolo {
			return nil, fmt.Errorf("unsupported token file revision %q", revision)
		}
		res.Warning = fmt.Sprintf("warning: unsupported revision %q, continuing (yolo)", revision)
	}

	var countBuf [4]byte
	if _, err := io.ReadFull(br, countBuf[:]); err != nil {
		return nil, fmt.Errorf("reading token count: %w", err)
	}
	count := binary.LittleEndian.Uint32(countBuf[:])

	toks := token.NewList()
	var wordBuf [4]byte
	for i := uint32(0); i < count; i++ {
		if _, err := io.ReadFull(br, wordBuf[:]); err != nil {
			return nil, fmt.Errorf("reading token %d: %w", i, err)
		}
		toks.Append(token.Token(binary.LittleEndian.Uint32(wordBuf[:])))
	}

	syms := symtab.New()
	for {
		var slotBuf [4]byte
		_, err := io.ReadFull(br, slotBuf[:])
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading symbol slot: %w", err)
		}
		slot := token.Token(binary.LittleEndian.Uint32(slotBuf[:]))
		if slot < token.ReservedMin || slot > token.IdentifierMax {
			return nil, fmt.Errorf("malformed token file: symbol index %d outside [%d,%d]", slot, token.ReservedMin, token.IdentifierMax)
		}
		name, err := br.ReadString(0)
		if err != nil {
			return nil, fmt.Errorf("reading symbol name for slot %d: %w", slot, err)
		}
		name = name[:len(name)-1] // drop the trailing NUL
		if err := syms.InsertAt(slot, name); err != nil {
			return nil, fmt.Errorf("malformed token file: %w", err)
		}
	}

	res.Tokens = toks
	res.Symbols = syms
	return res, nil
}
