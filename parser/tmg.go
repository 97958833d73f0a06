package parser

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/ttpr0/go-closest/structs"
)

var tmg_versions = map[string]bool{"1.0": true, "2.0": true}
var tmg_formats = map[string]bool{"simple": true, "collapsed": true, "traveled": true}

// Reads the vertices of a METAL TMG graph file (version 1.0 or 2.0). Edges are ignored.
func LoadTMG(filename string) (structs.PointSet, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return ParseTMG(file, filename)
}

func ParseTMG(r io.Reader, source string) (structs.PointSet, error) {
	tokens := _NewTokenizer(r, source)

	header, err := tokens.Next()
	if err != nil {
		return nil, err
	}
	if header != "TMG" {
		return nil, tokens.Errorf("invalid TMG file header %q, must be \"TMG\"", header)
	}
	version, err := tokens.Next()
	if err != nil {
		return nil, err
	}
	if !tmg_versions[version] {
		return nil, tokens.Errorf("invalid TMG file version %s, must be 1.0 or 2.0", version)
	}
	format, err := tokens.Next()
	if err != nil {
		return nil, err
	}
	if !tmg_formats[format] {
		return nil, tokens.Errorf("invalid TMG file format type %q, must be one of \"simple\", \"collapsed\", or \"traveled\"", format)
	}

	// number of vertices and edges, edges are not needed
	v, err := tokens.NextCount()
	if err != nil {
		return nil, err
	}
	if _, err := tokens.NextCount(); err != nil {
		return nil, err
	}

	points := make(structs.PointSet, 0, min(v, 1<<20))
	for i := 0; i < v; i++ {
		label, err := tokens.Next()
		if err != nil {
			return nil, err
		}
		lat, err := tokens.NextFloat()
		if err != nil {
			return nil, err
		}
		lon, err := tokens.NextFloat()
		if err != nil {
			return nil, err
		}
		points = append(points, structs.NewWaypoint(label, lat, lon))
	}
	return points, nil
}

//*******************************************
// tokenizer
//*******************************************

// Whitespace separated tokens with positions for error reporting.
type _Tokenizer struct {
	scanner *bufio.Scanner
	source  string
	pos     int
}

func _NewTokenizer(r io.Reader, source string) *_Tokenizer {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	scanner.Split(bufio.ScanWords)
	return &_Tokenizer{scanner: scanner, source: source}
}

func (self *_Tokenizer) Errorf(format string, args ...any) *FormatError {
	return &FormatError{Source: self.source, Pos: self.pos, Msg: fmt.Sprintf(format, args...)}
}

func (self *_Tokenizer) Next() (string, error) {
	if !self.scanner.Scan() {
		err := self.scanner.Err()
		if err == nil {
			err = io.ErrUnexpectedEOF
		}
		return "", &FormatError{Source: self.source, Pos: self.pos + 1, Msg: "truncated TMG file contents", Err: err}
	}
	self.pos += 1
	return self.scanner.Text(), nil
}

func (self *_Tokenizer) NextCount() (int, error) {
	token, err := self.Next()
	if err != nil {
		return 0, err
	}
	v, err := strconv.Atoi(token)
	if err != nil {
		return 0, &FormatError{Source: self.source, Pos: self.pos, Msg: "invalid count", Err: err}
	}
	if v < 0 {
		return 0, self.Errorf("negative count %d", v)
	}
	return v, nil
}

func (self *_Tokenizer) NextFloat() (float64, error) {
	token, err := self.Next()
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseFloat(token, 64)
	if err != nil {
		return 0, &FormatError{Source: self.source, Pos: self.pos, Msg: "invalid coordinate", Err: err}
	}
	if !_IsFinite(v) {
		return 0, self.Errorf("invalid coordinate %s", token)
	}
	return v, nil
}
