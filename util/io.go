package util

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"iter"
	"os"
	"reflect"
	"strconv"
	"strings"
)

//*******************************************
// csv
//*******************************************

// Error raised while decoding a csv row into a struct.
type CSVError struct {
	Line   int
	Column string
	Err    error
}

func (self *CSVError) Error() string {
	if self.Column == "" {
		return fmt.Sprintf("csv line %d: %v", self.Line, self.Err)
	}
	return fmt.Sprintf("csv line %d, column %q: %v", self.Line, self.Column, self.Err)
}

func (self *CSVError) Unwrap() error {
	return self.Err
}

var ErrMissingColumn = errors.New("missing column")

// Reads rows from r into values of T.
//
// Fields of T are mapped to columns using the "csv" struct tag, every tagged field must
// have a matching column in the header. Iteration stops after the first error.
func ReadCSV[T any](r io.Reader, delimiter rune) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		var zero T

		reader := csv.NewReader(r)
		reader.Comma = delimiter
		reader.TrimLeadingSpace = true
		header, err := reader.Read()
		if err != nil {
			if err == io.EOF {
				err = errors.New("empty file")
			}
			yield(zero, &CSVError{Line: 1, Err: err})
			return
		}
		name_row_mapping := NewDict[string, int](len(header))
		for i, name := range header {
			name_row_mapping.Set(strings.TrimSpace(name), i)
		}

		typ := reflect.TypeOf(zero)
		num_field := typ.NumField()
		fields := NewList[Triple[int, int, reflect.Kind]](num_field)
		names := NewList[string](num_field)
		for i := 0; i < num_field; i++ {
			field := typ.Field(i)
			tag := field.Tag.Get("csv")
			if tag == "" {
				continue
			}
			if !name_row_mapping.ContainsKey(tag) {
				yield(zero, &CSVError{Line: 1, Column: tag, Err: ErrMissingColumn})
				return
			}
			row := name_row_mapping.Get(tag)
			switch field.Type.Kind() {
			case reflect.Bool:
				fields.Add(MakeTriple(i, row, reflect.Bool))
			case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
				fields.Add(MakeTriple(i, row, reflect.Int))
			case reflect.Float32, reflect.Float64:
				fields.Add(MakeTriple(i, row, reflect.Float64))
			case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
				fields.Add(MakeTriple(i, row, reflect.Uint))
			case reflect.String:
				fields.Add(MakeTriple(i, row, reflect.String))
			default:
				continue
			}
			names.Add(tag)
		}

		line := 1
		for {
			record, err := reader.Read()
			line += 1
			if err == io.EOF {
				return
			}
			if err != nil {
				yield(zero, &CSVError{Line: line, Err: err})
				return
			}
			t := reflect.New(typ).Elem()
			for k, field := range fields {
				index := field.A
				row := field.B
				value := strings.TrimSpace(record[row])
				f := t.Field(index)
				var perr error
				switch field.C {
				case reflect.Bool:
					var v bool
					v, perr = strconv.ParseBool(value)
					f.SetBool(v)
				case reflect.Int:
					var v int64
					v, perr = strconv.ParseInt(value, 10, 64)
					f.SetInt(v)
				case reflect.Uint:
					var v uint64
					v, perr = strconv.ParseUint(value, 10, 64)
					f.SetUint(v)
				case reflect.Float64:
					var v float64
					v, perr = strconv.ParseFloat(value, 64)
					f.SetFloat(v)
				case reflect.String:
					f.SetString(value)
				}
				if perr != nil {
					yield(zero, &CSVError{Line: line, Column: names.Get(k), Err: perr})
					return
				}
			}
			if !yield(t.Interface().(T), nil) {
				return
			}
		}
	}
}

//*******************************************
// json
//*******************************************

func WriteJSONToFile[T any](value T, file string) error {
	data, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(file, data, 0644)
}

func ReadJSONFromFile[T any](file string) (T, error) {
	var value T
	data, err := os.ReadFile(file)
	if err != nil {
		return value, err
	}
	err = json.Unmarshal(data, &value)
	return value, err
}
