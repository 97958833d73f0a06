package util

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type CSVSimpleTest struct {
	Name   string  `csv:"name"`
	Age    int     `csv:"age"`
	Height float32 `csv:"height"`
	Gender bool    `csv:"gender"`
	Note   string
}

func TestCSVSimple(t *testing.T) {
	data := "name;age;height;gender\nJohn;30;170;false\nJane;25;160;true\nJoe;35;175;true\n"

	rows := NewList[CSVSimpleTest](3)
	for row, err := range ReadCSV[CSVSimpleTest](strings.NewReader(data), ';') {
		require.NoError(t, err)
		rows.Add(row)
	}
	require.Equal(t, 3, rows.Length())
	assert.Equal(t, CSVSimpleTest{Name: "John", Age: 30, Height: 170, Gender: false}, rows[0])
	assert.Equal(t, CSVSimpleTest{Name: "Jane", Age: 25, Height: 160, Gender: true}, rows[1])
	assert.Equal(t, CSVSimpleTest{Name: "Joe", Age: 35, Height: 175, Gender: true}, rows[2])
}

func TestCSVColumnOrder(t *testing.T) {
	data := "gender,height,age,name\ntrue,160.5,25,Jane\n"

	count := 0
	for row, err := range ReadCSV[CSVSimpleTest](strings.NewReader(data), ',') {
		require.NoError(t, err)
		assert.Equal(t, "Jane", row.Name)
		assert.Equal(t, float32(160.5), row.Height)
		count++
	}
	assert.Equal(t, 1, count)
}

func TestCSVError(t *testing.T) {
	data := "name;age;height;gender\nJohn;30;170.5;false\nJane;twenty;160.9;true\nJoe;35;175;true\n"

	count := 0
	var last error
	for _, err := range ReadCSV[CSVSimpleTest](strings.NewReader(data), ';') {
		if err != nil {
			last = err
			continue
		}
		count++
	}
	require.Error(t, last)
	assert.Equal(t, 1, count)

	var csv_err *CSVError
	require.True(t, errors.As(last, &csv_err))
	assert.Equal(t, 3, csv_err.Line)
	assert.Equal(t, "age", csv_err.Column)
}

func TestCSVMissingColumn(t *testing.T) {
	data := "name;age;gender\nJohn;30;false\n"

	for _, err := range ReadCSV[CSVSimpleTest](strings.NewReader(data), ';') {
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrMissingColumn)
	}
}

func TestCSVEmpty(t *testing.T) {
	for _, err := range ReadCSV[CSVSimpleTest](strings.NewReader(""), ';') {
		assert.Error(t, err)
	}
}

func TestJSONRoundTrip(t *testing.T) {
	file := filepath.Join(t.TempDir(), "value.json")
	value := map[string]int{"a": 1, "b": 2}

	require.NoError(t, WriteJSONToFile(value, file))
	read, err := ReadJSONFromFile[map[string]int](file)
	require.NoError(t, err)
	assert.Equal(t, value, read)
}
