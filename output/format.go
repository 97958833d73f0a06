package output

import (
	"encoding/json"
	"errors"

	"gopkg.in/yaml.v3"
)

type Format byte

const (
	NMP     Format = 0
	GEOJSON Format = 1
	MSGPACK Format = 2
)

func (self Format) String() string {
	switch self {
	case NMP:
		return "nmp"
	case GEOJSON:
		return "geojson"
	case MSGPACK:
		return "msgpack"
	default:
		panic("unknown output format")
	}
}
func (self Format) MarshalJSON() ([]byte, error) {
	return json.Marshal(self.String())
}
func (self *Format) UnmarshalJSON(data []byte) error {
	var typ string
	err := json.Unmarshal(data, &typ)
	if err != nil {
		return err
	}
	*self, err = FormatFromString(typ)
	return err
}
func (self Format) MarshalYAML() (any, error) {
	return self.String(), nil
}
func (self *Format) UnmarshalYAML(value *yaml.Node) error {
	typ, err := FormatFromString(value.Value)
	if err != nil {
		return err
	}
	*self = typ
	return nil
}

func FormatFromString(s string) (Format, error) {
	switch s {
	case "nmp", "":
		return NMP, nil
	case "geojson", "json":
		return GEOJSON, nil
	case "msgpack":
		return MSGPACK, nil
	default:
		return NMP, errors.New("unknown output format " + s)
	}
}
