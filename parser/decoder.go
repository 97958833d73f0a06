package parser

import (
	"strconv"

	. "github.com/ttpr0/go-closest/util"
)

// Decides which OSM nodes become waypoints and how they are labelled.
type IWaypointDecoder interface {
	IsWaypoint(tags Dict[string, string]) bool
	Label(id int64, tags Dict[string, string]) string
}

// Accepts nodes carrying the tag Key, labelled by its value.
type TagDecoder struct {
	Key string
}

func NewTagDecoder(key string) *TagDecoder {
	if key == "" {
		key = "name"
	}
	return &TagDecoder{Key: key}
}

func (self *TagDecoder) IsWaypoint(tags Dict[string, string]) bool {
	return tags.ContainsKey(self.Key) && tags.Get(self.Key) != ""
}

func (self *TagDecoder) Label(id int64, tags Dict[string, string]) string {
	return _SanitizeLabel(tags.Get(self.Key), id)
}

// Accepts every tagged node, labelled by id.
type TaggedNodeDecoder struct {
}

func (self *TaggedNodeDecoder) IsWaypoint(tags Dict[string, string]) bool {
	return len(tags) > 0
}

func (self *TaggedNodeDecoder) Label(id int64, tags Dict[string, string]) string {
	return "n" + strconv.FormatInt(id, 10)
}
