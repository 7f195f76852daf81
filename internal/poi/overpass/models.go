package overpass

// interpreterResponse is the wire format of an Overpass interpreter reply.
type interpreterResponse struct {
	Elements []element `json:"elements"`
}

// element is one raw record. Nodes carry lat/lon directly; ways and
// relations carry a computed center when the query asks for one.
type element struct {
	Type   string            `json:"type"`
	ID     int64             `json:"id"`
	Lat    *float64          `json:"lat,omitempty"`
	Lon    *float64          `json:"lon,omitempty"`
	Center *center           `json:"center,omitempty"`
	Tags   map[string]string `json:"tags,omitempty"`
}

type center struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}
