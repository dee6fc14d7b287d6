package model

type ScaleResponse struct {
	Name      string   `json:"name"`
	Raw       uint16   `json:"raw"`
	Intervals []string `json:"intervals"`
	Steps     []string `json:"steps"`
	Notes     []int    `json:"notes,omitempty"`
}

type ChordResponse struct {
	Name    string   `json:"name"`
	Raw     uint64   `json:"raw"`
	Degrees []string `json:"degrees"`
	Notes   []int    `json:"notes,omitempty"`
}

// ints rather than uint8 so that notes go over the wire as a json array
// and not as a base64 string
type IdentifyRequestBody struct {
	Notes []int `json:"notes"`
}

type ChordMatch struct {
	Root  uint8  `json:"root"`
	Chord string `json:"chord"`
}

type IdentifyResponse struct {
	Matches []ChordMatch `json:"matches"`
}

type ErrorResponse struct {
	Error string `json:"detail"`
}
