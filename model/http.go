package model

type ResolveRequestBody struct {
	Key        string `json:"key"`
	Mode       string `json:"mode"`
	RelativeTo string `json:"relative_to"`
	Degrees    []int  `json:"degrees"`
	Octave     *int   `json:"octave,omitempty"`
}

type ResolvedChord struct {
	Roman string   `json:"roman"`
	Name  string   `json:"name"`
	Notes []string `json:"notes"`
	Midi  []uint8  `json:"midi"`
	Key   string   `json:"midi_key"`
}

type ResolveResponse struct {
	Key        string          `json:"key"`
	Mode       string          `json:"mode"`
	RelativeTo string          `json:"relative_to"`
	Chords     []ResolvedChord `json:"chords"`
}

type ScaleResponse struct {
	Key   string   `json:"key"`
	Mode  string   `json:"mode"`
	Notes []string `json:"notes"`
}

type ModesResponse struct {
	Modes []string `json:"modes"`
}

type ErrorResponse struct {
	Error string `json:"detail"`
}
