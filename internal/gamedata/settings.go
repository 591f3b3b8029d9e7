package gamedata

// Settings mirrors settings.json, the built-in game defaults.
type Settings struct {
	Board struct {
		Rows int `json:"rows"`
		Cols int `json:"cols"`
	} `json:"board"`
	Snake struct {
		Length int `json:"length"` // Segments including the head
	} `json:"snake"`
	Apples struct {
		Count int `json:"count"` // Apples kept on the board at all times
	} `json:"apples"`
	Timer struct {
		StartMs int `json:"startMs"` // Tick period before any apple is eaten
		StepMs  int `json:"stepMs"`  // Period reduction per speed level
		Every   int `json:"every"`   // Apples per speed level
		MinMs   int `json:"minMs"`   // Lower bound on the tick period
	} `json:"timer"`
}

// LoadSettings loads the default settings from the embedded settings.json.
func LoadSettings() (Settings, error) {
	return Load[Settings]("settings.json")
}
