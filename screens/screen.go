package screens

// Screen is one registered screen of the project.
type Screen struct {
	Name       string `json:"name"`
	ID         string `json:"id"`
	Markup     string `json:"markup"`
	GridColumn int    `json:"grid_column"`
	GridRow    int    `json:"grid_row"`
	Root       bool   `json:"root"`
	// Order is the creation index. Edits never change it.
	Order int `json:"order"`
}
