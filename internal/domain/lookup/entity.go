package lookup

// Brand is a selectable make in the console's brand list.
type Brand struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Color is a selectable color; Hex is an optional display swatch.
type Color struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Hex  string `json:"hex,omitempty"`
}

type CreateBrandRequest struct {
	Name string `json:"name" binding:"required"`
}

type CreateColorRequest struct {
	Name string `json:"name" binding:"required"`
	Hex  string `json:"hex"`
}
