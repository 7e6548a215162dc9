package vehicle

// TriState is the three-valued filter the storefront uses for boolean
// attributes: Todos (any), Si (must be true), No (must be false).
type TriState string

const (
	TriAll TriState = "Todos"
	TriYes TriState = "Si"
	TriNo  TriState = "No"
)

// Matches reports whether a boolean field satisfies the tri-state.
// The zero value behaves like TriAll.
func (t TriState) Matches(b bool) bool {
	switch t {
	case TriYes:
		return b
	case TriNo:
		return !b
	default:
		return true
	}
}

// CreateVehicleRequest carries a full vehicle record from the seller console.
type CreateVehicleRequest struct {
	Brand   string `json:"marca" binding:"required"`
	Model   string `json:"modelo" binding:"required"`
	Version string `json:"version"`
	Year    int    `json:"ano" binding:"required,min=1900,max=2100"`
	Price   int64  `json:"precio" binding:"min=0"`
	Mileage int64  `json:"km" binding:"min=0"`
	Owners  int    `json:"duenos"`

	Drivetrain   string `json:"traccion"`
	Transmission string `json:"transmision"`
	Displacement string `json:"cilindrada"`
	Fuel         string `json:"combustible"`
	BodyStyle    string `json:"carroceria"`
	Doors        int    `json:"puertas"`
	Passengers   int    `json:"pasajeros"`
	Engine       string `json:"motor"`
	Sunroof      bool   `json:"techo"`
	Seats        string `json:"asientos"`

	SaleType       SaleType `json:"tipoVenta"`
	Seller         string   `json:"vendedor"`
	Financing      bool     `json:"financiable"`
	MinDownPayment int64    `json:"valorPie"`

	AirConditioning bool   `json:"aire"`
	Tires           string `json:"neumaticos"`
	Keys            int    `json:"llaves"`
	Notes           string `json:"obs"`
	Plate           string `json:"patente"`
	Color           string `json:"color"`

	Images       []string  `json:"imagenes"`
	PrimaryImage string    `json:"imagen"`
	Hotspots     []Hotspot `json:"hotspots"`
}

// UpdateVehicleRequest updates an existing record; nil fields are untouched.
type UpdateVehicleRequest struct {
	Brand   *string `json:"marca"`
	Model   *string `json:"modelo"`
	Version *string `json:"version"`
	Year    *int    `json:"ano" binding:"omitempty,min=1900,max=2100"`
	Price   *int64  `json:"precio" binding:"omitempty,min=0"`
	Mileage *int64  `json:"km" binding:"omitempty,min=0"`
	Owners  *int    `json:"duenos"`

	Drivetrain   *string `json:"traccion"`
	Transmission *string `json:"transmision"`
	Displacement *string `json:"cilindrada"`
	Fuel         *string `json:"combustible"`
	BodyStyle    *string `json:"carroceria"`
	Doors        *int    `json:"puertas"`
	Passengers   *int    `json:"pasajeros"`
	Engine       *string `json:"motor"`
	Sunroof      *bool   `json:"techo"`
	Seats        *string `json:"asientos"`

	SaleType       *SaleType `json:"tipoVenta"`
	Seller         *string   `json:"vendedor"`
	Financing      *bool     `json:"financiable"`
	MinDownPayment *int64    `json:"valorPie"`
	Status         *Status   `json:"estado"`

	AirConditioning *bool   `json:"aire"`
	Tires           *string `json:"neumaticos"`
	Keys            *int    `json:"llaves"`
	Notes           *string `json:"obs"`
	Plate           *string `json:"patente"`
	Color           *string `json:"color"`

	Images   *[]string  `json:"imagenes"`
	Hotspots *[]Hotspot `json:"hotspots"`
}

// Criteria is the structured filter set of the public catalog. Zero values
// (and the storefront's "Todos"/"Todas" selector identities) match everything.
type Criteria struct {
	Brand    string `form:"marca"`
	YearMin  *int   `form:"ano_min"`
	YearMax  *int   `form:"ano_max"`
	PriceMin *int64 `form:"precio_min"`
	PriceMax *int64 `form:"precio_max"`
	KmMin    *int64 `form:"km_min"`
	KmMax    *int64 `form:"km_max"`

	Fuel         string `form:"combustible"`
	Transmission string `form:"transmision"`
	Drivetrain   string `form:"traccion"`
	SaleType     string `form:"tipoVenta"`

	Financing       TriState `form:"financiable"`
	MaxOwners       *int     `form:"duenos_max"`
	AirConditioning TriState `form:"aire"`
	Tires           string   `form:"neumaticos"`
}
