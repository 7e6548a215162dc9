package vehicle

type Status string
type SaleType string

const (
	StatusAvailable Status = "Disponible"
	StatusReserved  Status = "Reservado"
	StatusSold      Status = "Vendido"

	SaleTypeOwnStock  SaleType = "Propio"
	SaleTypeConsigned SaleType = "Consignado"
)

// Vehicle is the catalog's central entity. JSON keys follow the wire format
// the storefront already speaks, so they stay in Spanish.
type Vehicle struct {
	ID      int64  `json:"id"`
	Brand   string `json:"marca"`
	Model   string `json:"modelo"`
	Version string `json:"version,omitempty"`
	Year    int    `json:"ano"`
	Price   int64  `json:"precio"`
	Mileage int64  `json:"km"`
	Owners  int    `json:"duenos"`

	// Specs
	Drivetrain   string `json:"traccion,omitempty"`
	Transmission string `json:"transmision"`
	Displacement string `json:"cilindrada,omitempty"`
	Fuel         string `json:"combustible"`
	BodyStyle    string `json:"carroceria"`
	Doors        int    `json:"puertas"`
	Passengers   int    `json:"pasajeros"`
	Engine       string `json:"motor,omitempty"`
	Sunroof      bool   `json:"techo"`
	Seats        string `json:"asientos"`

	// Sale
	SaleType       SaleType `json:"tipoVenta"`
	Seller         string   `json:"vendedor"`
	Financing      bool     `json:"financiable"`
	MinDownPayment int64    `json:"valorPie"`
	Status         Status   `json:"estado"`

	// Details
	AirConditioning bool   `json:"aire"`
	Tires           string `json:"neumaticos"`
	Keys            int    `json:"llaves"`
	Notes           string `json:"obs"`
	Plate           string `json:"patente,omitempty"`
	Color           string `json:"color"`

	// Metrics
	StockDays     int   `json:"diasStock"`
	Views         int64 `json:"vistas"`
	Leads         int64 `json:"interesados"`
	EstCommission int64 `json:"comisionEstimada"`

	// Media and annotations. Images is the source of truth for display
	// order; PrimaryImage is the legacy single-image field and mirrors
	// Images[0] whenever Images is non-empty.
	Images       []string      `json:"imagenes"`
	PrimaryImage string        `json:"imagen,omitempty"`
	PriceHistory []PriceRecord `json:"precioHistorial"`
	Hotspots     []Hotspot     `json:"hotspots"`
}

// Hotspot is a labeled point overlay on one of a vehicle's images.
// Coordinates are percentages of the image width/height, in [0,100].
type Hotspot struct {
	ID         string  `json:"id"`
	X          float64 `json:"x"`
	Y          float64 `json:"y"`
	Label      string  `json:"label"`
	Detail     string  `json:"detail,omitempty"`
	ImageIndex int     `json:"imageIndex"`
}

// PriceRecord is one entry of a vehicle's append-only price history.
type PriceRecord struct {
	Date  string `json:"date"` // 2006-01-02
	Price int64  `json:"price"`
}

// DisplayImages resolves the image list for display: the ordered sequence
// wins, with the legacy primary image as a single-element fallback.
func (v *Vehicle) DisplayImages() []string {
	if len(v.Images) > 0 {
		return v.Images
	}
	if v.PrimaryImage != "" {
		return []string{v.PrimaryImage}
	}
	return nil
}
