package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"lionscars-service/internal/domain/vehicle"
	xerrors "lionscars-service/internal/pkg/errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
)

type VehicleRepository struct {
	db *pgxpool.Pool
}

func NewVehicleRepository(db *pgxpool.Pool) *VehicleRepository {
	return &VehicleRepository{db: db}
}

const vehicleColumns = `
	id, marca, modelo, version, ano, precio, km, duenos,
	traccion, transmision, cilindrada, combustible, carroceria,
	puertas, pasajeros, motor, techo, asientos,
	tipo_venta, vendedor, financiable, valor_pie, estado,
	aire, neumaticos, llaves, obs, patente, color,
	dias_stock, vistas, interesados, comision_estimada,
	imagenes, imagen, precio_historial, hotspots`

// List returns the full snapshot, newest listing first.
func (r *VehicleRepository) List(ctx context.Context) ([]vehicle.Vehicle, error) {
	query := `SELECT ` + vehicleColumns + ` FROM vehiculos ORDER BY id DESC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list vehicles: %w", err)
	}
	defer rows.Close()

	var out []vehicle.Vehicle
	for rows.Next() {
		v, err := scanVehicle(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read vehicles: %w", err)
	}
	return out, nil
}

// FindByID retrieves one vehicle.
func (r *VehicleRepository) FindByID(ctx context.Context, id int64) (*vehicle.Vehicle, error) {
	query := `SELECT ` + vehicleColumns + ` FROM vehiculos WHERE id = $1`

	v, err := scanVehicle(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, xerrors.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return v, nil
}

// Create inserts a vehicle and assigns its id.
func (r *VehicleRepository) Create(ctx context.Context, v *vehicle.Vehicle) error {
	query := `
		INSERT INTO vehiculos (
			marca, modelo, version, ano, precio, km, duenos,
			traccion, transmision, cilindrada, combustible, carroceria,
			puertas, pasajeros, motor, techo, asientos,
			tipo_venta, vendedor, financiable, valor_pie, estado,
			aire, neumaticos, llaves, obs, patente, color,
			dias_stock, vistas, interesados, comision_estimada,
			imagenes, imagen, precio_historial, hotspots
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7,
			$8, $9, $10, $11, $12,
			$13, $14, $15, $16, $17,
			$18, $19, $20, $21, $22,
			$23, $24, $25, $26, $27, $28,
			$29, $30, $31, $32,
			$33, $34, $35, $36
		)
		RETURNING id
	`

	historyJSON, hotspotsJSON, err := marshalJSONColumns(v)
	if err != nil {
		return err
	}

	err = r.db.QueryRow(
		ctx, query,
		v.Brand, v.Model, v.Version, v.Year, v.Price, v.Mileage, v.Owners,
		v.Drivetrain, v.Transmission, v.Displacement, v.Fuel, v.BodyStyle,
		v.Doors, v.Passengers, v.Engine, v.Sunroof, v.Seats,
		v.SaleType, v.Seller, v.Financing, v.MinDownPayment, v.Status,
		v.AirConditioning, v.Tires, v.Keys, v.Notes, v.Plate, v.Color,
		v.StockDays, v.Views, v.Leads, v.EstCommission,
		pq.StringArray(v.Images), v.PrimaryImage, historyJSON, hotspotsJSON,
	).Scan(&v.ID)
	if err != nil {
		return fmt.Errorf("failed to create vehicle: %w", err)
	}
	return nil
}

// Update persists a full record; missing ids are ErrNotFound.
func (r *VehicleRepository) Update(ctx context.Context, v *vehicle.Vehicle) error {
	query := `
		UPDATE vehiculos SET
			marca = $2, modelo = $3, version = $4, ano = $5, precio = $6, km = $7, duenos = $8,
			traccion = $9, transmision = $10, cilindrada = $11, combustible = $12, carroceria = $13,
			puertas = $14, pasajeros = $15, motor = $16, techo = $17, asientos = $18,
			tipo_venta = $19, vendedor = $20, financiable = $21, valor_pie = $22, estado = $23,
			aire = $24, neumaticos = $25, llaves = $26, obs = $27, patente = $28, color = $29,
			dias_stock = $30, vistas = $31, interesados = $32, comision_estimada = $33,
			imagenes = $34, imagen = $35, precio_historial = $36, hotspots = $37
		WHERE id = $1
	`

	historyJSON, hotspotsJSON, err := marshalJSONColumns(v)
	if err != nil {
		return err
	}

	tag, err := r.db.Exec(
		ctx, query,
		v.ID,
		v.Brand, v.Model, v.Version, v.Year, v.Price, v.Mileage, v.Owners,
		v.Drivetrain, v.Transmission, v.Displacement, v.Fuel, v.BodyStyle,
		v.Doors, v.Passengers, v.Engine, v.Sunroof, v.Seats,
		v.SaleType, v.Seller, v.Financing, v.MinDownPayment, v.Status,
		v.AirConditioning, v.Tires, v.Keys, v.Notes, v.Plate, v.Color,
		v.StockDays, v.Views, v.Leads, v.EstCommission,
		pq.StringArray(v.Images), v.PrimaryImage, historyJSON, hotspotsJSON,
	)
	if err != nil {
		return fmt.Errorf("failed to update vehicle: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return xerrors.ErrNotFound
	}
	return nil
}

// Delete removes a vehicle; missing ids are ErrNotFound.
func (r *VehicleRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM vehiculos WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete vehicle: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return xerrors.ErrNotFound
	}
	return nil
}

// IncrementViews bumps the public view counter.
func (r *VehicleRepository) IncrementViews(ctx context.Context, id int64) error {
	return r.increment(ctx, id, "vistas")
}

// IncrementLeads bumps the interested-lead counter.
func (r *VehicleRepository) IncrementLeads(ctx context.Context, id int64) error {
	return r.increment(ctx, id, "interesados")
}

func (r *VehicleRepository) increment(ctx context.Context, id int64, column string) error {
	query := fmt.Sprintf(`UPDATE vehiculos SET %s = %s + 1 WHERE id = $1`, column, column)
	tag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to increment %s: %w", column, err)
	}
	if tag.RowsAffected() == 0 {
		return xerrors.ErrNotFound
	}
	return nil
}

// ResetMetrics zeroes engagement counters and day counts across the stock.
func (r *VehicleRepository) ResetMetrics(ctx context.Context) error {
	_, err := r.db.Exec(ctx, `UPDATE vehiculos SET vistas = 0, interesados = 0, dias_stock = 0`)
	if err != nil {
		return fmt.Errorf("failed to reset metrics: %w", err)
	}
	return nil
}

func marshalJSONColumns(v *vehicle.Vehicle) ([]byte, []byte, error) {
	history := v.PriceHistory
	if history == nil {
		history = []vehicle.PriceRecord{}
	}
	historyJSON, err := json.Marshal(history)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to marshal price history: %w", err)
	}

	hotspots := v.Hotspots
	if hotspots == nil {
		hotspots = []vehicle.Hotspot{}
	}
	hotspotsJSON, err := json.Marshal(hotspots)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to marshal hotspots: %w", err)
	}
	return historyJSON, hotspotsJSON, nil
}

func scanVehicle(row pgx.Row) (*vehicle.Vehicle, error) {
	var v vehicle.Vehicle
	var images pq.StringArray
	var historyJSON, hotspotsJSON []byte

	err := row.Scan(
		&v.ID, &v.Brand, &v.Model, &v.Version, &v.Year, &v.Price, &v.Mileage, &v.Owners,
		&v.Drivetrain, &v.Transmission, &v.Displacement, &v.Fuel, &v.BodyStyle,
		&v.Doors, &v.Passengers, &v.Engine, &v.Sunroof, &v.Seats,
		&v.SaleType, &v.Seller, &v.Financing, &v.MinDownPayment, &v.Status,
		&v.AirConditioning, &v.Tires, &v.Keys, &v.Notes, &v.Plate, &v.Color,
		&v.StockDays, &v.Views, &v.Leads, &v.EstCommission,
		&images, &v.PrimaryImage, &historyJSON, &hotspotsJSON,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to scan vehicle: %w", err)
	}

	v.Images = []string(images)
	if len(historyJSON) > 0 {
		if err := json.Unmarshal(historyJSON, &v.PriceHistory); err != nil {
			return nil, fmt.Errorf("failed to unmarshal price history: %w", err)
		}
	}
	if len(hotspotsJSON) > 0 {
		if err := json.Unmarshal(hotspotsJSON, &v.Hotspots); err != nil {
			return nil, fmt.Errorf("failed to unmarshal hotspots: %w", err)
		}
	}
	return &v, nil
}
