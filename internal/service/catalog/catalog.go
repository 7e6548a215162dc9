package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"math/rand"
	"strings"
	"time"

	"lionscars-service/internal/domain/vehicle"
	xerrors "lionscars-service/internal/pkg/errors"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	dashboardCacheKey = "lionscars:dashboard"
	dashboardCacheTTL = 30 * time.Second

	commissionRate = 0.02
)

// Event describes a catalog mutation pushed to connected consoles.
type Event struct {
	Type      string `json:"type"`
	VehicleID int64  `json:"vehicleId,omitempty"`
}

// Notifier fans catalog events out to interested listeners.
type Notifier interface {
	Notify(Event)
}

// CatalogService orchestrates vehicle CRUD, engagement counters and the
// dashboard aggregation over the repository snapshot. The filter and stats
// helpers in this package stay pure; this type owns the side effects.
type CatalogService struct {
	repo     vehicle.Repository
	cache    *redis.Client
	notifier Notifier
	logger   *zap.Logger
}

// NewCatalogService builds the service. cache and notifier may be nil; the
// service then skips dashboard caching and event publishing.
func NewCatalogService(repo vehicle.Repository, cache *redis.Client, notifier Notifier, logger *zap.Logger) *CatalogService {
	return &CatalogService{
		repo:     repo,
		cache:    cache,
		notifier: notifier,
		logger:   logger,
	}
}

// Snapshot returns the full current vehicle list.
func (s *CatalogService) Snapshot(ctx context.Context) ([]vehicle.Vehicle, error) {
	return s.repo.List(ctx)
}

// Search applies the faceted filter to the current snapshot.
func (s *CatalogService) Search(ctx context.Context, search, seller string, c vehicle.Criteria) ([]vehicle.Vehicle, error) {
	stock, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list vehicles: %w", err)
	}
	return FilterVehicles(stock, search, seller, c), nil
}

// Get retrieves one vehicle by id.
func (s *CatalogService) Get(ctx context.Context, id int64) (*vehicle.Vehicle, error) {
	return s.repo.FindByID(ctx, id)
}

// Create lists a new vehicle: status Disponible, zero metrics, commission
// derived from price and a single seeded price-history entry.
func (s *CatalogService) Create(ctx context.Context, req *vehicle.CreateVehicleRequest) (*vehicle.Vehicle, error) {
	if strings.TrimSpace(req.Brand) == "" || strings.TrimSpace(req.Model) == "" {
		return nil, fmt.Errorf("brand and model are required: %w", xerrors.ErrValidation)
	}
	if req.Price < 0 {
		return nil, fmt.Errorf("price must not be negative: %w", xerrors.ErrValidation)
	}

	v := &vehicle.Vehicle{
		Brand:           strings.TrimSpace(req.Brand),
		Model:           strings.TrimSpace(req.Model),
		Version:         req.Version,
		Year:            req.Year,
		Price:           req.Price,
		Mileage:         req.Mileage,
		Owners:          req.Owners,
		Drivetrain:      req.Drivetrain,
		Transmission:    req.Transmission,
		Displacement:    req.Displacement,
		Fuel:            req.Fuel,
		BodyStyle:       req.BodyStyle,
		Doors:           req.Doors,
		Passengers:      req.Passengers,
		Engine:          req.Engine,
		Sunroof:         req.Sunroof,
		Seats:           req.Seats,
		SaleType:        req.SaleType,
		Seller:          req.Seller,
		Financing:       req.Financing,
		MinDownPayment:  req.MinDownPayment,
		Status:          vehicle.StatusAvailable,
		AirConditioning: req.AirConditioning,
		Tires:           req.Tires,
		Keys:            req.Keys,
		Notes:           req.Notes,
		Plate:           req.Plate,
		Color:           req.Color,
		EstCommission:   estimateCommission(req.Price),
		Images:          req.Images,
		PrimaryImage:    req.PrimaryImage,
		PriceHistory:    SeedHistory(req.Price, time.Now()),
		Hotspots:        req.Hotspots,
	}
	syncPrimaryImage(v)
	if err := validateHotspots(v); err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, v); err != nil {
		s.logger.Error("failed to create vehicle", zap.Error(err))
		return nil, fmt.Errorf("failed to create vehicle: %w", err)
	}

	s.logger.Info("vehicle listed",
		zap.Int64("vehicle_id", v.ID),
		zap.String("brand", v.Brand),
		zap.String("model", v.Model),
	)
	s.afterMutation(ctx, Event{Type: "vehicle.created", VehicleID: v.ID})
	return v, nil
}

// Update applies a partial edit. A price change appends to the price history
// and re-derives the estimated commission.
func (s *CatalogService) Update(ctx context.Context, id int64, req *vehicle.UpdateVehicleRequest) (*vehicle.Vehicle, error) {
	v, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	applyUpdate(v, req)
	if strings.TrimSpace(v.Brand) == "" || strings.TrimSpace(v.Model) == "" {
		return nil, fmt.Errorf("brand and model are required: %w", xerrors.ErrValidation)
	}
	if req.Price != nil {
		if *req.Price < 0 {
			return nil, fmt.Errorf("price must not be negative: %w", xerrors.ErrValidation)
		}
		v.PriceHistory = TrackPrice(v.PriceHistory, *req.Price, time.Now())
		v.EstCommission = estimateCommission(*req.Price)
	}
	syncPrimaryImage(v)
	if err := validateHotspots(v); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, v); err != nil {
		return nil, fmt.Errorf("failed to update vehicle %d: %w", id, err)
	}
	s.afterMutation(ctx, Event{Type: "vehicle.updated", VehicleID: id})
	return v, nil
}

// Delete removes a vehicle. A missing id is ErrNotFound.
func (s *CatalogService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("vehicle removed", zap.Int64("vehicle_id", id))
	s.afterMutation(ctx, Event{Type: "vehicle.deleted", VehicleID: id})
	return nil
}

// AddHotspot finalizes a coordinate pick into a stored annotation.
func (s *CatalogService) AddHotspot(ctx context.Context, id int64, x, y float64, label, detail string, imageIndex int) (*vehicle.Vehicle, error) {
	v, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	h, err := NewHotspot(x, y, label, detail, imageIndex)
	if err != nil {
		return nil, err
	}
	if err := AddHotspot(v, h); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, v); err != nil {
		return nil, fmt.Errorf("failed to store hotspot: %w", err)
	}
	s.afterMutation(ctx, Event{Type: "vehicle.updated", VehicleID: id})
	return v, nil
}

// DeleteHotspot removes an annotation; an already-gone id is not an error.
func (s *CatalogService) DeleteHotspot(ctx context.Context, id int64, hotspotID string) (*vehicle.Vehicle, error) {
	v, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	DeleteHotspot(v, hotspotID)
	if err := s.repo.Update(ctx, v); err != nil {
		return nil, fmt.Errorf("failed to remove hotspot: %w", err)
	}
	s.afterMutation(ctx, Event{Type: "vehicle.updated", VehicleID: id})
	return v, nil
}

// RemoveImage drops an image and reindexes the vehicle's annotations.
func (s *CatalogService) RemoveImage(ctx context.Context, id int64, index int) (*vehicle.Vehicle, error) {
	v, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := RemoveImage(v, index); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, v); err != nil {
		return nil, fmt.Errorf("failed to remove image: %w", err)
	}
	s.afterMutation(ctx, Event{Type: "vehicle.updated", VehicleID: id})
	return v, nil
}

// RecordView bumps the view counter from the public catalog.
func (s *CatalogService) RecordView(ctx context.Context, id int64) error {
	if err := s.repo.IncrementViews(ctx, id); err != nil {
		return err
	}
	s.invalidateDashboard(ctx)
	return nil
}

// RecordLead bumps the interested-lead counter.
func (s *CatalogService) RecordLead(ctx context.Context, id int64) error {
	if err := s.repo.IncrementLeads(ctx, id); err != nil {
		return err
	}
	s.invalidateDashboard(ctx)
	return nil
}

// SimulateEngagement injects randomized views and leads across the whole
// stock. Operational tooling for demos, not part of the pure core.
func (s *CatalogService) SimulateEngagement(ctx context.Context) (int, error) {
	stock, err := s.repo.List(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to list vehicles: %w", err)
	}
	for i := range stock {
		v := &stock[i]
		views := int64(rand.Intn(50) + 5)
		v.Views += views
		v.Leads += int64(rand.Intn(int(views/5) + 1))
		if err := s.repo.Update(ctx, v); err != nil {
			return i, fmt.Errorf("failed to update vehicle %d: %w", v.ID, err)
		}
	}
	s.afterMutation(ctx, Event{Type: "metrics.simulated"})
	return len(stock), nil
}

// ResetMetrics zeroes views, leads and day counters across the stock.
func (s *CatalogService) ResetMetrics(ctx context.Context) error {
	if err := s.repo.ResetMetrics(ctx); err != nil {
		return fmt.Errorf("failed to reset metrics: %w", err)
	}
	s.afterMutation(ctx, Event{Type: "metrics.reset"})
	return nil
}

// Dashboard serves the aggregated console metrics, cached briefly in redis
// and invalidated on every catalog mutation.
func (s *CatalogService) Dashboard(ctx context.Context) (*DashboardStats, error) {
	if s.cache != nil {
		if data, err := s.cache.Get(ctx, dashboardCacheKey).Bytes(); err == nil {
			var cached DashboardStats
			if err := json.Unmarshal(data, &cached); err == nil {
				return &cached, nil
			}
		}
	}

	stock, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list vehicles: %w", err)
	}
	stats := BuildDashboard(stock)

	if s.cache != nil {
		if data, err := json.Marshal(stats); err == nil {
			if err := s.cache.Set(ctx, dashboardCacheKey, data, dashboardCacheTTL).Err(); err != nil {
				s.logger.Warn("failed to cache dashboard stats", zap.Error(err))
			}
		}
	}
	return &stats, nil
}

func (s *CatalogService) afterMutation(ctx context.Context, evt Event) {
	s.invalidateDashboard(ctx)
	if s.notifier != nil {
		s.notifier.Notify(evt)
	}
}

func (s *CatalogService) invalidateDashboard(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Del(ctx, dashboardCacheKey).Err(); err != nil {
		s.logger.Warn("failed to invalidate dashboard cache", zap.Error(err))
	}
}

func estimateCommission(price int64) int64 {
	return int64(math.Round(float64(price) * commissionRate))
}

func validateHotspots(v *vehicle.Vehicle) error {
	imageCount := len(v.DisplayImages())
	for _, h := range v.Hotspots {
		if strings.TrimSpace(h.Label) == "" {
			return fmt.Errorf("hotspot label is required: %w", xerrors.ErrValidation)
		}
		if h.ImageIndex < 0 || h.ImageIndex >= imageCount {
			return fmt.Errorf("hotspot references image %d of %d: %w", h.ImageIndex, imageCount, xerrors.ErrValidation)
		}
	}
	return nil
}

func applyUpdate(v *vehicle.Vehicle, req *vehicle.UpdateVehicleRequest) {
	if req.Brand != nil {
		v.Brand = strings.TrimSpace(*req.Brand)
	}
	if req.Model != nil {
		v.Model = strings.TrimSpace(*req.Model)
	}
	if req.Version != nil {
		v.Version = *req.Version
	}
	if req.Year != nil {
		v.Year = *req.Year
	}
	if req.Price != nil {
		v.Price = *req.Price
	}
	if req.Mileage != nil {
		v.Mileage = *req.Mileage
	}
	if req.Owners != nil {
		v.Owners = *req.Owners
	}
	if req.Drivetrain != nil {
		v.Drivetrain = *req.Drivetrain
	}
	if req.Transmission != nil {
		v.Transmission = *req.Transmission
	}
	if req.Displacement != nil {
		v.Displacement = *req.Displacement
	}
	if req.Fuel != nil {
		v.Fuel = *req.Fuel
	}
	if req.BodyStyle != nil {
		v.BodyStyle = *req.BodyStyle
	}
	if req.Doors != nil {
		v.Doors = *req.Doors
	}
	if req.Passengers != nil {
		v.Passengers = *req.Passengers
	}
	if req.Engine != nil {
		v.Engine = *req.Engine
	}
	if req.Sunroof != nil {
		v.Sunroof = *req.Sunroof
	}
	if req.Seats != nil {
		v.Seats = *req.Seats
	}
	if req.SaleType != nil {
		v.SaleType = *req.SaleType
	}
	if req.Seller != nil {
		v.Seller = *req.Seller
	}
	if req.Financing != nil {
		v.Financing = *req.Financing
	}
	if req.MinDownPayment != nil {
		v.MinDownPayment = *req.MinDownPayment
	}
	if req.Status != nil {
		v.Status = *req.Status
	}
	if req.AirConditioning != nil {
		v.AirConditioning = *req.AirConditioning
	}
	if req.Tires != nil {
		v.Tires = *req.Tires
	}
	if req.Keys != nil {
		v.Keys = *req.Keys
	}
	if req.Notes != nil {
		v.Notes = *req.Notes
	}
	if req.Plate != nil {
		v.Plate = *req.Plate
	}
	if req.Color != nil {
		v.Color = *req.Color
	}
	if req.Images != nil {
		v.Images = *req.Images
	}
	if req.Hotspots != nil {
		v.Hotspots = *req.Hotspots
	}
}
