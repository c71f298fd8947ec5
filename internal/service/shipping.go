package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strconv"
	"strings"

	"github.com/SergeyBogomolovv/checkout-addons/internal/entities"
	"github.com/SergeyBogomolovv/checkout-addons/internal/trace"
	"github.com/SergeyBogomolovv/checkout-addons/pkg/trm"
	"github.com/SergeyBogomolovv/checkout-addons/pkg/utils"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

type OrderRepo interface {
	GetOrderByID(ctx context.Context, orderID string) (entities.Order, error)
	// SaveOrder идемпотентна, используется ON CONFLICT DO NOTHING
	SaveOrder(ctx context.Context, o entities.Order) error

	GetOrderMeta(ctx context.Context, orderID string) (entities.OrderMeta, error)
	SetOrderMeta(ctx context.Context, orderID string, meta entities.OrderMeta) error
}

type BranchRepo interface {
	Directory(ctx context.Context, key entities.DirectoryKey) (entities.Directory, error)
	FindBranch(ctx context.Context, key entities.DirectoryKey, code string) (entities.Branch, error)
}

// RateFilter may adjust the rates after the free shipping policy was applied.
// original holds the rates as they came from the host.
type RateFilter func(ctx context.Context, rates, original []entities.Rate, pkg entities.Package) []entities.Rate

type ShippingOption func(s *ShippingService)

func WithRateFilters(filters ...RateFilter) ShippingOption {
	return func(s *ShippingService) {
		s.filters = append(s.filters, filters...)
	}
}

// WithAssetsURL sets the base URL of the bundled icons.
func WithAssetsURL(url string) ShippingOption {
	return func(s *ShippingService) {
		s.assetsURL = strings.TrimSuffix(url, "/")
	}
}

// ShippingService adjusts rates and keeps the pickup point chosen at checkout.
type ShippingService struct {
	logger    *slog.Logger
	settings  Settings
	txManager trm.Manager
	orders    OrderRepo
	branches  BranchRepo

	filters   []RateFilter
	assetsURL string
}

func NewShippingService(
	logger *slog.Logger,
	settings Settings,
	txManager trm.Manager,
	orders OrderRepo,
	branches BranchRepo,
	opts ...ShippingOption,
) *ShippingService {
	s := &ShippingService{
		logger:    logger.With(slog.String("service", "shipping")),
		settings:  settings,
		txManager: txManager,
		orders:    orders,
		branches:  branches,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// AdjustRates applies the free shipping policy. The input slice is not modified.
func (s *ShippingService) AdjustRates(ctx context.Context, rates []entities.Rate, pkg entities.Package) ([]entities.Rate, error) {
	ctx, span := trace.Start(ctx, "ShippingService.AdjustRates", attribute.Int("rates", len(rates)))
	defer span.End()

	settings, err := s.settings.Shipping(ctx)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return rates, fmt.Errorf("failed to load shipping settings: %w", err)
	}

	policy := settings.FreeShipping
	span.SetAttributes(attribute.String("policy", string(policy)))
	if policy == entities.FreeShippingUnset || policy == entities.FreeShippingDefault {
		return rates, nil
	}

	original := cloneRates(rates)
	adjusted := cloneRates(rates)

	free := slices.IndexFunc(adjusted, func(r entities.Rate) bool {
		return r.MethodID == entities.FreeShippingMethodID
	})
	if free >= 0 {
		for i, r := range adjusted {
			switch {
			case policy == entities.FreeShippingAll:
				adjusted[i] = r.Zeroed()
			case policy == entities.FreeShippingCarrier && r.Method().IsPickupCarrier():
				adjusted[i] = r.Zeroed()
			}
		}
		s.logger.DebugContext(ctx, "free shipping available",
			slog.String("policy", string(policy)),
			slog.String("free_rate", adjusted[free].ID),
		)
		adjusted = slices.Delete(adjusted, free, free+1)
	}

	for _, filter := range s.filters {
		adjusted = filter(ctx, adjusted, original, pkg)
	}
	return adjusted, nil
}

// ResolveBranches returns the branch directory for a customer country and
// shipping method.
func (s *ShippingService) ResolveBranches(ctx context.Context, country string, method entities.ShippingMethod) (entities.Directory, error) {
	key := entities.DirectoryKeyFor(country, method)

	var dir entities.Directory
	fn := func() error {
		var err error
		dir, err = s.branches.Directory(ctx, key)
		return err
	}
	if err := utils.Retry(ctx, utils.DefaultRetry, fn); err != nil {
		return nil, fmt.Errorf("failed to load %s/%s branches: %w", key.Country, key.Variant, err)
	}
	return dir, nil
}

// PickupSelector describes the checkout row shown for the chosen method.
func (s *ShippingService) PickupSelector(ctx context.Context, country, chosen string) (entities.PickupSelector, error) {
	method := entities.ParseShippingMethod(chosen)
	country = strings.ToUpper(strings.TrimSpace(country))

	sel := entities.PickupSelector{
		Mode:        entities.SelectorNone,
		Method:      method,
		Placeholder: entities.PlaceholderBranch,
	}
	if !method.IsPickupCarrier() {
		return sel, nil
	}

	settings, err := s.settings.Shipping(ctx)
	if err != nil {
		return sel, fmt.Errorf("failed to load shipping settings: %w", err)
	}

	switch method.Submethod {
	case entities.SubmethodPickupPoints:
		sel.Mode = entities.SelectorWidget
		sel.APIKey = settings.APIKey
		sel.WidgetCountry, sel.WidgetLanguage = entities.WidgetLocale(country)
		sel.IconURL = s.pickupIcon(settings, country)

	case entities.SubmethodPaczkomaty, entities.SubmethodNovaPosta:
		dir, err := s.ResolveBranches(ctx, country, method)
		if err != nil {
			return sel, err
		}
		sel.Mode = entities.SelectorList
		sel.Branches = dir
		if method.Submethod == entities.SubmethodPaczkomaty {
			sel.IconURL = s.asset("paczkomaty.png")
		}

	default:
		id, ok := entities.ServiceIDFor(method.Submethod)
		if !ok {
			return sel, nil
		}
		sel.Mode = entities.SelectorService
		sel.ServiceID = id
		if country == "CZ" {
			sel.AddressService = s.czechAddressService(settings, method.Submethod, id)
		}
	}
	return sel, nil
}

// ValidateBranchSelection checks the branch submitted with the checkout form.
func (s *ShippingService) ValidateBranchSelection(chosen, submitted string, needsShipping bool) error {
	if !needsShipping {
		return nil
	}
	if !entities.ParseShippingMethod(chosen).IsPickupCarrier() {
		return nil
	}

	switch submitted {
	case "":
		return entities.ErrMissingBranch
	case entities.PlaceholderBranch:
		return entities.ErrPlaceholderBranch
	}
	return nil
}

// PersistBranchSelection stores the chosen branch on a finalized order. The cart
// weight is stored for every order that reports it.
func (s *ShippingService) PersistBranchSelection(ctx context.Context, checkout entities.Checkout) error {
	ctx, span := trace.Start(ctx, "ShippingService.PersistBranchSelection",
		attribute.String("order_id", checkout.Order.OrderID),
		attribute.String("method", checkout.ChosenMethod),
	)
	defer span.End()

	method := entities.ParseShippingMethod(checkout.ChosenMethod)
	selected := method.IsPickupCarrier() && checkout.Branch != ""

	meta := make(entities.OrderMeta, 3)
	if checkout.HasCartWeight {
		meta[entities.MetaCartWeight] = strconv.FormatFloat(checkout.CartWeight, 'f', -1, 64)
	}
	if selected {
		meta[entities.MetaBranchID] = checkout.Branch
		meta[entities.MetaShippingMethod] = checkout.ChosenMethod
	}
	if len(meta) == 0 {
		return nil
	}

	fn := func() error {
		return s.txManager.Do(ctx, func(ctx context.Context) error {
			if err := s.orders.SaveOrder(ctx, checkout.Order); err != nil {
				return fmt.Errorf("failed to save order: %w", err)
			}
			if err := s.orders.SetOrderMeta(ctx, checkout.Order.OrderID, meta); err != nil {
				return fmt.Errorf("failed to save order meta: %w", err)
			}
			return nil
		})
	}
	if err := utils.Retry(ctx, utils.DefaultRetry, fn); err != nil {
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	s.logger.DebugContext(ctx, "checkout stored",
		slog.String("order_id", checkout.Order.OrderID),
		slog.Bool("branch_selected", selected),
	)
	return nil
}

func (s *ShippingService) SetTrackingBarcode(ctx context.Context, orderID, barcode string) error {
	fn := func() error {
		return s.orders.SetOrderMeta(ctx, orderID, entities.OrderMeta{entities.MetaBarcode: barcode})
	}
	if err := utils.Retry(ctx, utils.DefaultRetry, fn); err != nil {
		return fmt.Errorf("failed to save barcode: %w", err)
	}
	return nil
}

// BranchInfo collects what order pages and emails show about the pickup point.
func (s *ShippingService) BranchInfo(ctx context.Context, orderID string) (entities.BranchInfo, error) {
	ctx, span := trace.Start(ctx, "ShippingService.BranchInfo", attribute.String("order_id", orderID))
	defer span.End()

	var meta entities.OrderMeta
	fn := func() error {
		var err error
		meta, err = s.orders.GetOrderMeta(ctx, orderID)
		return err
	}
	if err := utils.Retry(ctx, utils.DefaultRetry, fn); err != nil {
		span.SetStatus(codes.Error, err.Error())
		return entities.BranchInfo{}, fmt.Errorf("failed to get order meta: %w", err)
	}

	code := meta[entities.MetaBranchID]
	if code == "" {
		return entities.BranchInfo{}, entities.ErrNoBranchInfo
	}

	barcode := meta[entities.MetaBarcode]
	info := entities.BranchInfo{
		OrderID:        orderID,
		ShippingMethod: meta[entities.MetaShippingMethod],
		Barcode:        barcode,
		TrackingURL:    entities.TrackingURL(barcode),
	}

	if entities.IsServiceID(code) {
		if barcode == "" {
			return entities.BranchInfo{}, entities.ErrNoBranchInfo
		}
		info.DirectDelivery = true
		return info, nil
	}

	country := entities.DefaultDirectoryKey.Country
	order, err := s.orders.GetOrderByID(ctx, orderID)
	switch {
	case err == nil:
		if c := order.DeliveryCountry(); c != "" {
			country = c
		}
	case errors.Is(err, entities.ErrOrderNotFound):
		s.logger.DebugContext(ctx, "no order snapshot, using default directory", slog.String("order_id", orderID))
	default:
		span.SetStatus(codes.Error, err.Error())
		return entities.BranchInfo{}, fmt.Errorf("failed to get order: %w", err)
	}

	key := entities.DirectoryKeyFor(country, entities.ParseShippingMethod(info.ShippingMethod))
	branch, err := s.branches.FindBranch(ctx, key, code)
	if errors.Is(err, entities.ErrBranchNotFound) {
		s.logger.WarnContext(ctx, "stored branch is missing from directory",
			slog.String("order_id", orderID),
			slog.String("branch", code),
			slog.String("directory", key.Country+"/"+string(key.Variant)),
		)
		branch = entities.Branch{Code: code}
	} else if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return entities.BranchInfo{}, fmt.Errorf("failed to find branch: %w", err)
	}

	info.Branch = &branch
	return info, nil
}

func (s *ShippingService) pickupIcon(settings entities.ShippingSettings, country string) string {
	var icon string
	switch country {
	case "AT", "BL":
	case "SK", "PL", "HU", "RO", "UA":
		icon = settings.Icon(country)
	default:
		icon = settings.Icon("CZ")
	}
	if icon == "" {
		icon = s.asset("zasilkovna.png")
	}
	return icon
}

func (s *ShippingService) czechAddressService(settings entities.ShippingSettings, submethod, id string) *entities.AddressService {
	var fallback string
	switch submethod {
	case "ceska-posta-cz":
		fallback = "cp-balik-do-ruky.png"
	case "doruceni-na-adresu-cz":
		fallback = "cp.jpg"
	default:
		return nil
	}

	icon := settings.ServiceIcons[submethod]
	if icon == "" {
		icon = s.asset(fallback)
	}
	return &entities.AddressService{
		ServiceID: id,
		Label:     settings.ServiceLabels[id],
		IconURL:   icon,
	}
}

func (s *ShippingService) asset(name string) string {
	return s.assetsURL + "/images/" + name
}

func cloneRates(rates []entities.Rate) []entities.Rate {
	out := make([]entities.Rate, len(rates))
	for i, r := range rates {
		out[i] = r.Clone()
	}
	return out
}
