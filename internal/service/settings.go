package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/SergeyBogomolovv/checkout-addons/internal/entities"
	"github.com/SergeyBogomolovv/checkout-addons/pkg/utils"
)

// Имена опций в хранилище настроек.
const (
	OptionAttachments = "toret-ea-option"
	OptionShipping    = "zasilkovna_option"
	OptionServices    = "zasilkovna_services"
	OptionPrices      = "zasilkovna_prices"
	OptionLicence     = "woo-zasilkovna-licence"
)

var allOptions = []string{OptionAttachments, OptionShipping, OptionServices, OptionPrices, OptionLicence}

// icon option key by country, icon_url is also the fallback for unlisted countries
var iconOptions = map[string]string{
	"icon_url":    "CZ",
	"icon_url_sk": "SK",
	"icon_url_pl": "PL",
	"icon_url_hu": "HU",
	"icon_url_ro": "RO",
	"icon_url_ua": "UA",
}

type OptionRepo interface {
	GetOption(ctx context.Context, name string) ([]byte, error)
}

type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte)
}

type settingsService struct {
	logger *slog.Logger
	repo   OptionRepo
	cache  Cache
}

func NewSettingsService(logger *slog.Logger, repo OptionRepo, cache Cache) *settingsService {
	return &settingsService{
		logger: logger.With(slog.String("service", "settings")),
		repo:   repo,
		cache:  cache,
	}
}

func (s *settingsService) EmailAttachments(ctx context.Context) (entities.AttachmentSettings, error) {
	values, err := s.stringMap(ctx, OptionAttachments)
	if err != nil {
		return nil, err
	}

	settings := make(entities.AttachmentSettings, len(values))
	for k, v := range values {
		key, ok := entities.ParseAttachmentKey(k)
		if !ok {
			continue
		}
		settings[key] = v
	}
	return settings, nil
}

func (s *settingsService) Shipping(ctx context.Context) (entities.ShippingSettings, error) {
	opt, err := s.stringMap(ctx, OptionShipping)
	if err != nil {
		return entities.ShippingSettings{}, err
	}
	services, err := s.stringMap(ctx, OptionServices)
	if err != nil {
		return entities.ShippingSettings{}, err
	}
	prices, err := s.stringMap(ctx, OptionPrices)
	if err != nil {
		return entities.ShippingSettings{}, err
	}

	settings := entities.ShippingSettings{
		FreeShipping:  entities.FreeShippingPolicy(opt["doprava_zdarma"]),
		APIKey:        opt["api_key"],
		Icons:         make(map[string]string),
		ServiceLabels: make(map[string]string),
		ServiceIcons:  make(map[string]string),
	}
	for key, country := range iconOptions {
		if v := opt[key]; v != "" {
			settings.Icons[country] = v
		}
	}
	for k, v := range services {
		if id, ok := strings.CutPrefix(k, "service-label-"); ok && v != "" {
			settings.ServiceLabels[id] = v
		}
	}
	for k, v := range prices {
		if submethod, ok := strings.CutSuffix(k, "-url-ikona"); ok && v != "" {
			settings.ServiceIcons[submethod] = v
		}
	}
	return settings, nil
}

// LicenceActive reports whether the shipping integration may be enabled.
func (s *settingsService) LicenceActive(ctx context.Context) (bool, error) {
	raw, err := s.option(ctx, OptionLicence)
	if err != nil {
		return false, err
	}
	if len(raw) == 0 {
		return false, nil
	}

	var licence string
	if err := json.Unmarshal(raw, &licence); err != nil {
		s.logger.WarnContext(ctx, "malformed licence option", slog.Any("error", err))
		return false, nil
	}
	licence = strings.TrimSpace(licence)
	return licence != "" && licence != "inactive", nil
}

// WarmUp loads every known option into the cache.
func (s *settingsService) WarmUp(ctx context.Context) error {
	for _, name := range allOptions {
		if _, err := s.option(ctx, name); err != nil {
			return err
		}
	}
	s.logger.Debug("settings cache warmed up", slog.Int("options", len(allOptions)))
	return nil
}

func (s *settingsService) option(ctx context.Context, name string) ([]byte, error) {
	if data, ok := s.cache.Get(name); ok {
		return data, nil
	}

	var data []byte
	fn := func() error {
		var err error
		data, err = s.repo.GetOption(ctx, name)
		return err
	}
	if err := utils.Retry(ctx, utils.DefaultRetry, fn); err != nil {
		return nil, fmt.Errorf("failed to load option %s: %w", name, err)
	}

	// отсутствующая опция тоже кэшируется, как пустое значение
	if data == nil {
		data = []byte{}
	}
	s.cache.Set(name, data)
	return data, nil
}

// stringMap decodes an option stored as a flat JSON object. Non scalar values are
// skipped; a malformed option reads as empty.
func (s *settingsService) stringMap(ctx context.Context, name string) (map[string]string, error) {
	raw, err := s.option(ctx, name)
	if err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		return map[string]string{}, nil
	}

	var values map[string]any
	if err := json.Unmarshal(raw, &values); err != nil {
		s.logger.WarnContext(ctx, "malformed option", slog.String("option", name), slog.Any("error", err))
		return map[string]string{}, nil
	}

	out := make(map[string]string, len(values))
	for k, v := range values {
		switch v := v.(type) {
		case string:
			out[k] = v
		case float64:
			out[k] = strconv.FormatFloat(v, 'f', -1, 64)
		case bool:
			out[k] = strconv.FormatBool(v)
		}
	}
	return out, nil
}
