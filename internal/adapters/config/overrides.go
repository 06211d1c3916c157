package config

import (
	"strings"

	"go.trai.ch/nest/internal/core/domain"
	"go.trai.ch/zerr"
)

// ParseOverrides turns repeated KEY=VALUE flag values into an ordered
// override config, preserving flag order so later flags win on merge.
func ParseOverrides(pairs []string) (domain.Config, error) {
	cfg := make(domain.Config, 0, len(pairs))
	for _, pair := range pairs {
		key, val, ok := strings.Cut(pair, "=")
		if !ok || key == "" {
			return nil, zerr.With(zerr.New("override must be KEY=VALUE"), "override", pair)
		}
		cfg = append(cfg, domain.Setting{Key: key, Value: val})
	}
	return cfg, nil
}
