package service

import (
	"context"
	"strings"

	"github.com/NikunjSachdeva/DefiSensei-Bot/internal/config"
	"github.com/NikunjSachdeva/DefiSensei-Bot/internal/logger"
)

type appInfoService struct {
	version string
}

// NewAppInfoService fixes the version reported by GET /api/version. A blank
// version is a configuration error.
func NewAppInfoService(cfg config.App, log *logger.Logger) (AppInfoService, error) {
	version := strings.TrimSpace(cfg.Version)
	if version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	log.Info().Str("version", version).Msg("serving app version")
	return &appInfoService{version: version}, nil
}

func (s *appInfoService) GetAppVersion(context.Context) string {
	return s.version
}
