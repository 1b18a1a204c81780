// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
)

// validate checks the merged backend configuration before it is used at
// startup. Every violated group is reported, joined into one error.
func (cfg *StructuredConfig) validate() error {
	var errs []error

	if cfg.App.TokenSignKey == "" {
		errs = append(errs, fmt.Errorf("%w: token sign key is required", ErrInvalidAppConfigs))
	}
	if cfg.App.OTPTTL <= 0 {
		errs = append(errs, fmt.Errorf("%w: otp ttl must be positive, got %s", ErrInvalidAppConfigs, cfg.App.OTPTTL))
	}
	switch cfg.App.VerifyOTPMode {
	case VerifyOTPStrict, VerifyOTPLegacy:
	default:
		errs = append(errs, fmt.Errorf("%w: unknown verify otp mode %q", ErrInvalidAppConfigs, cfg.App.VerifyOTPMode))
	}

	if cfg.Storage.DB.DSN == "" {
		errs = append(errs, fmt.Errorf("%w: dsn is required", ErrInvalidStorageConfigs))
	}

	if cfg.Server.HTTPAddress == "" {
		errs = append(errs, fmt.Errorf("%w: http address is required", ErrInvalidServerConfigs))
	}
	if cfg.Server.RequestTimeout <= 0 {
		errs = append(errs, fmt.Errorf("%w: request timeout must be positive", ErrInvalidServerConfigs))
	}

	if cfg.Predict.TestShare < 0 || cfg.Predict.TestShare >= 1 {
		errs = append(errs, fmt.Errorf("%w: test share must be in [0, 1), got %v", ErrInvalidPredictConfigs, cfg.Predict.TestShare))
	}

	return errors.Join(errs...)
}

func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Adapter.Identity == 0 {
		return fmt.Errorf("%w: caller identity is required", ErrInvalidAdapterConfigs)
	}

	if cfg.App.TokenSignKey == "" {
		return fmt.Errorf("%w: token sign key is required", ErrInvalidAppConfigs)
	}

	return nil
}
