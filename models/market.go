// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Quote is the latest daily bar of a listed symbol.
type Quote struct {
	Symbol string  `json:"symbol"`
	Open   float64 `json:"open"`
	High   float64 `json:"high"`
	Low    float64 `json:"low"`
	Close  float64 `json:"close"`
	Volume float64 `json:"volume"`
}

// Features returns the regression input vector in training column order:
// Open, High, Low, Close, Volume.
func (q Quote) Features() []float64 {
	return []float64{q.Open, q.High, q.Low, q.Close, q.Volume}
}
