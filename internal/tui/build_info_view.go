// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/NikunjSachdeva/DefiSensei-Bot/models"
)

func renderHeader(info models.AppBuildInfo, serverVersion string) string {
	var b strings.Builder

	b.WriteString("DeFiSensei")
	b.WriteString("  client ")
	b.WriteString(valueOrNA(info.BuildVersion()))
	b.WriteString(" (")
	b.WriteString(valueOrNA(info.BuildCommit()))
	b.WriteString(", ")
	b.WriteString(valueOrNA(info.BuildDate()))
	b.WriteString(")  server ")
	b.WriteString(valueOrNA(serverVersion))

	return titleStyle.Render(b.String())
}

func valueOrNA(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return "N/A"
	}
	return v
}
