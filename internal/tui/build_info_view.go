// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-trade-journal/models"
)

func renderBuildInfoWindow(info models.AppBuildInfo) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Application: Trade Journal\n")
	fmt.Fprintf(&b, "Version: %s\n", info.BuildVersion())
	fmt.Fprintf(&b, "Date: %s\n", info.BuildDate())
	fmt.Fprintf(&b, "Commit: %s", info.BuildCommit())

	return renderPage("ABOUT", b.String(), "esc: back")
}
