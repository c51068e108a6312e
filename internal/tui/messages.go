package tui

import (
	"github.com/MKhiriev/go-trade-journal/internal/service"
	"github.com/MKhiriev/go-trade-journal/models"
)

type browseLoadedMsg struct {
	result service.BrowseResult
	err    error
}

type detailLoadedMsg struct {
	item models.ReflectionWithImages
	err  error
}

type deleteDoneMsg struct {
	err error
}
