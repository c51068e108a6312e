package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-trade-journal/internal/logger"
	"github.com/MKhiriev/go-trade-journal/internal/service"
	"github.com/MKhiriev/go-trade-journal/models"
)

type TUI struct {
	reflections service.ReflectionService
	pageSize    int
	buildInfo   models.AppBuildInfo
	logger      *logger.Logger
}

func New(reflections service.ReflectionService, pageSize int, buildInfo models.AppBuildInfo, logger *logger.Logger) *TUI {
	return &TUI{
		reflections: reflections,
		pageSize:    pageSize,
		buildInfo:   buildInfo,
		logger:      logger,
	}
}

// Browse runs the browse screen until the user quits.
func (t *TUI) Browse(ctx context.Context) error {
	model := newBrowseModel(ctx, t.reflections, t.pageSize, t.buildInfo)
	if _, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run(); err != nil {
		t.logger.Err(err).Str("func", "TUI.Browse").Msg("browse screen failed")
		return err
	}
	return nil
}
