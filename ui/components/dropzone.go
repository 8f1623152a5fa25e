package components

import (
	"strings"

	"github.com/Rorical/ContentAnalyzer/internal/acquisition"
	"github.com/Rorical/ContentAnalyzer/internal/models"
	"github.com/Rorical/ContentAnalyzer/ui/styles"
)

func RenderDropZone(zone models.DropZone, width int) string {
	var b strings.Builder

	if zone.DragActive {
		b.WriteString("Release to drop your file here")
	} else {
		b.WriteString("Drag & Drop your file here\nor type a path below and press Tab")
	}
	b.WriteString("\n(" + strings.Join(acquisition.AcceptedExtensions, ", ") + ")")

	if zone.HasFile {
		b.WriteString("\n\n" + styles.SelectedStyle().Render("Selected: "+zone.FileName))
	}

	return styles.DropZoneStyle(width, zone.DragActive).Render(b.String())
}
