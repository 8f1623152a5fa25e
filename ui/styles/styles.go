package styles

import "github.com/charmbracelet/lipgloss"

func InputStyle(width int) lipgloss.Style {
	s := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("62")).
		Padding(0, 1)
	if width > 4 {
		s = s.Width(width - 4)
	}
	return s
}

func StatusStyle(width int) lipgloss.Style {
	s := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Background(lipgloss.Color("235")).
		Padding(0, 1)
	if width > 0 {
		s = s.Width(width)
	}
	return s
}

func TitleStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("141")).
		Bold(true).
		Padding(0, 2)
}

// DropZoneStyle highlights the border while a drag hovers over the zone.
func DropZoneStyle(width int, active bool) lipgloss.Style {
	border := lipgloss.Color("240")
	if active {
		border = lipgloss.Color("39")
	}
	s := lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(border).
		Padding(1, 2).
		Align(lipgloss.Center)
	if width > 4 {
		s = s.Width(width - 4)
	}
	return s
}

func SelectedStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("39")).
		Bold(true)
}

func ResultStyle(width int) lipgloss.Style {
	s := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder(), false, false, false, true).
		BorderForeground(lipgloss.Color("214")).
		Padding(0, 1).
		MarginLeft(2)
	if width > 8 {
		s = s.Width(width - 8)
	}
	return s
}

func HeadingStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("214")).
		Bold(true)
}

func PlaceholderStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("245")).
		Italic(true)
}

func LoaderStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("141")).
		Padding(0, 2)
}

func NoticeStyle(width int, failure bool) lipgloss.Style {
	color := lipgloss.Color("72")
	if failure {
		color = lipgloss.Color("196")
	}
	s := lipgloss.NewStyle().
		Border(lipgloss.ThickBorder()).
		BorderForeground(color).
		Foreground(color).
		Bold(true).
		Padding(0, 2)
	if width > 8 {
		s = s.Width(width / 2)
	}
	return s
}
