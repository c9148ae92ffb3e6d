package theme

import "github.com/charmbracelet/lipgloss/v2"

// Theme centralizes Lip Gloss styles for the Bubble Tea UI.
type Theme struct {
	Footer FooterTheme
	Panel  PanelTheme
	Input  InputTheme
	Preset PresetTheme
}

// FooterTheme groups styles used by the bottom status/help bar.
type FooterTheme struct {
	Help   lipgloss.Style
	Status lipgloss.Style
	Error  lipgloss.Style
}

// PanelTheme styles framed panels and headings.
type PanelTheme struct {
	Frame lipgloss.Style
	Title lipgloss.Style
	Body  lipgloss.Style
}

// InputTheme styles the two endpoint inputs of the range field.
type InputTheme struct {
	Frame     lipgloss.Style
	Active    lipgloss.Style
	Inactive  lipgloss.Style
	Disabled  lipgloss.Style
	Hover     lipgloss.Style
	Separator lipgloss.Style
	OK        lipgloss.Style
	OKOff     lipgloss.Style
}

// PresetTheme styles the preset list shown beside the panels.
type PresetTheme struct {
	Key   lipgloss.Style
	Label lipgloss.Style
}

// Default returns the built-in theme used across the UI.
func Default() Theme {
	okButton := lipgloss.NewStyle().
		Foreground(lipgloss.Color("0")).
		Background(lipgloss.Color("212")).
		Padding(0, 1)

	return Theme{
		Footer: FooterTheme{
			Help:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
			Status: lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
			Error:  lipgloss.NewStyle().Foreground(lipgloss.Color("#FF5F5F")),
		},
		Panel: PanelTheme{
			Frame: lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				Padding(0, 1),
			Title: lipgloss.NewStyle().Bold(true),
			Body:  lipgloss.NewStyle(),
		},
		Input: InputTheme{
			Frame: lipgloss.NewStyle().
				Border(lipgloss.NormalBorder()).
				BorderForeground(lipgloss.Color("240")).
				Padding(0, 1),
			Active:    lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true),
			Inactive:  lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
			Disabled:  lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
			Hover:     lipgloss.NewStyle().Foreground(lipgloss.Color("244")).Italic(true),
			Separator: lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
			OK:        okButton,
			OKOff:     okButton.Background(lipgloss.Color("238")),
		},
		Preset: PresetTheme{
			Key:   lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true),
			Label: lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		},
	}
}
