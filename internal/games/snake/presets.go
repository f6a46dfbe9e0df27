package snake

import "github.com/vovakirdan/tui-snake/internal/registry"

func init() {
	registry.Register(registry.Preset{ID: "classic", Title: "Classic", Width: 20, Height: 16})
	registry.Register(registry.Preset{ID: "tiny", Title: "Tiny", Width: 5, Height: 5})
	registry.Register(registry.Preset{ID: "narrow", Title: "Narrow", Width: MinWidth, Height: MinHeight})
	registry.Register(registry.Preset{ID: "wide", Title: "Wide", Width: 40, Height: 16})
}

// NewFromPreset creates a game sized for a registered preset.
func NewFromPreset(id string, opts ...Option) (*Game, error) {
	p, err := registry.Get(id)
	if err != nil {
		return nil, err
	}
	return New(p.Width, p.Height, opts...)
}
